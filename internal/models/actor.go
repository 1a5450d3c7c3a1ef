package models

import "time"

type Actor struct {
	ActorID    uint      `gorm:"column:actor_id;primaryKey" json:"actor_id" example:"1"`
	FirstName  string    `gorm:"column:first_name;size:45;not null" json:"first_name" example:"Nguyen Duc"`
	LastName   string    `gorm:"column:last_name;size:45;not null;index" json:"last_name" example:"Hoa 21424019"`
	LastUpdate time.Time `gorm:"column:last_update;not null" json:"last_update" example:"2026-01-02T15:04:05Z"`
}

func (Actor) TableName() string {
	return "actor"
}
