package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FilmRating is the MPAA rating of a film.
type FilmRating string

const (
	RatingG    FilmRating = "G"
	RatingPG   FilmRating = "PG"
	RatingPG13 FilmRating = "PG-13"
	RatingR    FilmRating = "R"
	RatingNC17 FilmRating = "NC-17"
)

// FilmRatings lists every accepted rating in declaration order.
var FilmRatings = []FilmRating{RatingG, RatingPG, RatingPG13, RatingR, RatingNC17}

func (r FilmRating) Valid() bool {
	for _, v := range FilmRatings {
		if v == r {
			return true
		}
	}
	return false
}

// SpecialFeatureValues lists the members of the special_features set.
var SpecialFeatureValues = []string{"Trailers", "Commentaries", "Deleted Scenes", "Behind the Scenes"}

func IsSpecialFeature(value string) bool {
	for _, v := range SpecialFeatureValues {
		if v == value {
			return true
		}
	}
	return false
}

// SpecialFeatures is stored the way Sakila stores a SET column: members joined by commas.
type SpecialFeatures []string

func (s SpecialFeatures) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return strings.Join(s, ","), nil
}

func (s *SpecialFeatures) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("special_features: unsupported source type %T", src)
	}

	if raw == "" {
		*s = SpecialFeatures{}
		return nil
	}
	*s = strings.Split(raw, ",")
	return nil
}

type Film struct {
	FilmID             uint            `gorm:"column:film_id;primaryKey" json:"film_id" example:"1"`
	Title              string          `gorm:"column:title;size:255;not null;index" json:"title" example:"The Film Title"`
	Description        string          `gorm:"column:description;type:text" json:"description" example:"Description of the film 10"`
	ReleaseYear        *int            `gorm:"column:release_year" json:"release_year" example:"2023"`
	LanguageID         int             `gorm:"column:language_id;not null" json:"language_id" example:"1"`
	OriginalLanguageID *int            `gorm:"column:original_language_id" json:"original_language_id" example:"2"`
	RentalDuration     int             `gorm:"column:rental_duration;not null" json:"rental_duration" example:"5"`
	RentalRate         decimal.Decimal `gorm:"column:rental_rate;type:numeric(4,2);not null" json:"rental_rate" swaggertype:"string" example:"7.99"`
	Length             *int            `gorm:"column:length" json:"length" example:"120"`
	ReplacementCost    decimal.Decimal `gorm:"column:replacement_cost;type:numeric(5,2);not null" json:"replacement_cost" swaggertype:"string" example:"24.99"`
	Rating             FilmRating      `gorm:"column:rating;size:5;not null" json:"rating" example:"PG-13"`
	SpecialFeatures    SpecialFeatures `gorm:"column:special_features;type:text" json:"special_features" swaggertype:"array,string" example:"Trailers,Deleted Scenes"`
	LastUpdate         time.Time       `gorm:"column:last_update;not null" json:"last_update" example:"2026-01-02T15:04:05Z"`
}

func (Film) TableName() string {
	return "film"
}
