package repository

import (
	"context"
	"errors"
	"time"

	"sakila-backend/internal/database"
	"sakila-backend/internal/models"

	"gorm.io/gorm"
)

type ActorRepository interface {
	FindAll(ctx context.Context) ([]models.Actor, error)
	FindByID(ctx context.Context, id uint) (*models.Actor, error)
	Create(ctx context.Context, actor *models.Actor) error
	Delete(ctx context.Context, id uint) error
}

type actorRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewActorRepository(db *database.Database) ActorRepository {
	return &actorRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *actorRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *actorRepository) FindAll(ctx context.Context) ([]models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	actors := make([]models.Actor, 0)
	if err := r.db.WithContext(ctx).Order("actor_id ASC").Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

func (r *actorRepository) FindByID(ctx context.Context, id uint) (*models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actor models.Actor
	err := r.db.WithContext(ctx).First(&actor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &actor, nil
}

func (r *actorRepository) Create(ctx context.Context, actor *models.Actor) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(actor).Error
}

func (r *actorRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Actor{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
