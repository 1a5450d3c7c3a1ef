package repository

import (
	"context"
	"errors"
	"time"

	"sakila-backend/internal/database"
	"sakila-backend/internal/models"

	"gorm.io/gorm"
)

type FilmRepository interface {
	FindAll(ctx context.Context) ([]models.Film, error)
	FindByID(ctx context.Context, id uint) (*models.Film, error)
	Create(ctx context.Context, film *models.Film) error
	// Update writes every column of film except film_id. ErrNotFound when the row is gone.
	Update(ctx context.Context, film *models.Film) error
	Delete(ctx context.Context, id uint) error
}

type filmRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewFilmRepository(db *database.Database) FilmRepository {
	return &filmRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *filmRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *filmRepository) FindAll(ctx context.Context) ([]models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	films := make([]models.Film, 0)
	if err := r.db.WithContext(ctx).Order("film_id ASC").Find(&films).Error; err != nil {
		return nil, err
	}
	return films, nil
}

func (r *filmRepository) FindByID(ctx context.Context, id uint) (*models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var film models.Film
	err := r.db.WithContext(ctx).First(&film, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &film, nil
}

func (r *filmRepository) Create(ctx context.Context, film *models.Film) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(film).Error
}

func (r *filmRepository) Update(ctx context.Context, film *models.Film) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// Select("*") so nil/zero fields (cleared length, empty feature set) are written too.
	result := r.db.WithContext(ctx).Model(film).Select("*").Omit("film_id").Updates(film)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *filmRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Film{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
