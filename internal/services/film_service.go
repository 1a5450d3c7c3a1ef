package services

import (
	"context"
	"time"

	"sakila-backend/internal/metrics"
	"sakila-backend/internal/models"
	"sakila-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// FilmInput is a create request that already passed validation.
type FilmInput struct {
	Title              string
	Description        string
	ReleaseYear        *int
	LanguageID         int
	OriginalLanguageID *int
	RentalDuration     int
	RentalRate         decimal.Decimal
	Length             *int
	ReplacementCost    decimal.Decimal
	Rating             models.FilmRating
	SpecialFeatures    []string
}

// FilmPatch is a validated partial update; nil fields keep their stored value.
type FilmPatch struct {
	Title              *string
	Description        *string
	ReleaseYear        *int
	LanguageID         *int
	OriginalLanguageID *int
	RentalDuration     *int
	RentalRate         *decimal.Decimal
	Length             *int
	ReplacementCost    *decimal.Decimal
	Rating             *models.FilmRating
	SpecialFeatures    []string
}

// Apply copies every set field of p onto film.
func (p FilmPatch) Apply(film *models.Film) {
	if p.Title != nil {
		film.Title = *p.Title
	}
	if p.Description != nil {
		film.Description = *p.Description
	}
	if p.ReleaseYear != nil {
		film.ReleaseYear = intPtr(*p.ReleaseYear)
	}
	if p.LanguageID != nil {
		film.LanguageID = *p.LanguageID
	}
	if p.OriginalLanguageID != nil {
		film.OriginalLanguageID = intPtr(*p.OriginalLanguageID)
	}
	if p.RentalDuration != nil {
		film.RentalDuration = *p.RentalDuration
	}
	if p.RentalRate != nil {
		film.RentalRate = *p.RentalRate
	}
	if p.Length != nil {
		film.Length = intPtr(*p.Length)
	}
	if p.ReplacementCost != nil {
		film.ReplacementCost = *p.ReplacementCost
	}
	if p.Rating != nil {
		film.Rating = *p.Rating
	}
	if p.SpecialFeatures != nil {
		film.SpecialFeatures = append(models.SpecialFeatures{}, p.SpecialFeatures...)
	}
}

type FilmService interface {
	ListAll(ctx context.Context) ([]models.Film, error)
	GetByID(ctx context.Context, id uint) (*models.Film, error)
	Create(ctx context.Context, input FilmInput) (*models.Film, error)
	Update(ctx context.Context, id uint, patch FilmPatch) (*models.Film, error)
	Remove(ctx context.Context, id uint) error
}

type filmService struct {
	repo   repository.FilmRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewFilmService(repo repository.FilmRepository, logger *logrus.Logger) FilmService {
	return &filmService{
		repo:   repo,
		logger: logger,
		now:    utcNow,
	}
}

func (s *filmService) ListAll(ctx context.Context) ([]models.Film, error) {
	films, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail("list", 0, err)
	}
	metrics.RecordOperation("film", "list", metrics.OutcomeOK)
	return films, nil
}

func (s *filmService) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	film, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("get", id, err)
	}
	metrics.RecordOperation("film", "get", metrics.OutcomeOK)
	return film, nil
}

func (s *filmService) Create(ctx context.Context, input FilmInput) (*models.Film, error) {
	film := &models.Film{
		Title:              input.Title,
		Description:        input.Description,
		ReleaseYear:        input.ReleaseYear,
		LanguageID:         input.LanguageID,
		OriginalLanguageID: input.OriginalLanguageID,
		RentalDuration:     input.RentalDuration,
		RentalRate:         input.RentalRate,
		Length:             input.Length,
		ReplacementCost:    input.ReplacementCost,
		Rating:             input.Rating,
		LastUpdate:         s.now(),
	}
	if input.SpecialFeatures != nil {
		film.SpecialFeatures = append(models.SpecialFeatures{}, input.SpecialFeatures...)
	}

	if err := s.repo.Create(ctx, film); err != nil {
		return nil, s.fail("create", 0, err)
	}

	s.logger.WithField("film_id", film.FilmID).Info("Film created")
	metrics.RecordOperation("film", "create", metrics.OutcomeOK)
	return film, nil
}

func (s *filmService) Update(ctx context.Context, id uint, patch FilmPatch) (*models.Film, error) {
	film, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("update", id, err)
	}

	patch.Apply(film)
	film.LastUpdate = s.now()

	// The row may have been deleted since the read; Update reports that as ErrNotFound.
	if err := s.repo.Update(ctx, film); err != nil {
		return nil, s.fail("update", id, err)
	}

	s.logger.WithField("film_id", id).Info("Film updated")
	metrics.RecordOperation("film", "update", metrics.OutcomeOK)
	return film, nil
}

func (s *filmService) Remove(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail("remove", id, err)
	}

	s.logger.WithField("film_id", id).Info("Film deleted")
	metrics.RecordOperation("film", "remove", metrics.OutcomeOK)
	return nil
}

func (s *filmService) fail(operation string, id uint, err error) error {
	return translate(s.logger, "film", operation, id, err)
}

func intPtr(v int) *int {
	return &v
}
