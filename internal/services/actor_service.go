package services

import (
	"context"
	"errors"
	"time"

	"sakila-backend/internal/apperr"
	"sakila-backend/internal/metrics"
	"sakila-backend/internal/models"
	"sakila-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// ActorInput is a create request that already passed validation.
type ActorInput struct {
	FirstName string
	LastName  string
}

type ActorService interface {
	ListAll(ctx context.Context) ([]models.Actor, error)
	GetByID(ctx context.Context, id uint) (*models.Actor, error)
	Create(ctx context.Context, input ActorInput) (*models.Actor, error)
	Remove(ctx context.Context, id uint) error
}

type actorService struct {
	repo   repository.ActorRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewActorService(repo repository.ActorRepository, logger *logrus.Logger) ActorService {
	return &actorService{
		repo:   repo,
		logger: logger,
		now:    utcNow,
	}
}

func (s *actorService) ListAll(ctx context.Context) ([]models.Actor, error) {
	actors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail("list", 0, err)
	}
	metrics.RecordOperation("actor", "list", metrics.OutcomeOK)
	return actors, nil
}

func (s *actorService) GetByID(ctx context.Context, id uint) (*models.Actor, error) {
	actor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("get", id, err)
	}
	metrics.RecordOperation("actor", "get", metrics.OutcomeOK)
	return actor, nil
}

func (s *actorService) Create(ctx context.Context, input ActorInput) (*models.Actor, error) {
	actor := &models.Actor{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		LastUpdate: s.now(),
	}
	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, s.fail("create", 0, err)
	}

	s.logger.WithField("actor_id", actor.ActorID).Info("Actor created")
	metrics.RecordOperation("actor", "create", metrics.OutcomeOK)
	return actor, nil
}

func (s *actorService) Remove(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail("remove", id, err)
	}

	s.logger.WithField("actor_id", id).Info("Actor deleted")
	metrics.RecordOperation("actor", "remove", metrics.OutcomeOK)
	return nil
}

func (s *actorService) fail(operation string, id uint, err error) error {
	return translate(s.logger, "actor", operation, id, err)
}

// translate maps a repository error onto the apperr taxonomy, logging store failures.
func translate(logger *logrus.Logger, entity, operation string, id uint, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		metrics.RecordOperation(entity, operation, metrics.OutcomeNotFound)
		return apperr.NotFound(entity)
	}

	metrics.RecordOperation(entity, operation, metrics.OutcomeError)
	fields := logrus.Fields{"entity": entity, "operation": operation}
	if id != 0 {
		fields[entity+"_id"] = id
	}
	logger.WithError(err).WithFields(fields).Error("Store operation failed")
	return apperr.Internal(err)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
