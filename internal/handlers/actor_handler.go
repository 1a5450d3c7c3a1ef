package handlers

import (
	"sakila-backend/internal/services"
	"sakila-backend/internal/utils"
	"sakila-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ActorHandler struct {
	service   services.ActorService
	validator *validation.Validator
	logger    *logrus.Logger
}

func NewActorHandler(service services.ActorService, validator *validation.Validator, logger *logrus.Logger) *ActorHandler {
	return &ActorHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// GetAllActors godoc
// @Summary Get all actors
// @Description Get the list of all actors, ordered by id
// @Tags actors
// @Produce json
// @Success 200 {object} utils.SuccessBody{data=[]models.Actor} "List of actors"
// @Failure 500 {object} utils.FailBody "Internal server error"
// @Router /actors [get]
func (h *ActorHandler) GetAllActors(c *fiber.Ctx) error {
	actors, err := h.service.ListAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, actors)
}

// GetActorByID godoc
// @Summary Get actor by ID
// @Description Get a single actor by its ID
// @Tags actors
// @Produce json
// @Param id path int true "Actor ID"
// @Success 200 {object} utils.SuccessBody{data=models.Actor} "Actor details"
// @Failure 400 {object} utils.FailBody "The actor_id must be a numeric"
// @Failure 404 {object} utils.FailBody "Not found actor"
// @Router /actors/{id} [get]
func (h *ActorHandler) GetActorByID(c *fiber.Ctx) error {
	id, err := parseID(c, "actor_id")
	if err != nil {
		return respondError(c, err)
	}

	actor, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, actor)
}

// CreateActor godoc
// @Summary Create a new actor
// @Description Create an actor; first and last name are required and bounded in length
// @Tags actors
// @Accept json
// @Produce json
// @Param actor body ActorRequest true "Actor request object"
// @Success 201 {object} utils.SuccessBody{data=models.Actor} "Actor created"
// @Failure 400 {object} utils.FailBody "Validation failed"
// @Failure 500 {object} utils.FailBody "Internal server error"
// @Router /actors [post]
func (h *ActorHandler) CreateActor(c *fiber.Ctx) error {
	req, err := bindJSON[ActorRequest](c, h.validator)
	if err != nil {
		h.logger.WithError(err).Debug("Rejected actor payload")
		return respondError(c, err)
	}

	actor, err := h.service.Create(c.Context(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, actor)
}

// DeleteActor godoc
// @Summary Delete an actor
// @Description Delete an actor by ID
// @Tags actors
// @Param id path int true "Actor ID"
// @Success 204 "Actor deleted"
// @Failure 400 {object} utils.FailBody "The actor_id must be a numeric"
// @Failure 404 {object} utils.FailBody "Not found actor"
// @Router /actors/{id} [delete]
func (h *ActorHandler) DeleteActor(c *fiber.Ctx) error {
	id, err := parseID(c, "actor_id")
	if err != nil {
		return respondError(c, err)
	}

	if _, err := h.service.GetByID(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	if err := h.service.Remove(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
