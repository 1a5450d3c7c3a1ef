package handlers

import (
	"sakila-backend/internal/services"
	"sakila-backend/internal/utils"
	"sakila-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FilmHandler struct {
	service   services.FilmService
	validator *validation.Validator
	logger    *logrus.Logger
}

func NewFilmHandler(service services.FilmService, validator *validation.Validator, logger *logrus.Logger) *FilmHandler {
	return &FilmHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// GetAllFilms godoc
// @Summary Get all films
// @Description Get the list of all films, ordered by id
// @Tags films
// @Produce json
// @Success 200 {object} utils.SuccessBody{data=[]models.Film} "List of films"
// @Failure 500 {object} utils.FailBody "Internal server error"
// @Router /films [get]
func (h *FilmHandler) GetAllFilms(c *fiber.Ctx) error {
	films, err := h.service.ListAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, films)
}

// GetFilmByID godoc
// @Summary Get film by ID
// @Description Get a single film by its ID
// @Tags films
// @Produce json
// @Param id path int true "Film ID"
// @Success 200 {object} utils.SuccessBody{data=models.Film} "Film details"
// @Failure 400 {object} utils.FailBody "The film_id must be a numeric"
// @Failure 404 {object} utils.FailBody "Not found film"
// @Router /films/{id} [get]
func (h *FilmHandler) GetFilmByID(c *fiber.Ctx) error {
	id, err := parseID(c, "film_id")
	if err != nil {
		return respondError(c, err)
	}

	film, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, film)
}

// CreateFilm godoc
// @Summary Create a new film
// @Description Create a film; rating and special features must belong to their enumerations
// @Tags films
// @Accept json
// @Produce json
// @Param film body FilmRequest true "Film request object"
// @Success 201 {object} utils.SuccessBody{data=models.Film} "Film created"
// @Failure 400 {object} utils.FailBody "Validation failed"
// @Failure 500 {object} utils.FailBody "Internal server error"
// @Router /films [post]
func (h *FilmHandler) CreateFilm(c *fiber.Ctx) error {
	req, err := bindJSON[FilmRequest](c, h.validator)
	if err != nil {
		h.logger.WithError(err).Debug("Rejected film payload")
		return respondError(c, err)
	}

	film, err := h.service.Create(c.Context(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, film)
}

// UpdateFilm godoc
// @Summary Update a film
// @Description Partially update a film; only the fields present in the body change
// @Tags films
// @Accept json
// @Produce json
// @Param id path int true "Film ID"
// @Param film body FilmUpdateRequest true "Fields to change"
// @Success 200 {object} utils.SuccessBody{data=models.Film} "Film updated"
// @Failure 400 {object} utils.FailBody "Invalid request"
// @Failure 404 {object} utils.FailBody "Not found film"
// @Router /films/{id} [patch]
func (h *FilmHandler) UpdateFilm(c *fiber.Ctx) error {
	id, err := parseID(c, "film_id")
	if err != nil {
		return respondError(c, err)
	}

	req, err := bindJSON[FilmUpdateRequest](c, h.validator)
	if err != nil {
		h.logger.WithError(err).WithField("film_id", id).Debug("Rejected film update")
		return respondError(c, err)
	}

	film, err := h.service.Update(c.Context(), id, req.toPatch())
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, film)
}

// DeleteFilm godoc
// @Summary Delete a film
// @Description Delete a film by ID
// @Tags films
// @Param id path int true "Film ID"
// @Success 204 "Film deleted"
// @Failure 400 {object} utils.FailBody "The film_id must be a numeric"
// @Failure 404 {object} utils.FailBody "Not found film"
// @Router /films/{id} [delete]
func (h *FilmHandler) DeleteFilm(c *fiber.Ctx) error {
	id, err := parseID(c, "film_id")
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
