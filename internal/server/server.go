// Package server assembles the fiber application: error handling, middleware
// chain, operational endpoints and the API routes.
package server

import (
	"errors"
	"time"

	"sakila-backend/internal/apperr"
	"sakila-backend/internal/config"
	"sakila-backend/internal/handlers"
	"sakila-backend/internal/middleware"
	"sakila-backend/internal/routes"
	"sakila-backend/internal/services"
	"sakila-backend/internal/utils"
	"sakila-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck() error
}

type Dependencies struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Validator *validation.Validator
	Actors    services.ActorService
	Films     services.FilmService
	// Health is nil for the in-memory store.
	Health HealthChecker
}

func New(deps Dependencies) *fiber.App {
	cfg := deps.Config
	log := deps.Logger

	app := fiber.New(fiber.Config{
		AppName:               "Sakila Backend API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app, cfg, log)

	app.Get("/health", healthCheckHandler(deps.Health))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/index.html", fiber.StatusMovedPermanently)
	})

	actorHandler := handlers.NewActorHandler(deps.Actors, deps.Validator, log)
	filmHandler := handlers.NewFilmHandler(deps.Films, deps.Validator, log)
	routes.Setup(app, actorHandler, filmHandler)

	return app
}

func setupMiddleware(app *fiber.App, cfg *config.Config, log *logrus.Logger) {
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Use(middleware.Metrics())
	app.Use(middleware.AccessLog(log))

	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))

	if cfg.RateLimit.Enabled {
		app.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Handler())
	}
}

func healthCheckHandler(store HealthChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := fiber.StatusOK
		status := "ok"
		dbStatus := "healthy"
		if store != nil {
			if err := store.HealthCheck(); err != nil {
				code = fiber.StatusServiceUnavailable
				status = "unavailable"
				dbStatus = "unhealthy"
			}
		}

		return c.Status(code).JSON(fiber.Map{
			"status":    status,
			"service":   "sakila-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if ae := apperr.As(err); ae != nil {
			return utils.AppErrorResponse(c, ae)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.ErrorResponse(c, fe.Code, fe.Message)
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("Unhandled request error")

		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
