package main

import (
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "sakila-backend/docs"
	"sakila-backend/internal/config"
	"sakila-backend/internal/database"
	"sakila-backend/internal/repository"
	"sakila-backend/internal/server"
	"sakila-backend/internal/services"
	"sakila-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// @title Sakila Backend API
// @version 1.0
// @description CRUD API over the Sakila actor and film tables
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup logger
	log := setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var (
		actorRepo repository.ActorRepository
		filmRepo  repository.FilmRepository
		health    server.HealthChecker
	)

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn("Using in-memory store; data is lost on restart")
		actorRepo = repository.NewMemoryActorRepository()
		filmRepo = repository.NewMemoryFilmRepository()
	default:
		if cfg.Database.Migrate {
			if err := database.Migrate(cfg.Database.URL()); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Errorf("Error closing database connection: %v", err)
			}
		}()

		actorRepo = repository.NewActorRepository(db)
		filmRepo = repository.NewFilmRepository(db)
		health = db
	}

	app := server.New(server.Dependencies{
		Config: cfg,
		Logger: log,
		Validator: validation.New(validation.Options{
			ActorNameMin: cfg.Validation.ActorNameMin,
			ActorNameMax: cfg.Validation.ActorNameMax,
		}),
		Actors: services.NewActorService(actorRepo, log),
		Films:  services.NewFilmService(filmRepo, log),
		Health: health,
	})

	// Graceful shutdown
	go gracefulShutdown(app, cfg.Server.ShutdownTimeout, log)

	log.Infof("Sakila Backend API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetLevel(logrus.InfoLevel)

	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
	}
	if cfg.Log.Level != "" {
		level, err := logrus.ParseLevel(cfg.Log.Level)
		if err != nil {
			log.Warnf("Unknown LOG_LEVEL %q, keeping %s", cfg.Log.Level, log.GetLevel())
		} else {
			log.SetLevel(level)
		}
	}

	var out io.Writer = os.Stdout
	if cfg.Log.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    20, // megabytes
			MaxBackups: 2,
			Compress:   true,
		})
	}
	log.SetOutput(out)

	return log
}

func gracefulShutdown(app *fiber.App, timeout time.Duration, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(timeout); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
