package routes

import (
	"sakila-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, actorHandler *handlers.ActorHandler, filmHandler *handlers.FilmHandler) {
	api := app.Group("/api")

	// Actor routes
	actors := api.Group("/actors")
	{
		actors.Get("/", actorHandler.GetAllActors)
		actors.Get("/:id", actorHandler.GetActorByID)
		actors.Post("/", actorHandler.CreateActor)
		actors.Delete("/:id", actorHandler.DeleteActor)
	}

	// Film routes
	films := api.Group("/films")
	{
		films.Get("/", filmHandler.GetAllFilms)
		films.Get("/:id", filmHandler.GetFilmByID)
		films.Post("/", filmHandler.CreateFilm)
		films.Patch("/:id", filmHandler.UpdateFilm)
		films.Delete("/:id", filmHandler.DeleteFilm)
	}
}
