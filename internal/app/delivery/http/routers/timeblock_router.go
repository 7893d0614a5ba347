package routers

import (
	"timegrid-service/internal/app/delivery/http/controllers"
	"timegrid-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTimeBlockRoutes(router chi.Router, middlewares *middlewares.Middlewares, timeBlockController *controllers.TimeBlockController) {
	router.With(middlewares.Authenticate).Get("/", timeBlockController.GetWeeklyTimeBlocks)
	router.With(middlewares.Authenticate).Post("/toggle", timeBlockController.ToggleTimeBlock)
}
