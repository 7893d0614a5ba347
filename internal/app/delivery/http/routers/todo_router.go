package routers

import (
	"fmt"
	"timegrid-service/internal/app/delivery/http/controllers"
	"timegrid-service/internal/app/delivery/http/middlewares"
	"timegrid-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachTodoRoutes(router chi.Router, middlewares *middlewares.Middlewares, todoController *controllers.TodoController) {
	todoIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamTodoID)

	router.With(middlewares.Authenticate).Post("/", todoController.CreateTodo)
	router.With(middlewares.Authenticate).Get("/", todoController.FindTodos)
	router.With(middlewares.Authenticate).Put(todoIDPattern, todoController.UpdateTodoByID)
	router.With(middlewares.Authenticate).Delete(todoIDPattern, todoController.DeleteTodoByID)
}
