package contracts

import (
	"context"
	"timegrid-service/internal/app/models"
	"timegrid-service/internal/pkg/dto/requests"
	"timegrid-service/internal/pkg/dto/responses"
)

type TodoUsecase interface {
	CreateTodo(ctx context.Context, request *requests.CreateTodo) (*responses.Todo, error)
	FindTodos(ctx context.Context, request *requests.FindTodos) ([]responses.Todo, error)
	UpdateTodo(ctx context.Context, request *requests.UpdateTodo) (*responses.Todo, error)
	DeleteTodoByID(ctx context.Context, request *requests.DeleteTodoByID) error
}

type TodoRepository interface {
	CreateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Todo, error)
	FindByID(ctx context.Context, todoID string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	DeleteByID(ctx context.Context, todoID string) error
}
