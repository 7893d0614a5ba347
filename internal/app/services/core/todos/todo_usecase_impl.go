package todos

import (
	"context"
	"sync"
	"time"
	"timegrid-service/internal/app/contracts"
	"timegrid-service/internal/app/models"
	"timegrid-service/internal/pkg/constvars"
	"timegrid-service/internal/pkg/dto/requests"
	"timegrid-service/internal/pkg/dto/responses"
	"timegrid-service/internal/pkg/exceptions"
	"timegrid-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type todoUsecase struct {
	TodoRepository contracts.TodoRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

var (
	todoUsecaseInstance contracts.TodoUsecase
	onceTodoUsecase     sync.Once
)

func NewTodoUsecase(
	todoRepository contracts.TodoRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.TodoUsecase {
	onceTodoUsecase.Do(func() {
		instance := &todoUsecase{
			TodoRepository: todoRepository,
			SessionService: sessionService,
			Log:            logger,
		}
		todoUsecaseInstance = instance
	})
	return todoUsecaseInstance
}

func (uc *todoUsecase) CreateTodo(ctx context.Context, request *requests.CreateTodo) (*responses.Todo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("todoUsecase.CreateTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	todo := &models.Todo{
		UserID: session.UserID,
		Title:  request.Title,
	}
	if request.DueDate != "" {
		dueDate, err := utils.ParseDay(request.DueDate)
		if err != nil {
			return nil, err
		}
		todo.DueDate = &dueDate
	}

	created, err := uc.TodoRepository.CreateTodo(ctx, todo)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("todoUsecase.CreateTodo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, created.ID),
	)
	return mapTodoToResponse(created), nil
}

func (uc *todoUsecase) FindTodos(ctx context.Context, request *requests.FindTodos) ([]responses.Todo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("todoUsecase.FindTodos called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	todos, err := uc.TodoRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Todo, 0, len(todos))
	for i := range todos {
		response = append(response, *mapTodoToResponse(&todos[i]))
	}
	return response, nil
}

func (uc *todoUsecase) UpdateTodo(ctx context.Context, request *requests.UpdateTodo) (*responses.Todo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("todoUsecase.UpdateTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, request.TodoID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	todo, err := uc.findOwnedTodo(ctx, request.TodoID, session.UserID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		todo.Title = *request.Title
	}
	if request.Completed != nil {
		todo.Completed = *request.Completed
	}
	if request.DueDate != nil {
		dueDate, err := utils.ParseDay(*request.DueDate)
		if err != nil {
			return nil, err
		}
		todo.DueDate = &dueDate
	}

	updated, err := uc.TodoRepository.UpdateTodo(ctx, todo)
	if err != nil {
		return nil, err
	}
	return mapTodoToResponse(updated), nil
}

func (uc *todoUsecase) DeleteTodoByID(ctx context.Context, request *requests.DeleteTodoByID) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("todoUsecase.DeleteTodoByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, request.TodoID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}

	if _, err := uc.findOwnedTodo(ctx, request.TodoID, session.UserID); err != nil {
		return err
	}

	return uc.TodoRepository.DeleteByID(ctx, request.TodoID)
}

func (uc *todoUsecase) findOwnedTodo(ctx context.Context, todoID, userID string) (*models.Todo, error) {
	todo, err := uc.TodoRepository.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, exceptions.ErrTodoNotFound(nil)
	}
	if todo.UserID != userID {
		return nil, exceptions.ErrNotTodoOwner(nil)
	}
	return todo, nil
}

func mapTodoToResponse(todo *models.Todo) *responses.Todo {
	response := &responses.Todo{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt.Format(time.RFC3339),
	}
	if todo.DueDate != nil {
		response.DueDate = todo.DueDate.Format(constvars.DateLayout)
	}
	return response
}
