package todos

import (
	"context"
	"testing"
	"time"
	"timegrid-service/internal/app/models"
	"timegrid-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) CreateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	args := m.Called(ctx, todo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *MockTodoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Todo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Todo), args.Error(1)
}

func (m *MockTodoRepository) FindByID(ctx context.Context, todoID string) (*models.Todo, error) {
	args := m.Called(ctx, todoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *MockTodoRepository) UpdateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	args := m.Called(ctx, todo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *MockTodoRepository) DeleteByID(ctx context.Context, todoID string) error {
	args := m.Called(ctx, todoID)
	return args.Error(0)
}

type stubSessionService struct{}

func (stubSessionService) CreateSession(context.Context, *models.Session) error { return nil }

func (stubSessionService) ParseSessionData(_ context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, err
	}
	return session, nil
}

func (stubSessionService) GetSessionData(context.Context, string) (string, error) { return "", nil }

func (stubSessionService) DeleteSession(context.Context, string) error { return nil }

func sessionDataFor(t *testing.T, userID string) string {
	t.Helper()
	raw, err := json.Marshal(&models.Session{
		SessionID: "session-" + userID,
		UserID:    userID,
		Email:     userID + "@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assert.NoError(t, err)
	return string(raw)
}

func newTestTodoUsecase(repository *MockTodoRepository) *todoUsecase {
	return &todoUsecase{
		TodoRepository: repository,
		SessionService: stubSessionService{},
		Log:            zap.NewNop(),
	}
}

func TestCreateTodo_OwnerComesFromSession(t *testing.T) {
	mockRepository := new(MockTodoRepository)
	usecase := newTestTodoUsecase(mockRepository)

	mockRepository.On("CreateTodo", mock.Anything, mock.MatchedBy(func(todo *models.Todo) bool {
		return todo.UserID == "user-1" && todo.Title == "Buy milk"
	})).Return(&models.Todo{ID: "todo-1", UserID: "user-1", Title: "Buy milk"}, nil)

	response, err := usecase.CreateTodo(context.Background(), &requests.CreateTodo{
		Title:       "Buy milk",
		SessionData: sessionDataFor(t, "user-1"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "todo-1", response.ID)
	assert.Equal(t, "Buy milk", response.Title)
	mockRepository.AssertExpectations(t)
}

func TestUpdateTodo_NotFound(t *testing.T) {
	mockRepository := new(MockTodoRepository)
	usecase := newTestTodoUsecase(mockRepository)

	mockRepository.On("FindByID", mock.Anything, "missing-todo").Return(nil, nil)

	title := "New title"
	response, err := usecase.UpdateTodo(context.Background(), &requests.UpdateTodo{
		Title:       &title,
		TodoID:      "missing-todo",
		SessionData: sessionDataFor(t, "user-1"),
	})

	assert.Nil(t, response)
	assert.Error(t, err)
	mockRepository.AssertNotCalled(t, "UpdateTodo")
}

func TestUpdateTodo_WrongOwnerIsRejected(t *testing.T) {
	mockRepository := new(MockTodoRepository)
	usecase := newTestTodoUsecase(mockRepository)

	mockRepository.On("FindByID", mock.Anything, "todo-1").Return(&models.Todo{
		ID:     "todo-1",
		UserID: "user-2",
		Title:  "Someone else's todo",
	}, nil)

	completed := true
	response, err := usecase.UpdateTodo(context.Background(), &requests.UpdateTodo{
		Completed:   &completed,
		TodoID:      "todo-1",
		SessionData: sessionDataFor(t, "user-1"),
	})

	assert.Nil(t, response)
	assert.Error(t, err)
	mockRepository.AssertNotCalled(t, "UpdateTodo")
}

func TestUpdateTodo_PartialFieldsOnly(t *testing.T) {
	mockRepository := new(MockTodoRepository)
	usecase := newTestTodoUsecase(mockRepository)

	mockRepository.On("FindByID", mock.Anything, "todo-1").Return(&models.Todo{
		ID:        "todo-1",
		UserID:    "user-1",
		Title:     "Original title",
		Completed: false,
	}, nil)
	mockRepository.On("UpdateTodo", mock.Anything, mock.MatchedBy(func(todo *models.Todo) bool {
		return todo.Title == "Original title" && todo.Completed
	})).Return(&models.Todo{ID: "todo-1", UserID: "user-1", Title: "Original title", Completed: true}, nil)

	completed := true
	response, err := usecase.UpdateTodo(context.Background(), &requests.UpdateTodo{
		Completed:   &completed,
		TodoID:      "todo-1",
		SessionData: sessionDataFor(t, "user-1"),
	})

	assert.NoError(t, err)
	assert.True(t, response.Completed)
	assert.Equal(t, "Original title", response.Title, "untouched fields must survive a partial update")
	mockRepository.AssertExpectations(t)
}

func TestDeleteTodoByID_WrongOwnerIsRejected(t *testing.T) {
	mockRepository := new(MockTodoRepository)
	usecase := newTestTodoUsecase(mockRepository)

	mockRepository.On("FindByID", mock.Anything, "todo-1").Return(&models.Todo{
		ID:     "todo-1",
		UserID: "user-2",
	}, nil)

	err := usecase.DeleteTodoByID(context.Background(), &requests.DeleteTodoByID{
		TodoID:      "todo-1",
		SessionData: sessionDataFor(t, "user-1"),
	})

	assert.Error(t, err)
	mockRepository.AssertNotCalled(t, "DeleteByID")
}
