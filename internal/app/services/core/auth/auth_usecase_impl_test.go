package auth

import (
	"context"
	"testing"
	"timegrid-service/internal/app/config"
	"timegrid-service/internal/app/models"
	"timegrid-service/internal/pkg/dto/requests"
	"timegrid-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestAuthUsecase(userRepository *MockUserRepository, sessionService *MockSessionService) *authUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "test-jwt-secret", ExpTimeInHour: 1},
		},
		Log: zap.NewNop(),
	}
}

func TestRegisterUser_EmailAlreadyTaken(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockSessionService := new(MockSessionService)
	usecase := newTestAuthUsecase(mockUserRepository, mockSessionService)

	mockUserRepository.On("FindByEmail", mock.Anything, "taken@example.com").Return(&models.User{
		ID:    "user-1",
		Email: "taken@example.com",
	}, nil)

	response, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
		Name:     "Somebody",
		Email:    "Taken@Example.com",
		Password: "secret-password",
	})

	assert.Nil(t, response)
	assert.Error(t, err)
	mockUserRepository.AssertNotCalled(t, "CreateUser")
}

func TestRegisterUser_NormalizesEmailAndHashesPassword(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockSessionService := new(MockSessionService)
	usecase := newTestAuthUsecase(mockUserRepository, mockSessionService)

	mockUserRepository.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	mockUserRepository.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
		return user.Email == "new@example.com" &&
			user.Password != "secret-password" &&
			utils.CheckPasswordHash("secret-password", user.Password)
	})).Return("user-1", nil)
	mockSessionService.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	response, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
		Name:     "Somebody",
		Email:    "  New@Example.COM ",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-1", response.ID)
	assert.Equal(t, "new@example.com", response.Email)
	assert.NotEmpty(t, response.Token)
	mockUserRepository.AssertExpectations(t)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockSessionService := new(MockSessionService)
	usecase := newTestAuthUsecase(mockUserRepository, mockSessionService)

	hashed, err := utils.HashPassword("right-password")
	assert.NoError(t, err)

	mockUserRepository.On("FindByEmail", mock.Anything, "user@example.com").Return(&models.User{
		ID:       "user-1",
		Email:    "user@example.com",
		Password: hashed,
	}, nil)

	response, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, response)
	assert.Error(t, err)
	mockSessionService.AssertNotCalled(t, "CreateSession")
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockSessionService := new(MockSessionService)
	usecase := newTestAuthUsecase(mockUserRepository, mockSessionService)

	mockUserRepository.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	response, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Nil(t, response)
	assert.Error(t, err, "unknown email and wrong password must be indistinguishable")
}
