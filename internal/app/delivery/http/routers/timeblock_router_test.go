package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"timegrid-service/internal/app/config"
	"timegrid-service/internal/app/delivery/http/controllers"
	"timegrid-service/internal/app/delivery/http/middlewares"
	"timegrid-service/internal/app/models"
	"timegrid-service/internal/pkg/dto/requests"
	"timegrid-service/internal/pkg/dto/responses"
	"timegrid-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTimeBlockUsecase struct {
	mock.Mock
}

func (m *MockTimeBlockUsecase) ToggleTimeBlock(ctx context.Context, request *requests.ToggleTimeBlock) (*responses.TimeBlock, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.TimeBlock), args.Error(1)
}

func (m *MockTimeBlockUsecase) GetWeeklyTimeBlocks(ctx context.Context, request *requests.GetWeeklyTimeBlocks) ([]responses.TimeBlock, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.TimeBlock), args.Error(1)
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

func TestTimeBlockRouter(t *testing.T) {
	logger := zap.NewNop()

	testSecret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        testSecret,
			ExpTimeInHour: 1,
		},
	}

	sessionJSON, _ := json.Marshal(&models.Session{
		SessionID: "session-1",
		UserID:    "user-1",
		Email:     "user-1@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	mockSessionService := new(MockSessionService)
	mockSessionService.On("GetSessionData", mock.Anything, "session-1").Return(string(sessionJSON), nil)

	mockTimeBlockUsecase := new(MockTimeBlockUsecase)

	timeBlockController := controllers.NewTimeBlockController(logger, mockTimeBlockUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		SessionService: mockSessionService,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestID)
	attachTimeBlockRoutes(router, middlewareInstance, timeBlockController)

	token, err := utils.GenerateSessionJWT("session-1", testSecret, internalConfig.JWT.ExpTimeInHour)
	assert.NoError(t, err)

	t.Run("Toggle with hour index zero", func(t *testing.T) {
		mockTimeBlockUsecase.On("ToggleTimeBlock", mock.Anything, mock.MatchedBy(func(request *requests.ToggleTimeBlock) bool {
			return request.Date == "2026-03-09" && *request.HourIndex == 0
		})).Return(&responses.TimeBlock{
			ID:    "tb-1",
			Date:  "2026-03-09",
			Hours: make([]bool, models.HoursPerDay),
		}, nil)

		jsonBody, _ := json.Marshal(map[string]interface{}{
			"date":       "2026-03-09",
			"hour_index": 0,
		})

		req := httptest.NewRequest("POST", "/toggle", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "hour index 0 is a valid toggle target")
		mockTimeBlockUsecase.AssertExpectations(t)
	})

	t.Run("Toggle without hour index", func(t *testing.T) {
		jsonBody, _ := json.Marshal(map[string]interface{}{
			"date": "2026-03-09",
		})

		req := httptest.NewRequest("POST", "/toggle", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "missing hour_index must fail validation")
	})

	t.Run("Toggle without token", func(t *testing.T) {
		jsonBody, _ := json.Marshal(map[string]interface{}{
			"date":       "2026-03-09",
			"hour_index": 5,
		})

		req := httptest.NewRequest("POST", "/toggle", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockTimeBlockUsecase.AssertNotCalled(t, "ToggleTimeBlock", mock.Anything, mock.MatchedBy(func(request *requests.ToggleTimeBlock) bool {
			return request.HourIndex != nil && *request.HourIndex == 5
		}))
	})

	t.Run("Weekly without date range", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?start_date=2026-03-09", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "both start_date and end_date are required")
	})

	t.Run("Weekly with full range", func(t *testing.T) {
		mockTimeBlockUsecase.On("GetWeeklyTimeBlocks", mock.Anything, mock.MatchedBy(func(request *requests.GetWeeklyTimeBlocks) bool {
			return request.StartDate == "2026-03-09" && request.EndDate == "2026-03-15"
		})).Return([]responses.TimeBlock{}, nil)

		req := httptest.NewRequest("GET", "/?start_date=2026-03-09&end_date=2026-03-15", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockTimeBlockUsecase.AssertExpectations(t)
	})
}
