package session

import (
	"context"
	"sync"
	"time"
	"timegrid-service/internal/app/contracts"
	"timegrid-service/internal/app/models"
	"timegrid-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	onceSessionService.Do(func() {
		instance := &sessionService{
			RedisRepository: redisRepository,
		}
		sessionServiceInstance = instance
	})
	return sessionServiceInstance
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return s.RedisRepository.Set(ctx, session.SessionID, session, time.Until(session.ExpiresAt))
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	if session.SessionID == "" || session.UserID == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return session, nil
}

func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := s.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrInvalidSession(nil)
	}
	return sessionData, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionID)
}
