package service

import (
	"context"
	"time"

	"chatlog-be/internal/entity"
	"chatlog-be/internal/pkg/apperror"
	"chatlog-be/internal/pkg/logger"
	"chatlog-be/internal/repository/contract"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 24 * time.Hour

type ISessionService interface {
	Create(ctx context.Context, userId int64) (*entity.Session, error)
	Resolve(ctx context.Context, token string) (int64, error)
	Destroy(ctx context.Context, token string) error
	TTL() time.Duration
}

type sessionService struct {
	store  contract.SessionStore
	ttl    time.Duration
	now    func() time.Time
	logger logger.ILogger
}

type SessionOption func(*sessionService)

// WithSessionClock replaces time.Now, mainly for expiry tests.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *sessionService) {
		s.now = now
	}
}

func NewSessionService(store contract.SessionStore, ttl time.Duration, log logger.ILogger, opts ...SessionOption) ISessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &sessionService{
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		logger: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *sessionService) TTL() time.Duration {
	return s.ttl
}

func (s *sessionService) Create(ctx context.Context, userId int64) (*entity.Session, error) {
	now := s.now()
	session := &entity.Session{
		Token:     uuid.New().String(),
		UserId:    userId,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, apperror.Store("session.create", err)
	}
	return session, nil
}

// Resolve maps a token to its user. Unknown and expired tokens are both
// reported as apperror.ErrUnauthenticated; expired entries are removed.
func (s *sessionService) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, apperror.ErrUnauthenticated
	}

	session, err := s.store.Get(ctx, token)
	if err != nil {
		return 0, apperror.Store("session.resolve", err)
	}
	if session == nil {
		return 0, apperror.ErrUnauthenticated
	}

	if session.ExpiredAt(s.now()) {
		if err := s.store.Delete(ctx, token); err != nil {
			s.logger.Warn("Session", "Failed to delete expired session", map[string]interface{}{"user_id": session.UserId, "error": err.Error()})
		}
		return 0, apperror.ErrUnauthenticated
	}

	return session.UserId, nil
}

func (s *sessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.store.Delete(ctx, token); err != nil {
		return apperror.Store("session.destroy", err)
	}
	return nil
}
