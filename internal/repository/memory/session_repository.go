package memory

import (
	"context"
	"time"

	"chatlog-be/internal/entity"
	"chatlog-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is a process-local session store. Items carry a TTL
// derived from the session expiry; the janitor purges expired items every
// 10 minutes.
type SessionRepository struct {
	cache *cache.Cache
	now   func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(24*time.Hour, 10*time.Minute),
		now:   time.Now,
	}
}

var _ contract.SessionStore = (*SessionRepository)(nil)

// WithClock sets the clock used to derive item TTLs. It should match the
// clock of the session service writing to this store.
func (r *SessionRepository) WithClock(now func() time.Time) *SessionRepository {
	r.now = now
	return r
}

func (r *SessionRepository) Save(_ context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		// go-cache treats non-positive durations as "never expire"; keep the
		// entry briefly and let the session's own expiry reject it.
		ttl = time.Second
	}
	s := *session
	r.cache.Set(session.Token, &s, ttl)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, token string) (*entity.Session, error) {
	if x, found := r.cache.Get(token); found {
		s := *x.(*entity.Session)
		return &s, nil
	}
	return nil, nil
}

func (r *SessionRepository) Delete(_ context.Context, token string) error {
	r.cache.Delete(token)
	return nil
}
