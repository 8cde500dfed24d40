package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chatlog-be/internal/entity"
	"chatlog-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const redisSessionPrefix = "session:"

type redisSession struct {
	UserId    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisSessionRepository shares sessions across instances. Keys carry a TTL
// matching the session expiry so Redis reclaims them on its own.
type RedisSessionRepository struct {
	rdb redis.UniversalClient
	now func() time.Time
}

func NewRedisSessionRepository(rdb redis.UniversalClient) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb, now: time.Now}
}

var _ contract.SessionStore = (*RedisSessionRepository)(nil)

func (r *RedisSessionRepository) key(token string) string {
	return redisSessionPrefix + token
}

func (r *RedisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(redisSession{
		UserId:    session.UserId,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, r.key(session.Token), data, ttl).Err()
}

func (r *RedisSessionRepository) Get(ctx context.Context, token string) (*entity.Session, error) {
	data, err := r.rdb.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var s redisSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &entity.Session{
		Token:     token,
		UserId:    s.UserId,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, r.key(token)).Err()
}
