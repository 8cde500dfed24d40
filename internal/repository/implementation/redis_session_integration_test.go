package implementation_test

import (
	"context"
	"os"
	"testing"
	"time"

	"chatlog-be/internal/entity"
	"chatlog-be/internal/repository/implementation"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessionRepository(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := implementation.NewRedisSessionRepository(rdb)
	now := time.Now().UTC()
	session := &entity.Session{Token: uuid.New().String(), UserId: 9, CreatedAt: now, ExpiresAt: now.Add(time.Minute)}

	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(9), got.UserId)
	assert.True(t, got.ExpiresAt.Equal(session.ExpiresAt))

	ttl, err := rdb.TTL(ctx, "session:"+session.Token).Result()
	require.NoError(t, err)
	assert.InDelta(t, time.Minute.Seconds(), ttl.Seconds(), 5)

	require.NoError(t, repo.Delete(ctx, session.Token))
	got, err = repo.Get(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, got)

	expired := &entity.Session{Token: uuid.New().String(), UserId: 9, CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(-time.Minute)}
	require.NoError(t, repo.Save(ctx, expired))
	got, err = repo.Get(ctx, expired.Token)
	require.NoError(t, err)
	assert.Nil(t, got, "already expired sessions are not written")
}
