package memory

import (
	"context"
	"testing"
	"time"

	"chatlog-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	now := time.Now()

	s := &entity.Session{Token: "tok", UserId: 3, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Save(ctx, s))

	s.UserId = 4 // stored copy must not change
	got, err := repo.Get(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.UserId)

	require.NoError(t, repo.Delete(ctx, "tok"))
	require.NoError(t, repo.Delete(ctx, "tok"))

	got, err = repo.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepository_ItemTTLFollowsClock(t *testing.T) {
	now := time.Now()
	repo := NewSessionRepository().WithClock(func() time.Time { return now.Add(-24 * time.Hour) })

	// Relative to the injected clock the session has a day left, so the
	// cache item must still be present in real time.
	require.NoError(t, repo.Save(context.Background(), &entity.Session{Token: "t", UserId: 1, CreatedAt: now, ExpiresAt: now}))

	got, err := repo.Get(context.Background(), "t")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
