package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"chatlog-be/internal/entity"
	"chatlog-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UniqueFields(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	alice := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, alice))
	assert.Equal(t, int64(1), alice.Id)
	assert.False(t, alice.CreatedAt.IsZero())

	err := repo.Create(ctx, &entity.User{Username: "alice", Email: "alice@example.com"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateEmail, "email is checked first")

	err = repo.Create(ctx, &entity.User{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateUsername)

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.Id, found.Id)

	missing, err := repo.FindById(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_ConcurrentRegistrationsOneWinner(t *testing.T) {
	repo := NewUserRepository(NewStore())

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Create(context.Background(), &entity.User{Username: "same", Email: "same@example.com"}); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestChatRecordRepository(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	records := NewChatRecordRepository(store)
	ctx := context.Background()

	u := &entity.User{Username: "a", Email: "a@example.com"}
	require.NoError(t, users.Create(ctx, u))

	err := records.Create(ctx, &entity.ChatRecord{UserId: 404, Message: "m", Response: "r"})
	assert.ErrorIs(t, err, apperror.ErrNotFound, "owner must exist")

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	older := &entity.ChatRecord{UserId: u.Id, Message: "older", Response: "r", Timestamp: base}
	newer := &entity.ChatRecord{UserId: u.Id, Message: "newer", Response: "r", Timestamp: base.Add(time.Minute)}
	require.NoError(t, records.Create(ctx, newer))
	require.NoError(t, records.Create(ctx, older))
	assert.NotEmpty(t, older.Id.String())

	got, err := records.FindRecentByUser(ctx, u.Id, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Message)

	got, err = records.FindRecentByUser(ctx, u.Id, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	tied := base.Add(time.Hour)
	for _, m := range []string{"first", "second", "third"} {
		require.NoError(t, records.Create(ctx, &entity.ChatRecord{UserId: u.Id, Message: m, Response: "r", Timestamp: tied}))
	}
	got, err = records.FindRecentByUser(ctx, u.Id, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{got[0].Message, got[1].Message, got[2].Message})
}
