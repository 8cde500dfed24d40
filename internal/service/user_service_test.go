package service

import (
	"context"
	"testing"

	"chatlog-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	env := newTestEnv(t)
	id := register(t, env, "alice", "alice@example.com", "pw123")

	profile, err := env.users.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)

	_, err = env.users.GetProfile(context.Background(), id+100)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
