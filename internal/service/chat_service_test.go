package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"chatlog-be/internal/dto"
	"chatlog-be/internal/mocks"
	"chatlog-be/internal/pkg/apperror"
	"chatlog-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChatService_Save(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := register(t, env, "alice", "alice@example.com", "pw123")

	chat, err := env.chats.Save(ctx, id, &dto.SaveChatRequest{Message: "hi", Response: "hello"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, chat.Id)
	assert.Equal(t, "hi", chat.Message)
	assert.Equal(t, "hello", chat.Response)
	assert.False(t, chat.Timestamp.IsZero())

	history, err := env.chats.ListRecent(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, chat.Id, history[0].Id)

	assert.Contains(t, env.publisher.types(), events.TypeChatSaved)
}

func TestChatService_SaveRejectsBlankFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := register(t, env, "alice", "alice@example.com", "pw123")

	for _, req := range []dto.SaveChatRequest{
		{Message: "", Response: "hello"},
		{Message: "hi", Response: ""},
		{Message: "  ", Response: "hello"},
	} {
		req := req
		_, err := env.chats.Save(ctx, id, &req)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	}

	history, err := env.chats.ListRecent(ctx, id, 0)
	require.NoError(t, err)
	assert.Empty(t, history, "nothing is persisted on validation failure")
}

func TestChatService_ListRecent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := register(t, env, "alice", "alice@example.com", "pw123")
	bob := register(t, env, "bob", "bob@example.com", "pw123")

	for i := 0; i < 60; i++ {
		_, err := env.chats.Save(ctx, alice, &dto.SaveChatRequest{Message: fmt.Sprintf("m%d", i), Response: "r"})
		require.NoError(t, err)
	}
	_, err := env.chats.Save(ctx, bob, &dto.SaveChatRequest{Message: "bob only", Response: "r"})
	require.NoError(t, err)

	history, err := env.chats.ListRecent(ctx, alice, 0)
	require.NoError(t, err)
	require.Len(t, history, MaxHistoryLimit)
	assert.Equal(t, "m59", history[0].Message, "newest first")
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Timestamp.After(history[i-1].Timestamp))
	}

	capped, err := env.chats.ListRecent(ctx, alice, 500)
	require.NoError(t, err)
	assert.Len(t, capped, MaxHistoryLimit)

	few, err := env.chats.ListRecent(ctx, alice, 3)
	require.NoError(t, err)
	assert.Len(t, few, 3)

	bobs, err := env.chats.ListRecent(ctx, bob, 0)
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, "bob only", bobs[0].Message)

	none, err := env.chats.ListRecent(ctx, bob+1, 0)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestChatService_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockRepositoryFactory(ctrl)
	uow := mocks.NewMockUnitOfWork(ctrl)
	records := mocks.NewMockChatRecordRepository(ctrl)

	factory.EXPECT().NewUnitOfWork(gomock.Any()).Return(uow).AnyTimes()
	uow.EXPECT().ChatRecordRepository().Return(records).AnyTimes()
	records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	records.EXPECT().FindRecentByUser(gomock.Any(), int64(1), MaxHistoryLimit).Return(nil, errors.New("disk full"))

	pub := &recordingPublisher{}
	svc := NewChatService(factory, newTestValidator(t), pub)

	_, err := svc.Save(context.Background(), 1, &dto.SaveChatRequest{Message: "hi", Response: "hello"})
	assert.Equal(t, apperror.KindStoreFailure, apperror.KindOf(err))
	assert.Empty(t, pub.types(), "no event for a failed save")

	_, err = svc.ListRecent(context.Background(), 1, -5)
	assert.Equal(t, apperror.KindStoreFailure, apperror.KindOf(err))
}
