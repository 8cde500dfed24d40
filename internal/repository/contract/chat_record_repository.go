package contract

import (
	"context"

	"chatlog-be/internal/entity"
)

type ChatRecordRepository interface {
	Create(ctx context.Context, record *entity.ChatRecord) error
	// FindRecentByUser returns at most limit records owned by userId, newest first.
	FindRecentByUser(ctx context.Context, userId int64, limit int) ([]*entity.ChatRecord, error)
}
