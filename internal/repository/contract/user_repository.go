package contract

import (
	"context"

	"chatlog-be/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../mocks/mock_repository.go -package=mocks chatlog-be/internal/repository/contract UserRepository,ChatRecordRepository,SessionStore

// UserRepository persists user identities. Unique email and username are
// enforced by the store; Create reports violations as
// apperror.ErrDuplicateEmail / apperror.ErrDuplicateUsername.
// Finders return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindById(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
