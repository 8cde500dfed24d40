//go:generate go run go.uber.org/mock/mockgen -destination=../../mocks/mock_unit_of_work.go -package=mocks chatlog-be/internal/repository/unitofwork UnitOfWork,RepositoryFactory

package unitofwork

import (
	"context"

	"chatlog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatRecordRepository() contract.ChatRecordRepository
}
