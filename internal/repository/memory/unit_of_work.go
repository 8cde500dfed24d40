package memory

import (
	"context"

	"chatlog-be/internal/repository/contract"
	"chatlog-be/internal/repository/unitofwork"
)

type repositoryFactory struct {
	store *Store
}

// NewRepositoryFactory returns a factory whose units of work all share store.
func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork has no rollback: every memory write is already atomic on its own.
type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(_ context.Context) error { return nil }
func (u *unitOfWork) Commit() error                 { return nil }
func (u *unitOfWork) Rollback() error               { return nil }

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return NewUserRepository(u.store)
}

func (u *unitOfWork) ChatRecordRepository() contract.ChatRecordRepository {
	return NewChatRecordRepository(u.store)
}
