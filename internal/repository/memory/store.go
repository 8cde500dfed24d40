package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"chatlog-be/internal/entity"
	"chatlog-be/internal/pkg/apperror"
	"chatlog-be/internal/repository/contract"

	"github.com/google/uuid"
)

// Store is an in-process stand-in for the relational store, used by tests and
// by STORE_DRIVER=memory. The mutex plays the role of the engine's
// transactional guarantees for uniqueness and id generation.
type Store struct {
	mu      sync.RWMutex
	nextId  int64
	users   map[int64]*entity.User
	records []*entity.ChatRecord
}

func NewStore() *Store {
	return &Store{users: make(map[int64]*entity.User)}
}

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return apperror.ErrDuplicateEmail
		}
	}
	for _, u := range s.users {
		if u.Username == user.Username {
			return apperror.ErrDuplicateUsername
		}
	}

	s.nextId++
	stored := *user
	stored.Id = s.nextId
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.users[stored.Id] = &stored
	*user = stored
	return nil
}

func (r *userRepository) find(match func(*entity.User) bool) *entity.User {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			out := *u
			return &out
		}
	}
	return nil
}

func (r *userRepository) FindById(_ context.Context, id int64) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Id == id }), nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username }), nil
}

type chatRecordRepository struct {
	store *Store
}

func NewChatRecordRepository(store *Store) contract.ChatRecordRepository {
	return &chatRecordRepository{store: store}
}

func (r *chatRecordRepository) Create(_ context.Context, record *entity.ChatRecord) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[record.UserId]; !ok {
		return apperror.New(apperror.KindNotFound, "memory.chat_record.create")
	}

	stored := *record
	if stored.Id == uuid.Nil {
		stored.Id = uuid.New()
	}
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now()
	}
	s.records = append(s.records, &stored)
	*record = stored
	return nil
}

func (r *chatRecordRepository) FindRecentByUser(_ context.Context, userId int64, limit int) ([]*entity.ChatRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.ChatRecord, 0)
	// Walk backwards so equal timestamps keep newest-inserted first.
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].UserId == userId {
			rec := *s.records[i]
			out = append(out, &rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
