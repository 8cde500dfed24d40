package implementation

import (
	"context"
	"errors"
	"time"

	"chatlog-be/internal/entity"
	"chatlog-be/internal/mapper"
	"chatlog-be/internal/model"
	"chatlog-be/internal/repository/contract"
	"chatlog-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepositoryImpl keeps sessions in the relational store.
type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionRepository(db *gorm.DB) *SessionRepositoryImpl {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

var _ contract.SessionStore = (*SessionRepositoryImpl)(nil)

func (r *SessionRepositoryImpl) Save(ctx context.Context, session *entity.Session) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(r.mapper.ToModel(session)).Error
}

func (r *SessionRepositoryImpl) Get(ctx context.Context, token string) (*entity.Session, error) {
	var m model.Session
	err := specification.ByToken{Token: token}.Apply(r.db.WithContext(ctx)).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SessionRepositoryImpl) Delete(ctx context.Context, token string) error {
	return specification.ByToken{Token: token}.Apply(r.db.WithContext(ctx)).Delete(&model.Session{}).Error
}

// DeleteExpired removes sessions that expired before now. Resolution already
// ignores them; this only reclaims space.
func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := specification.ExpiredBefore{Time: now}.Apply(r.db.WithContext(ctx)).Delete(&model.Session{})
	return res.RowsAffected, res.Error
}
