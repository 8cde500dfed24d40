package implementation

import (
	"context"

	"chatlog-be/internal/entity"
	"chatlog-be/internal/mapper"
	"chatlog-be/internal/model"
	"chatlog-be/internal/repository/contract"
	"chatlog-be/internal/repository/scope"
	"chatlog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatRecordRepository(db *gorm.DB) contract.ChatRecordRepository {
	return &ChatRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatRecordRepositoryImpl) Create(ctx context.Context, record *entity.ChatRecord) error {
	m := r.mapper.ChatRecordToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ChatRecordToEntity(m)
	return nil
}

func (r *ChatRecordRepositoryImpl) FindRecentByUser(ctx context.Context, userId int64, limit int) ([]*entity.ChatRecord, error) {
	var models []*model.ChatRecord
	query := r.applySpecifications(
		r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc),
		specification.UserOwnedBy{UserID: userId},
		specification.Limit{N: limit},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ChatRecordsToEntities(models), nil
}
