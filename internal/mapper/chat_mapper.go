package mapper

import (
	"chatlog-be/internal/entity"
	"chatlog-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatRecordToEntity(r *model.ChatRecord) *entity.ChatRecord {
	if r == nil {
		return nil
	}
	return &entity.ChatRecord{
		Id:        r.Id,
		UserId:    r.UserId,
		Message:   r.Message,
		Response:  r.Response,
		Timestamp: r.CreatedAt,
	}
}

func (m *ChatMapper) ChatRecordToModel(r *entity.ChatRecord) *model.ChatRecord {
	if r == nil {
		return nil
	}
	return &model.ChatRecord{
		Id:        r.Id,
		UserId:    r.UserId,
		Message:   r.Message,
		Response:  r.Response,
		CreatedAt: r.Timestamp,
	}
}

func (m *ChatMapper) ChatRecordsToEntities(records []*model.ChatRecord) []*entity.ChatRecord {
	entities := make([]*entity.ChatRecord, len(records))
	for i, r := range records {
		entities[i] = m.ChatRecordToEntity(r)
	}
	return entities
}
