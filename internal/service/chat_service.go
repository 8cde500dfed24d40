package service

import (
	"context"
	"time"

	"chatlog-be/internal/dto"
	"chatlog-be/internal/entity"
	"chatlog-be/internal/pkg/apperror"
	"chatlog-be/internal/pkg/validation"
	"chatlog-be/internal/repository/unitofwork"
	"chatlog-be/pkg/events"

	"github.com/google/uuid"
)

const MaxHistoryLimit = 50

type IChatService interface {
	Save(ctx context.Context, userId int64, req *dto.SaveChatRequest) (*dto.ChatRecordResponse, error)
	ListRecent(ctx context.Context, userId int64, limit int) ([]*dto.ChatRecordResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	validator      *validation.Validator
	eventPublisher IPublisherService
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, validator *validation.Validator, eventPublisher IPublisherService) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		validator:      validator,
		eventPublisher: eventPublisher,
	}
}

func (s *chatService) Save(ctx context.Context, userId int64, req *dto.SaveChatRequest) (*dto.ChatRecordResponse, error) {
	if err := s.validator.Struct(ctx, "chat.save", req); err != nil {
		return nil, err
	}

	record := &entity.ChatRecord{
		Id:        uuid.New(),
		UserId:    userId,
		Message:   req.Message,
		Response:  req.Response,
		Timestamp: time.Now().UTC(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatRecordRepository().Create(ctx, record); err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, err
		}
		return nil, apperror.Store("chat.save", err)
	}

	s.eventPublisher.Publish(ctx, events.New(events.TypeChatSaved, map[string]interface{}{
		"user_id": userId,
		"chat_id": record.Id.String(),
	}))

	return toChatRecordResponse(record), nil
}

// ListRecent returns the newest records of userId. Limits outside
// (0, MaxHistoryLimit] are clamped to MaxHistoryLimit.
func (s *chatService) ListRecent(ctx context.Context, userId int64, limit int) ([]*dto.ChatRecordResponse, error) {
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.ChatRecordRepository().FindRecentByUser(ctx, userId, limit)
	if err != nil {
		return nil, apperror.Store("chat.list_recent", err)
	}

	res := make([]*dto.ChatRecordResponse, 0, len(records))
	for _, r := range records {
		res = append(res, toChatRecordResponse(r))
	}
	return res, nil
}

func toChatRecordResponse(r *entity.ChatRecord) *dto.ChatRecordResponse {
	return &dto.ChatRecordResponse{
		Id:        r.Id,
		Message:   r.Message,
		Response:  r.Response,
		Timestamp: r.Timestamp,
	}
}
