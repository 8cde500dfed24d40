package service

import (
	"context"
	"encoding/json"

	"chatlog-be/internal/pkg/logger"
	"chatlog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IPublisherService emits domain events. Publishing is best effort: failures
// are logged and never surface to the caller.
type IPublisherService interface {
	Publish(ctx context.Context, event events.Event)
}

// ExternalPublisher is an optional second transport, e.g. NATS JetStream.
type ExternalPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
	external  ExternalPublisher
	logger    logger.ILogger
}

func NewPublisherService(topicName string, publisher message.Publisher, external ExternalPublisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
		external:  external,
		logger:    log,
	}
}

func (s *publisherService) Publish(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(events.ToEnvelope(event))
	if err != nil {
		s.logger.Error("Events", "Failed to marshal event", map[string]interface{}{"type": event.EventType(), "error": err})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", event.EventType())
	if err := s.publisher.Publish(s.topicName, msg); err != nil {
		s.logger.Warn("Events", "Failed to publish event", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
	}

	if s.external != nil {
		if err := s.external.Publish(ctx, event); err != nil {
			s.logger.Warn("Events", "Failed to publish event to external bus", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
		}
	}
}

type nopPublisher struct{}

// NewNopPublisher discards every event.
func NewNopPublisher() IPublisherService {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, events.Event) {}
