package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatlog-be/internal/pkg/logger"
	"chatlog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingExternal struct {
	calls int
}

func (f *failingExternal) Publish(context.Context, events.Event) error {
	f.calls++
	return errors.New("nats unavailable")
}

func TestPublisherToConsumer(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})
	defer pubSub.Close()

	core, audit := observer.New(zapcore.InfoLevel)
	consumer := NewConsumerService(pubSub, "chat_events", logger.NewFromZap(zap.New(core)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	external := &failingExternal{}
	publisher := NewPublisherService("chat_events", pubSub, external, logger.NewNopLogger())
	publisher.Publish(ctx, events.New(events.TypeChatSaved, map[string]interface{}{"user_id": 1}))

	assert.Eventually(t, func() bool {
		return audit.FilterMessage(events.TypeChatSaved).Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	entry := audit.FilterMessage(events.TypeChatSaved).All()[0]
	assert.Equal(t, "Audit", entry.ContextMap()["module"])
	assert.Equal(t, 1, external.calls, "external failure is swallowed")
}

func TestConsumer_AcksMalformedPayload(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	core, audit := observer.New(zapcore.InfoLevel)
	consumer := NewConsumerService(pubSub, "chat_events", logger.NewFromZap(zap.New(core)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	require.NoError(t, pubSub.Publish("chat_events", messageWith([]byte("{not json"))))

	assert.Eventually(t, func() bool {
		return audit.FilterMessage("Failed to unmarshal event").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
}
