package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"chatlog-be/internal/pkg/hasher"
	"chatlog-be/internal/pkg/i18n"
	"chatlog-be/internal/pkg/logger"
	"chatlog-be/internal/pkg/validation"
	"chatlog-be/internal/repository/memory"
	"chatlog-be/internal/repository/unitofwork"
	"chatlog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

// countingHasher counts Hash and Verify calls on top of a real hasher.
type countingHasher struct {
	hasher.PasswordHasher
	mu       sync.Mutex
	hashes   int
	verifies int
}

func (h *countingHasher) Hash(password string) (string, error) {
	h.mu.Lock()
	h.hashes++
	h.mu.Unlock()
	return h.PasswordHasher.Hash(password)
}

func (h *countingHasher) Verify(hash, password string) (bool, error) {
	h.mu.Lock()
	h.verifies++
	h.mu.Unlock()
	return h.PasswordHasher.Verify(hash, password)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type testEnv struct {
	factory   unitofwork.RepositoryFactory
	validator *validation.Validator
	hasher    *countingHasher
	clock     *fakeClock
	sessions  ISessionService
	publisher *recordingPublisher
	auth      IAuthService
	users     IUserService
	chats     IChatService
}

func newTestValidator(t *testing.T) *validation.Validator {
	t.Helper()
	tr, err := i18n.NewTranslator(i18n.LocaleEnglish)
	require.NoError(t, err)
	v, err := validation.New(tr)
	require.NoError(t, err)
	return v
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	factory := memory.NewRepositoryFactory(memory.NewStore())
	v := newTestValidator(t)
	h := &countingHasher{PasswordHasher: hasher.NewBcryptHasher(bcrypt.MinCost)}
	pub := &recordingPublisher{}
	log := logger.NewNopLogger()

	sessions := NewSessionService(memory.NewSessionRepository().WithClock(clock.Now), DefaultSessionTTL, log, WithSessionClock(clock.Now))

	return &testEnv{
		factory:   factory,
		validator: v,
		hasher:    h,
		clock:     clock,
		sessions:  sessions,
		publisher: pub,
		auth:      NewAuthService(factory, h, sessions, v, pub, log),
		users:     NewUserService(factory),
		chats:     NewChatService(factory, v, pub),
	}
}

func messageWith(payload []byte) *message.Message {
	return message.NewMessage(watermill.NewUUID(), payload)
}
