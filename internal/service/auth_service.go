package service

import (
	"context"
	"sync"
	"time"

	"chatlog-be/internal/dto"
	"chatlog-be/internal/entity"
	"chatlog-be/internal/pkg/apperror"
	"chatlog-be/internal/pkg/hasher"
	"chatlog-be/internal/pkg/logger"
	"chatlog-be/internal/pkg/validation"
	"chatlog-be/internal/repository/unitofwork"
	"chatlog-be/pkg/events"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error)
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*entity.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	hasher         hasher.PasswordHasher
	sessions       ISessionService
	validator      *validation.Validator
	eventPublisher IPublisherService
	logger         logger.ILogger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	passwordHasher hasher.PasswordHasher,
	sessions ISessionService,
	validator *validation.Validator,
	eventPublisher IPublisherService,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		hasher:         passwordHasher,
		sessions:       sessions,
		validator:      validator,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error) {
	req.Normalize()
	if err := s.validator.Struct(ctx, "auth.register", req); err != nil {
		return nil, err
	}

	// Hash before opening the transaction so the row locks are short lived.
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindStoreFailure, "auth.register.hash", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Store("auth.register.begin", err)
	}
	defer uow.Rollback()

	// 1. Fast path duplicate checks; the unique indexes still decide races.
	existing, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Store("auth.register.find_email", err)
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateEmail
	}

	existing, err = uow.UserRepository().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.Store("auth.register.find_username", err)
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateUsername
	}

	// 2. Create
	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if k := apperror.KindOf(err); k == apperror.KindDuplicateEmail || k == apperror.KindDuplicateUsername {
			return nil, err
		}
		return nil, apperror.Store("auth.register.create", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Store("auth.register.commit", err)
	}

	s.eventPublisher.Publish(ctx, events.New(events.TypeUserRegistered, map[string]interface{}{
		"user_id": user.Id,
	}))

	return user, nil
}

// Authenticate never reveals which half of the credentials was wrong: both
// cases return apperror.ErrInvalidCredentials after running one hash
// verification.
func (s *authService) Authenticate(ctx context.Context, req *dto.LoginRequest) (*entity.User, error) {
	req.Normalize()
	if err := s.validator.Struct(ctx, "auth.login", req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Store("auth.login.find", err)
	}

	if user == nil {
		_, _ = s.hasher.Verify(s.dummy(), req.Password)
		return nil, apperror.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(user.PasswordHash, req.Password)
	if err != nil {
		s.logger.Error("Auth", "Stored password hash is unreadable", map[string]interface{}{"user_id": user.Id, "error": err})
		return nil, apperror.ErrInvalidCredentials
	}
	if !ok {
		return nil, apperror.ErrInvalidCredentials
	}

	s.eventPublisher.Publish(ctx, events.New(events.TypeUserLogin, map[string]interface{}{
		"user_id": user.Id,
	}))

	return user, nil
}

// Logout destroys the session behind token. Unknown or expired tokens are
// not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	userId, err := s.sessions.Resolve(ctx, token)
	if err != nil && apperror.KindOf(err) != apperror.KindUnauthenticated {
		return err
	}

	if err := s.sessions.Destroy(ctx, token); err != nil {
		return err
	}

	if userId != 0 {
		s.eventPublisher.Publish(ctx, events.New(events.TypeUserLogout, map[string]interface{}{
			"user_id": userId,
		}))
	}
	return nil
}

// dummy returns a hash produced by the configured
// hasher, so unknown emails cost the same as wrong passwords.
func (s *authService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("chatlog-dummy-password")
		if err != nil {
			s.logger.Warn("Auth", "Failed to prepare dummy hash", map[string]interface{}{"error": err.Error()})
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
