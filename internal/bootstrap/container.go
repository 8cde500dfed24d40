package bootstrap

import (
	"chatlog-be/internal/config"
	"chatlog-be/internal/controller"
	"chatlog-be/internal/pkg/hasher"
	"chatlog-be/internal/pkg/i18n"
	"chatlog-be/internal/pkg/logger"
	"chatlog-be/internal/pkg/serverutils"
	"chatlog-be/internal/pkg/validation"
	"chatlog-be/internal/service"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	UserController controller.IUserController
	ChatController controller.IChatController
	PageController controller.IPageController

	// Shared by the server middleware chain
	Translator     *i18n.Translator
	Logger         logger.ILogger
	SessionService service.ISessionService
	SessionCookie  serverutils.SessionCookie

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

type ContainerOption func(*containerOptions)

type containerOptions struct {
	hasher      hasher.PasswordHasher
	sessionOpts []service.SessionOption
}

// WithPasswordHasher overrides the hasher chosen by PASSWORD_HASHER.
func WithPasswordHasher(h hasher.PasswordHasher) ContainerOption {
	return func(o *containerOptions) {
		o.hasher = h
	}
}

func WithSessionOptions(opts ...service.SessionOption) ContainerOption {
	return func(o *containerOptions) {
		o.sessionOpts = append(o.sessionOpts, opts...)
	}
}

func NewContainer(cfg *config.Config, infra *Infrastructure, opts ...ContainerOption) (*Container, error) {
	o := &containerOptions{hasher: hasher.New(cfg.Auth.PasswordHasher)}
	for _, opt := range opts {
		opt(o)
	}

	// 1. Core Facades
	translator, err := i18n.NewTranslator(cfg.App.DefaultLocale)
	if err != nil {
		return nil, err
	}
	validator, err := validation.New(translator)
	if err != nil {
		return nil, err
	}

	// 2. Event Bus
	var external service.ExternalPublisher
	if infra.Nats != nil {
		external = infra.Nats
	}
	publisherService := service.NewPublisherService(cfg.App.EventsTopic, infra.PubSub, external, infra.Logger)
	consumerService := service.NewConsumerService(infra.PubSub, cfg.App.EventsTopic, infra.AuditLogger)

	// 3. Services
	sessionService := service.NewSessionService(infra.SessionStore, cfg.Session.TTL, infra.Logger, o.sessionOpts...)
	authService := service.NewAuthService(infra.Factory, o.hasher, sessionService, validator, publisherService, infra.Logger)
	userService := service.NewUserService(infra.Factory)
	chatService := service.NewChatService(infra.Factory, validator, publisherService)

	cookie := serverutils.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.IsProduction(),
		MaxAge: sessionService.TTL(),
	}
	requireAuth := serverutils.RequireSession(sessionService, cookie)

	// 4. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService, sessionService, cookie),
		UserController: controller.NewUserController(userService, requireAuth),
		ChatController: controller.NewChatController(chatService, requireAuth),
		PageController: controller.NewPageController(cfg.App.WebDir, sessionService, cookie),

		Translator:     translator,
		Logger:         infra.Logger,
		SessionService: sessionService,
		SessionCookie:  cookie,

		ConsumerService: consumerService,
	}, nil
}
