package server

import (
	"crypto/sha256"
	"encoding/base64"

	"chatlog-be/internal/bootstrap"
	"chatlog-be/internal/config"
	"chatlog-be/internal/pkg/logger"
	"chatlog-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             1 * 1024 * 1024, // 1MB
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(serverutils.RequestLogger(container.Logger))
	app.Use(serverutils.ErrorHandlerMiddleware(container.Translator, container.Logger))
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language",
		AllowMethods:     "GET, POST, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	if cfg.Observability.TracingEnabled {
		app.Use(otelfiber.Middleware())
	}

	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cookieKey(cfg.Session.Secret, container.Logger),
	}))
	app.Use(serverutils.LocaleMiddleware(container.Translator))

	// Routes
	registerRoutes(app, container)

	// Static
	app.Static("/assets", cfg.App.WebDir+"/assets")

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", "Server is running", map[string]interface{}{"addr": "http://localhost:" + s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.UserController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)

	c.PageController.RegisterRoutes(app)
}

// cookieKey derives the AES-256 key for encryptcookie from SESSION_SECRET.
// Without a secret a random key is used, so cookies do not survive a restart.
func cookieKey(secret string, log logger.ILogger) string {
	if secret == "" {
		log.Warn("Server", "SESSION_SECRET is empty, using a random cookie key", nil)
		return encryptcookie.GenerateKey()
	}
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
