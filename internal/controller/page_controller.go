package controller

import (
	"path/filepath"

	"chatlog-be/internal/dto"
	"chatlog-be/internal/pkg/serverutils"
	"chatlog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IPageController serves the three HTML pages and the landing redirect.
type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Signup(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type pageController struct {
	webDir   string
	sessions service.ISessionService
	cookie   serverutils.SessionCookie
}

func NewPageController(webDir string, sessions service.ISessionService, cookie serverutils.SessionCookie) IPageController {
	return &pageController{
		webDir:   webDir,
		sessions: sessions,
		cookie:   cookie,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/login", c.Login)
	r.Get("/signup", c.Signup)
	r.Get(homePath, serverutils.RequireSessionPage(c.sessions, c.cookie, loginPath), c.Index)
	r.Get("/health", c.Health)
}

func (c *pageController) Root(ctx *fiber.Ctx) error {
	if serverutils.HasSession(ctx, c.sessions, c.cookie) {
		return ctx.Redirect(homePath, fiber.StatusFound)
	}
	return ctx.Redirect(loginPath, fiber.StatusFound)
}

func (c *pageController) Login(ctx *fiber.Ctx) error {
	return c.anonymousPage(ctx, "login.html")
}

func (c *pageController) Signup(ctx *fiber.Ctx) error {
	return c.anonymousPage(ctx, "signup.html")
}

func (c *pageController) Index(ctx *fiber.Ctx) error {
	return ctx.SendFile(filepath.Join(c.webDir, "index.html"))
}

func (c *pageController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{Success: true})
}

// anonymousPage sends users who are already logged in straight to the app.
func (c *pageController) anonymousPage(ctx *fiber.Ctx, file string) error {
	if serverutils.HasSession(ctx, c.sessions, c.cookie) {
		return ctx.Redirect(homePath, fiber.StatusFound)
	}
	return ctx.SendFile(filepath.Join(c.webDir, file))
}
