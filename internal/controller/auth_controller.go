package controller

import (
	"chatlog-be/internal/dto"
	"chatlog-be/internal/pkg/serverutils"
	"chatlog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	homePath  = "/index.html"
	loginPath = "/login"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	sessions service.ISessionService
	cookie   serverutils.SessionCookie
}

func NewAuthController(service service.IAuthService, sessions service.ISessionService, cookie serverutils.SessionCookie) IAuthController {
	return &authController{
		service:  service,
		sessions: sessions,
		cookie:   cookie,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/register", c.Register)
	r.Post("/login", c.Login)
	r.Get("/logout", c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := serverutils.ParseJSON(ctx, "auth.register", &req); err != nil {
		return err
	}

	user, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.startSession(ctx, user.Id)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ParseJSON(ctx, "auth.login", &req); err != nil {
		return err
	}

	user, err := c.service.Authenticate(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.startSession(ctx, user.Id)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(ctx.UserContext(), c.cookie.Token(ctx)); err != nil {
		return err
	}
	c.cookie.Clear(ctx)
	return ctx.JSON(dto.RedirectResponse{Success: true, Redirect: loginPath})
}

func (c *authController) startSession(ctx *fiber.Ctx, userId int64) error {
	session, err := c.sessions.Create(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	c.cookie.Set(ctx, session.Token)
	return ctx.JSON(dto.RedirectResponse{Success: true, Redirect: homePath})
}
