package controller

import (
	"chatlog-be/internal/pkg/serverutils"
	"chatlog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
}

type userController struct {
	service     service.IUserService
	requireAuth fiber.Handler
}

func NewUserController(service service.IUserService, requireAuth fiber.Handler) IUserController {
	return &userController{service: service, requireAuth: requireAuth}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Get("/me", c.requireAuth, c.GetProfile)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.service.GetProfile(ctx.UserContext(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
