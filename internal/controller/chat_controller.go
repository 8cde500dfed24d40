package controller

import (
	"chatlog-be/internal/dto"
	"chatlog-be/internal/pkg/serverutils"
	"chatlog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	service     service.IChatService
	requireAuth fiber.Handler
}

func NewChatController(service service.IChatService, requireAuth fiber.Handler) IChatController {
	return &chatController{service: service, requireAuth: requireAuth}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat", c.requireAuth)
	h.Post("/save", c.Save)
	h.Get("/history", c.History)
}

func (c *chatController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveChatRequest
	if err := serverutils.ParseJSON(ctx, "chat.save", &req); err != nil {
		return err
	}

	chat, err := c.service.Save(ctx.UserContext(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.SaveChatResponse{Success: true, Chat: *chat})
}

// History always answers with a JSON array, empty when there is nothing yet.
func (c *chatController) History(ctx *fiber.Ctx) error {
	records, err := c.service.ListRecent(ctx.UserContext(), serverutils.UserID(ctx), service.MaxHistoryLimit)
	if err != nil {
		return err
	}
	return ctx.JSON(records)
}
