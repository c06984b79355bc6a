package controller

import (
	"wellness-be/internal/dto"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateConversation(ctx *fiber.Ctx) error
	GetConversations(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	DeleteConversation(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Personas(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("personas", c.Personas)
	h.Post("conversations", c.CreateConversation)
	h.Get("conversations", c.GetConversations)
	h.Get("conversations/:id", c.GetConversation)
	h.Delete("conversations/:id", c.DeleteConversation)
	h.Post("conversations/:id/messages", c.SendMessage)
}

func (c *chatController) CreateConversation(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	var req dto.CreateConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.chatService.CreateConversation(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Conversation created", res))
}

func (c *chatController) GetConversations(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	res, err := c.chatService.GetConversations(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversations", res))
}

func (c *chatController) GetConversation(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid conversation id")
	}

	res, err := c.chatService.GetConversation(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}

func (c *chatController) DeleteConversation(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid conversation id")
	}

	if err := c.chatService.DeleteConversation(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Conversation deleted", nil))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid conversation id")
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ConversationId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *chatController) Personas(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	res, err := c.chatService.Personas(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show personas", res))
}
