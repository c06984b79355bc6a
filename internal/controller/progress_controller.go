package controller

import (
	"wellness-be/internal/dto"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Record(ctx *fiber.Ctx) error
	CheckIn(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type progressController struct {
	progressService service.IProgressService
}

func NewProgressController(progressService service.IProgressService) IProgressController {
	return &progressController{
		progressService: progressService,
	}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/progress/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Get)
	h.Post("record", c.Record)
	h.Post("check-in", c.CheckIn)
	h.Get("dashboard", c.Dashboard)
}

func (c *progressController) Get(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	res, err := c.progressService.Get(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show progress", res))
}

func (c *progressController) Record(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	var req dto.RecordProgressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.progressService.Record(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Progress recorded", res))
}

func (c *progressController) CheckIn(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	var req dto.CheckInRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.progressService.CheckIn(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Check-in saved", res))
}

func (c *progressController) Dashboard(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	res, err := c.progressService.Dashboard(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show dashboard", res))
}
