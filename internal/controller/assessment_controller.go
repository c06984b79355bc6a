package controller

import (
	"wellness-be/internal/dto"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	WellnessProfile(ctx *fiber.Ctx) error
	Plan(ctx *fiber.Ctx) error
	Recommendations(ctx *fiber.Ctx) error
}

type assessmentController struct {
	assessmentService     service.IAssessmentService
	recommendationService service.IRecommendationService
}

func NewAssessmentController(
	assessmentService service.IAssessmentService,
	recommendationService service.IRecommendationService,
) IAssessmentController {
	return &assessmentController{
		assessmentService:     assessmentService,
		recommendationService: recommendationService,
	}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assessment/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Submit)
	h.Get("", c.Show)
	h.Get("wellness-profile", c.WellnessProfile)
	h.Get("plan", c.Plan)
	h.Get("recommendations", c.Recommendations)
}

func (c *assessmentController) Submit(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	var req dto.SubmitAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assessmentService.Submit(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assessment saved", res))
}

func (c *assessmentController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	res, err := c.assessmentService.Show(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show assessment", res))
}

func (c *assessmentController) WellnessProfile(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	res, err := c.assessmentService.WellnessProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show wellness profile", res))
}

func (c *assessmentController) Plan(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	res, err := c.recommendationService.Plan(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show plan", res))
}

func (c *assessmentController) Recommendations(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	res, err := c.recommendationService.ActionableItems(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show recommendations", res))
}
