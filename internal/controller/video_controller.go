package controller

import (
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVideoController interface {
	RegisterRoutes(r fiber.Router)
	Feed(ctx *fiber.Ctx) error
}

type videoController struct {
	recommendationService service.IRecommendationService
}

func NewVideoController(recommendationService service.IRecommendationService) IVideoController {
	return &videoController{
		recommendationService: recommendationService,
	}
}

func (c *videoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/video/v1")
	// The feed also serves anonymous browsing, keyed by client IP.
	h.Get("feed", serverutils.OptionalJwtMiddleware, c.Feed)
}

func (c *videoController) Feed(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 0)

	res, err := c.recommendationService.VideoFeed(ctx.Context(), userId, ctx.IP(), page, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show video feed", res))
}
