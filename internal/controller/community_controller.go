package controller

import (
	"wellness-be/internal/dto"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICommunityController interface {
	RegisterRoutes(r fiber.Router)
	GetCommunities(ctx *fiber.Ctx) error
	ListPosts(ctx *fiber.Ctx) error
	CreatePost(ctx *fiber.Ctx) error
	GetPost(ctx *fiber.Ctx) error
	ToggleLike(ctx *fiber.Ctx) error
	CreateComment(ctx *fiber.Ctx) error
	GetComments(ctx *fiber.Ctx) error
}

type communityController struct {
	communityService service.ICommunityService
}

func NewCommunityController(communityService service.ICommunityService) ICommunityController {
	return &communityController{
		communityService: communityService,
	}
}

func (c *communityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/community/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("communities", c.GetCommunities)
	h.Get("communities/:id/posts", c.ListPosts)
	h.Post("posts", c.CreatePost)
	h.Get("posts/:id", c.GetPost)
	h.Post("posts/:id/like", c.ToggleLike)
	h.Post("posts/:id/comments", c.CreateComment)
	h.Get("posts/:id/comments", c.GetComments)
}

func (c *communityController) GetCommunities(ctx *fiber.Ctx) error {
	res, err := c.communityService.GetCommunities(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show communities", res))
}

func (c *communityController) ListPosts(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	communityId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid community id")
	}

	req := dto.ListPostsRequest{
		CommunityId: communityId,
		Sort:        ctx.Query("sort", "newest"),
		Page:        ctx.QueryInt("page", 1),
		Limit:       ctx.QueryInt("limit", 20),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.communityService.ListPosts(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show posts", res))
}

func (c *communityController) CreatePost(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	var req dto.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.communityService.CreatePost(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Post created", res))
}

func (c *communityController) GetPost(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid post id")
	}

	res, err := c.communityService.GetPost(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show post", res))
}

func (c *communityController) ToggleLike(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid post id")
	}

	res, err := c.communityService.ToggleLike(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle like", res))
}

func (c *communityController) CreateComment(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PostId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.communityService.CreateComment(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Comment created", res))
}

func (c *communityController) GetComments(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid post id")
	}

	res, err := c.communityService.GetComments(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show comments", res))
}
