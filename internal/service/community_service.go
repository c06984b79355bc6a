package service

import (
	"context"
	"time"

	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/pkg/logger"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"
	"wellness-be/pkg/community"
	"wellness-be/pkg/events"
	"wellness-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICommunityService interface {
	GetCommunities(ctx context.Context) ([]*dto.CommunityResponse, error)
	CreatePost(ctx context.Context, userId uuid.UUID, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error)
	GetPost(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, userId uuid.UUID, req *dto.ListPostsRequest) (*dto.ListPostsResponse, error)
	ToggleLike(ctx context.Context, userId uuid.UUID, postId uuid.UUID) (*dto.LikePostResponse, error)
	CreateComment(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComments(ctx context.Context, postId uuid.UUID) ([]*dto.CommentResponse, error)
}

type communityService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *nats.Publisher
	logger     logger.ILogger
}

func NewCommunityService(
	uowFactory unitofwork.RepositoryFactory,
	publisher *nats.Publisher,
	log logger.ILogger,
) ICommunityService {
	return &communityService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *communityService) GetCommunities(ctx context.Context) ([]*dto.CommunityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	communities, err := uow.CommunityRepository().FindAll(ctx, specification.OrderBy{Field: "member_count", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommunityResponse, len(communities))
	for i, c := range communities {
		result[i] = &dto.CommunityResponse{
			Id:          c.Id,
			Name:        c.Name,
			Description: c.Description,
			MemberCount: c.MemberCount,
		}
	}
	return result, nil
}

func (s *communityService) CreatePost(ctx context.Context, userId uuid.UUID, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comm, err := uow.CommunityRepository().FindOne(ctx, specification.ByID{ID: req.CommunityId})
	if err != nil {
		return nil, err
	}
	if comm == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Community not found")
	}

	post := entity.Post{
		Id:          uuid.New(),
		CommunityId: req.CommunityId,
		UserId:      userId,
		Content:     req.Content,
		CreatedAt:   time.Now(),
	}
	if err := uow.PostRepository().Create(ctx, &post); err != nil {
		return nil, err
	}

	return &dto.CreatePostResponse{Id: post.Id}, nil
}

func (s *communityService) GetPost(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Post not found")
	}

	likedByMe := false
	if userId != uuid.Nil {
		like, err := uow.PostLikeRepository().FindOne(ctx,
			specification.ByPostID{PostID: id},
			specification.ByUserID{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		likedByMe = like != nil
	}

	res := postResponse(post)
	res.LikedByMe = likedByMe
	return res, nil
}

func (s *communityService) ListPosts(ctx context.Context, userId uuid.UUID, req *dto.ListPostsRequest) (*dto.ListPostsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := []specification.Specification{}
	if req.CommunityId != uuid.Nil {
		filter = append(filter, specification.ByCommunityID{CommunityID: req.CommunityId})
	}

	total, err := uow.PostRepository().Count(ctx, filter...)
	if err != nil {
		return nil, err
	}

	var posts []*entity.Post
	switch req.Sort {
	case "trending", "hot":
		// Engagement scores decay with age, so the whole matching set is
		// scored in Go before slicing the page.
		posts, err = uow.PostRepository().FindAll(ctx, filter...)
		if err != nil {
			return nil, err
		}
		if req.Sort == "trending" {
			community.SortTrending(posts, postEngagement)
		} else {
			community.SortHot(posts, time.Now(), postEngagement)
		}
		start := (page - 1) * limit
		if start >= len(posts) {
			start = len(posts)
		}
		end := start + limit
		if end > len(posts) {
			end = len(posts)
		}
		posts = posts[start:end]

	case "most_liked":
		posts, err = s.pagedPosts(ctx, uow, filter, "likes_count", page, limit)
	case "most_commented":
		posts, err = s.pagedPosts(ctx, uow, filter, "comments_count", page, limit)
	default:
		posts, err = s.pagedPosts(ctx, uow, filter, "created_at", page, limit)
	}
	if err != nil {
		return nil, err
	}

	likedSet, err := s.likedPostIds(ctx, uow, userId, posts)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PostResponse, len(posts))
	for i, p := range posts {
		res := postResponse(p)
		res.LikedByMe = likedSet[p.Id]
		result[i] = *res
	}

	return &dto.ListPostsResponse{
		Posts:   result,
		Total:   total,
		Page:    page,
		HasMore: int64(page*limit) < total,
	}, nil
}

func (s *communityService) pagedPosts(ctx context.Context, uow unitofwork.UnitOfWork, filter []specification.Specification, orderField string, page, limit int) ([]*entity.Post, error) {
	specs := make([]specification.Specification, 0, len(filter)+2)
	specs = append(specs, filter...)
	specs = append(specs,
		specification.OrderBy{Field: orderField, Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	return uow.PostRepository().FindAll(ctx, specs...)
}

func (s *communityService) likedPostIds(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, posts []*entity.Post) (map[uuid.UUID]bool, error) {
	likedSet := make(map[uuid.UUID]bool)
	if userId == uuid.Nil || len(posts) == 0 {
		return likedSet, nil
	}

	ids := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		ids[i] = p.Id
	}

	likes, err := uow.PostLikeRepository().FindAll(ctx,
		specification.ByPostIDs{PostIDs: ids},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	for _, l := range likes {
		likedSet[l.PostId] = true
	}
	return likedSet, nil
}

func (s *communityService) ToggleLike(ctx context.Context, userId uuid.UUID, postId uuid.UUID) (*dto.LikePostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: postId})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Post not found")
	}

	existing, err := uow.PostLikeRepository().FindOne(ctx,
		specification.ByPostID{PostID: postId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	liked := existing == nil
	delta := 1
	if !liked {
		delta = -1
	}

	if liked {
		like := entity.PostLike{
			Id:        uuid.New(),
			PostId:    postId,
			UserId:    userId,
			CreatedAt: time.Now(),
		}
		if err := uow.PostLikeRepository().Create(ctx, &like); err != nil {
			uow.Rollback()
			return nil, err
		}
	} else {
		if err := uow.PostLikeRepository().Delete(ctx, postId, userId); err != nil {
			uow.Rollback()
			return nil, err
		}
	}

	if err := uow.PostRepository().IncrementCounter(ctx, postId, "likes_count", delta); err != nil {
		uow.Rollback()
		return nil, err
	}

	// Read the counter back after the atomic increment so concurrent toggles
	// cannot skew the reported total.
	likesCount := post.LikesCount + delta
	updated, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: postId})
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if updated != nil {
		likesCount = updated.LikesCount
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if liked && post.UserId != userId {
		s.publishEngagement(ctx, events.TypePostLiked, post, userId)
	}

	return &dto.LikePostResponse{
		PostId:     postId,
		Liked:      liked,
		LikesCount: likesCount,
	}, nil
}

func (s *communityService) CreateComment(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: req.PostId})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Post not found")
	}

	comment := entity.Comment{
		Id:        uuid.New(),
		PostId:    req.PostId,
		UserId:    userId,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.CommentRepository().Create(ctx, &comment); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.PostRepository().IncrementCounter(ctx, req.PostId, "comments_count", 1); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if post.UserId != userId {
		s.publishEngagement(ctx, events.TypePostCommented, post, userId)
	}

	return &dto.CommentResponse{
		Id:        comment.Id,
		PostId:    comment.PostId,
		UserId:    comment.UserId,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *communityService) GetComments(ctx context.Context, postId uuid.UUID) ([]*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByPostID{PostID: postId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommentResponse, len(comments))
	for i, c := range comments {
		result[i] = &dto.CommentResponse{
			Id:        c.Id,
			PostId:    c.PostId,
			UserId:    c.UserId,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
	}
	return result, nil
}

func (s *communityService) publishEngagement(ctx context.Context, eventType string, post *entity.Post, actorId uuid.UUID) {
	if s.publisher == nil {
		return
	}

	event := events.NewBaseEvent(eventType, map[string]interface{}{
		"user_id":  post.UserId.String(),
		"actor_id": actorId.String(),
		"post_id":  post.Id.String(),
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("CommunityService", "Failed to publish engagement event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func postResponse(p *entity.Post) *dto.PostResponse {
	return &dto.PostResponse{
		Id:            p.Id,
		CommunityId:   p.CommunityId,
		UserId:        p.UserId,
		Content:       p.Content,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		SharesCount:   p.SharesCount,
		CreatedAt:     p.CreatedAt,
	}
}

func postEngagement(p *entity.Post) community.Engagement {
	return community.Engagement{
		Likes:     p.LikesCount,
		Comments:  p.CommentsCount,
		Shares:    p.SharesCount,
		CreatedAt: p.CreatedAt,
	}
}
