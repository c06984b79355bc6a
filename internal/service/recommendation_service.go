package service

import (
	"context"
	"fmt"
	"time"

	"wellness-be/internal/config"
	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"
	"wellness-be/pkg/recommend"
	"wellness-be/pkg/wellness"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IRecommendationService interface {
	Plan(ctx context.Context, userId uuid.UUID) (*dto.PlanResponse, error)
	ActionableItems(ctx context.Context, userId uuid.UUID) ([]dto.ActionableItemResponse, error)
	VideoFeed(ctx context.Context, userId uuid.UUID, clientIP string, page, limit int) (*dto.VideoFeedResponse, error)
}

type recommendationService struct {
	uowFactory        unitofwork.RepositoryFactory
	assessmentService IAssessmentService
	shuffleCache      *gocache.Cache
	feedCfg           config.FeedConfig
}

func NewRecommendationService(
	uowFactory unitofwork.RepositoryFactory,
	assessmentService IAssessmentService,
	shuffleCache *gocache.Cache,
	feedCfg config.FeedConfig,
) IRecommendationService {
	return &recommendationService{
		uowFactory:        uowFactory,
		assessmentService: assessmentService,
		shuffleCache:      shuffleCache,
		feedCfg:           feedCfg,
	}
}

// rankedExercises fetches the candidate pool for the profile in base order
// (phase, then order) and applies the stress partition.
func (s *recommendationService) rankedExercises(ctx context.Context, uow unitofwork.UnitOfWork, profile *wellness.Profile) ([]*entity.Exercise, error) {
	exercises, err := uow.ExerciseRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.TargetsProfile{
			Concerns:    profile.Concerns,
			Goals:       profile.Goals,
			PrimaryFear: profile.PrimaryFear,
		},
		specification.SeverityMatches{Score: profile.SeverityScore},
		specification.OrderBy{Field: "phase"},
		specification.OrderBy{Field: "display_order"},
		specification.Pagination{Limit: s.feedCfg.CandidatePoolSize},
	)
	if err != nil {
		return nil, err
	}

	exercises = recommend.StressFirst(*profile, exercises, func(e *entity.Exercise) []string { return e.Tags })
	return recommend.Truncate(exercises, s.feedCfg.MaxRecommended), nil
}

func (s *recommendationService) Plan(ctx context.Context, userId uuid.UUID) (*dto.PlanResponse, error) {
	profile, err := s.assessmentService.ProfileFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Assessment not found")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	exercises, err := s.rankedExercises(ctx, uow, profile)
	if err != nil {
		return nil, err
	}

	items := make([]recommend.PlanItem, len(exercises))
	for i, e := range exercises {
		items[i] = recommend.PlanItem{
			Id:              e.Id,
			Title:           e.Title,
			DurationMinutes: e.DurationMinutes,
		}
	}

	days := recommend.DayPlan(items, s.feedCfg.PlanLength)
	res := &dto.PlanResponse{Days: make([]dto.PlanDayResponse, len(days))}
	for i, d := range days {
		res.Days[i] = dto.PlanDayResponse{
			DayNumber:       d.DayNumber,
			ExerciseId:      d.ExerciseId,
			Title:           d.Title,
			DurationMinutes: d.DurationMinutes,
			DurationLabel:   recommend.DurationLabel(d.DurationMinutes),
		}
	}
	return res, nil
}

func (s *recommendationService) ActionableItems(ctx context.Context, userId uuid.UUID) ([]dto.ActionableItemResponse, error) {
	profile, err := s.assessmentService.ProfileFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []dto.ActionableItemResponse{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	exercises, err := s.rankedExercises(ctx, uow, profile)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ActionableItemResponse, len(exercises))
	for i, e := range exercises {
		displayType := e.DisplayType
		if displayType != "breathing" && displayType != "read" {
			displayType = "exercise"
		}
		item := dto.ActionableItemResponse{
			Id:            e.Id,
			Title:         e.Title,
			DisplayType:   displayType,
			DurationLabel: recommend.DurationLabel(e.DurationMinutes),
		}
		if displayType == "read" {
			item.ContentURL = e.ContentURL
		} else {
			item.Content = e.Content
		}
		items[i] = item
	}
	return items, nil
}

func (s *recommendationService) VideoFeed(ctx context.Context, userId uuid.UUID, clientIP string, page, limit int) (*dto.VideoFeedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = s.feedCfg.VideoPageLimit
	}
	if limit > s.feedCfg.VideoPageMax {
		limit = s.feedCfg.VideoPageMax
	}

	var profile *wellness.Profile
	if userId != uuid.Nil {
		p, err := s.assessmentService.ProfileFor(ctx, userId)
		if err != nil {
			return nil, err
		}
		profile = p
	}

	if profile != nil {
		return s.profiledVideoFeed(ctx, profile, page, limit)
	}
	return s.shuffledVideoFeed(ctx, userId, clientIP, page, limit)
}

func (s *recommendationService) profiledVideoFeed(ctx context.Context, profile *wellness.Profile, page, limit int) (*dto.VideoFeedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filter := []specification.Specification{
		specification.ActiveOnly{},
		specification.TargetsProfile{
			Concerns:    profile.Concerns,
			Goals:       profile.Goals,
			PrimaryFear: profile.PrimaryFear,
		},
		specification.SeverityMatches{Score: profile.SeverityScore},
	}

	total, err := uow.VideoRepository().Count(ctx, filter...)
	if err != nil {
		return nil, err
	}

	specs := append(filter,
		specification.OrderBy{Field: "view_count", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	videos, err := uow.VideoRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	return &dto.VideoFeedResponse{
		Videos:  videoResponses(videos),
		Total:   total,
		Page:    page,
		HasMore: int64(page*limit) < total,
	}, nil
}

// shuffledVideoFeed serves anonymous or unassessed browsing: one seeded
// permutation per viewer per hour, cached so pages slice the same order.
func (s *recommendationService) shuffledVideoFeed(ctx context.Context, userId uuid.UUID, clientIP string, page, limit int) (*dto.VideoFeedResponse, error) {
	key := clientIP
	if userId != uuid.Nil {
		key = userId.String()
	}

	now := time.Now()
	cacheKey := fmt.Sprintf("videofeed:%s:%d", key, now.Unix()/3600)

	var shuffled []*entity.Video
	if cached, found := s.shuffleCache.Get(cacheKey); found {
		shuffled = cached.([]*entity.Video)
	} else {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		videos, err := uow.VideoRepository().FindAll(ctx,
			specification.ActiveOnly{},
			specification.OrderBy{Field: "view_count", Desc: true},
		)
		if err != nil {
			return nil, err
		}
		shuffled = recommend.Shuffle(videos, recommend.Seed(key, now))
		s.shuffleCache.Set(cacheKey, shuffled, gocache.DefaultExpiration)
	}

	pageItems, hasMore := recommend.Page(shuffled, page, limit)
	return &dto.VideoFeedResponse{
		Videos:  videoResponses(pageItems),
		Total:   int64(len(shuffled)),
		Page:    page,
		HasMore: hasMore,
	}, nil
}

func videoResponses(videos []*entity.Video) []dto.VideoResponse {
	res := make([]dto.VideoResponse, len(videos))
	for i, v := range videos {
		res[i] = dto.VideoResponse{
			Id:              v.Id,
			Title:           v.Title,
			Description:     v.Description,
			Category:        v.Category,
			URL:             v.URL,
			ThumbnailURL:    v.ThumbnailURL,
			DurationSeconds: v.DurationSeconds,
			ViewCount:       v.ViewCount,
		}
	}
	return res
}
