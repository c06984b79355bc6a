package service

import (
	"context"
	"time"

	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const checkInInterval = 7 * 24 * time.Hour

type IProgressService interface {
	Record(ctx context.Context, userId uuid.UUID, req *dto.RecordProgressRequest) (*dto.ProgressResponse, error)
	Get(ctx context.Context, userId uuid.UUID) (*dto.ProgressResponse, error)
	CheckIn(ctx context.Context, userId uuid.UUID, req *dto.CheckInRequest) (*dto.CheckInResponse, error)
	Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error)
}

type progressService struct {
	uowFactory            unitofwork.RepositoryFactory
	assessmentService     IAssessmentService
	recommendationService IRecommendationService
}

func NewProgressService(
	uowFactory unitofwork.RepositoryFactory,
	assessmentService IAssessmentService,
	recommendationService IRecommendationService,
) IProgressService {
	return &progressService{
		uowFactory:            uowFactory,
		assessmentService:     assessmentService,
		recommendationService: recommendationService,
	}
}

func (s *progressService) Record(ctx context.Context, userId uuid.UUID, req *dto.RecordProgressRequest) (*dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	progress, err := uow.ProgressRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	isNew := progress == nil
	if isNew {
		progress = &entity.UserProgress{
			Id:        uuid.New(),
			UserId:    userId,
			CreatedAt: now,
		}
	}

	switch req.Activity {
	case "video":
		progress.VideosWatched++
	default:
		progress.ExercisesCompleted++
	}
	progress.StreakDays = nextStreak(progress.StreakDays, progress.LastActivityAt, now)
	progress.LastActivityAt = &now

	if isNew {
		err = uow.ProgressRepository().Create(ctx, progress)
	} else {
		err = uow.ProgressRepository().Update(ctx, progress)
	}
	if err != nil {
		return nil, err
	}

	return progressResponse(progress), nil
}

// nextStreak extends the streak on consecutive calendar days and resets it
// after a gap.
func nextStreak(current int, lastActivity *time.Time, now time.Time) int {
	if lastActivity == nil {
		return 1
	}

	today := now.Truncate(24 * time.Hour)
	lastDay := lastActivity.Truncate(24 * time.Hour)

	switch {
	case lastDay.Equal(today):
		return current
	case lastDay.Equal(today.Add(-24 * time.Hour)):
		return current + 1
	default:
		return 1
	}
}

func (s *progressService) Get(ctx context.Context, userId uuid.UUID) (*dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	progress, err := uow.ProgressRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return &dto.ProgressResponse{}, nil
	}
	return progressResponse(progress), nil
}

func (s *progressService) CheckIn(ctx context.Context, userId uuid.UUID, req *dto.CheckInRequest) (*dto.CheckInResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Account not found")
	}

	// One check-in per week of account age. A second check-in in the same
	// week overwrites the first instead of adding a row.
	checkIn := entity.CheckIn{
		Id:         uuid.New(),
		UserId:     userId,
		WeekNumber: currentWeekNumber(user.CreatedAt, time.Now()),
		Mood:       req.Mood,
		Note:       req.Note,
		CreatedAt:  time.Now(),
	}
	if err := uow.CheckInRepository().Upsert(ctx, &checkIn); err != nil {
		return nil, err
	}

	return &dto.CheckInResponse{
		Id:         checkIn.Id,
		WeekNumber: checkIn.WeekNumber,
		Mood:       checkIn.Mood,
		Note:       checkIn.Note,
		CreatedAt:  checkIn.CreatedAt,
	}, nil
}

// currentWeekNumber numbers account-age weeks from 1.
func currentWeekNumber(accountCreated, now time.Time) int {
	age := now.Sub(accountCreated)
	if age < 0 {
		age = 0
	}
	return int(age/checkInInterval) + 1
}

func (s *progressService) Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	res := &dto.DashboardResponse{
		RecommendedVideos: []dto.VideoResponse{},
	}

	progress, err := uow.ProgressRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		res.Progress = *progressResponse(progress)
	}

	profile, err := s.assessmentService.ProfileFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		wp, err := s.assessmentService.WellnessProfile(ctx, userId)
		if err != nil {
			return nil, err
		}
		res.Profile = wp

		feed, err := s.recommendationService.VideoFeed(ctx, userId, "", 1, 3)
		if err != nil {
			return nil, err
		}
		res.RecommendedVideos = feed.Videos
	}

	suggest, err := s.suggestCheckIn(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	res.SuggestCheckIn = suggest

	return res, nil
}

// suggestCheckIn is true when the user has never checked in or the latest
// check-in is older than a week.
func (s *progressService) suggestCheckIn(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (bool, error) {
	recent, err := uow.CheckInRepository().Count(ctx,
		specification.ByUserID{UserID: userId},
		specification.CreatedAfter{After: time.Now().Add(-checkInInterval)},
	)
	if err != nil {
		return false, err
	}
	return recent == 0, nil
}

func progressResponse(p *entity.UserProgress) *dto.ProgressResponse {
	return &dto.ProgressResponse{
		ExercisesCompleted: p.ExercisesCompleted,
		VideosWatched:      p.VideosWatched,
		StreakDays:         p.StreakDays,
		LastActivityAt:     p.LastActivityAt,
	}
}
