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
	"wellness-be/pkg/wellness"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssessmentService interface {
	Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error)
	Show(ctx context.Context, userId uuid.UUID) (*dto.ShowAssessmentResponse, error)
	WellnessProfile(ctx context.Context, userId uuid.UUID) (*dto.WellnessProfileResponse, error)

	// ProfileFor returns the derived profile, or nil when the user has not
	// completed an assessment. Used by the chat and recommendation services.
	ProfileFor(ctx context.Context, userId uuid.UUID) (*wellness.Profile, error)
}

type assessmentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewAssessmentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IAssessmentService {
	return &assessmentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *assessmentService) Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AssessmentRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	firstSubmission := existing == nil

	assessment := entity.Assessment{
		Id:                 uuid.New(),
		UserId:             userId,
		Age:                req.Age,
		Concerns:           req.Concerns,
		Duration:           req.Duration,
		Severity:           req.Severity,
		RelationshipStatus: req.RelationshipStatus,
		Goals:              req.Goals,
		SupportHistory:     req.SupportHistory,
		StressLevel:        req.StressLevel,
		PrimaryFear:        req.PrimaryFear,
		LearningStyle:      req.LearningStyle,
		PreferredTime:      req.PreferredTime,
		CompletedAt:        time.Now(),
	}
	if !firstSubmission {
		assessment.Id = existing.Id
	}

	if err := uow.AssessmentRepository().Upsert(ctx, &assessment); err != nil {
		return nil, err
	}

	// Align the reminder hour with the answered preferred time.
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user != nil {
		hour := wellness.NotificationHour(req.PreferredTime)
		user.NotificationHour = &hour
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	msg := &dto.AssessmentSubmittedMessage{UserId: userId, FirstSubmission: firstSubmission}
	if err := s.publisherService.PublishAssessmentSubmitted(ctx, msg); err != nil {
		s.logger.Warn("AssessmentService", "Failed to publish assessment submitted", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}

	return &dto.SubmitAssessmentResponse{
		Id:          assessment.Id,
		CompletedAt: assessment.CompletedAt,
	}, nil
}

func (s *assessmentService) Show(ctx context.Context, userId uuid.UUID) (*dto.ShowAssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assessment, err := uow.AssessmentRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Assessment not found")
	}

	return &dto.ShowAssessmentResponse{
		Id:                 assessment.Id,
		Age:                assessment.Age,
		Concerns:           assessment.Concerns,
		Duration:           assessment.Duration,
		Severity:           assessment.Severity,
		RelationshipStatus: assessment.RelationshipStatus,
		Goals:              assessment.Goals,
		SupportHistory:     assessment.SupportHistory,
		StressLevel:        assessment.StressLevel,
		PrimaryFear:        assessment.PrimaryFear,
		LearningStyle:      assessment.LearningStyle,
		PreferredTime:      assessment.PreferredTime,
		CompletedAt:        assessment.CompletedAt,
		UpdatedAt:          assessment.UpdatedAt,
	}, nil
}

func (s *assessmentService) WellnessProfile(ctx context.Context, userId uuid.UUID) (*dto.WellnessProfileResponse, error) {
	profile, err := s.ProfileFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Assessment not found")
	}

	return &dto.WellnessProfileResponse{
		Age:                profile.Age,
		Gender:             profile.Gender,
		Concerns:           profile.Concerns,
		UrgencyScore:       profile.UrgencyScore,
		SeverityScore:      profile.SeverityScore,
		RelationshipStatus: profile.RelationshipStatus,
		Goals:              profile.Goals,
		SupportHistory:     profile.SupportHistory,
		StressLevel:        profile.StressLevel,
		PrimaryFear:        profile.PrimaryFear,
		LearningStyle:      profile.LearningStyle,
		PreferredTime:      profile.PreferredTime,
		NotificationHour:   wellness.NotificationHour(profile.PreferredTime),
	}, nil
}

func (s *assessmentService) ProfileFor(ctx context.Context, userId uuid.UUID) (*wellness.Profile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assessment, err := uow.AssessmentRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, nil
	}

	gender := ""
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user != nil {
		gender = user.Gender
	}

	profile := wellness.BuildProfile(wellness.Answers{
		Age:                assessment.Age,
		Gender:             gender,
		Concerns:           assessment.Concerns,
		Duration:           assessment.Duration,
		Severity:           assessment.Severity,
		RelationshipStatus: assessment.RelationshipStatus,
		Goals:              assessment.Goals,
		SupportHistory:     assessment.SupportHistory,
		StressLevel:        assessment.StressLevel,
		PrimaryFear:        assessment.PrimaryFear,
		LearningStyle:      assessment.LearningStyle,
		PreferredTime:      assessment.PreferredTime,
	})
	return &profile, nil
}
