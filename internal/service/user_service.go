package service

import (
	"context"

	"wellness-be/internal/dto"
	"wellness-be/internal/pkg/serverutils"
	"wellness-be/internal/repository/specification"
	"wellness-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "User not found")
	}

	// Onboarding state is derived from assessment existence, never stored.
	assessments, err := uow.AssessmentRepository().Count(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Id:               user.Id,
		Email:            user.Email,
		FullName:         user.FullName,
		Gender:           user.Gender,
		AvatarURL:        user.AvatarURL,
		NotificationHour: user.NotificationHour,
		HasOnboarded:     assessments > 0,
		CreatedAt:        user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "User not found")
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userId)
}
