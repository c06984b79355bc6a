package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	Id               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Gender           string    `json:"gender"`
	AvatarURL        *string   `json:"avatar_url"`
	NotificationHour *int      `json:"notification_hour"`
	HasOnboarded     bool      `json:"has_onboarded"`
	CreatedAt        time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}
