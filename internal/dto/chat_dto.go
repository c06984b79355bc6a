package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	Persona *string `json:"persona,omitempty"`
}

type CreateConversationResponse struct {
	Id      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Persona *string   `json:"persona,omitempty"`
}

type ConversationResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Persona   *string    `json:"persona,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ConversationDetailResponse struct {
	Id        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Persona   *string           `json:"persona,omitempty"`
	Messages  []MessageResponse `json:"messages"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at"`
}

type SendMessageRequest struct {
	ConversationId uuid.UUID
	Content        string `json:"content" validate:"required,min=1"`
}

type SendMessageResponse struct {
	ConversationId uuid.UUID        `json:"conversation_id"`
	Title          string           `json:"title"`
	Sent           *MessageResponse `json:"sent"`
	Reply          *MessageResponse `json:"reply"`
	CrisisRedirect bool             `json:"crisis_redirect,omitempty"`
}

// RateLimitData is the payload of a 429 response on the message endpoint.
type RateLimitData struct {
	RateLimitReached bool `json:"rate_limit_reached"`
	Limit            int  `json:"limit"`
	Used             int64 `json:"used"`
}

type PersonaResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}
