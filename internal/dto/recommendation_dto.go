package dto

import "github.com/google/uuid"

// ActionableItemResponse is one entry of the "do this now" list. Exactly one
// of content / content_url is set depending on the display type.
type ActionableItemResponse struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	DisplayType   string    `json:"display_type"` // "exercise" | "breathing" | "read"
	Content       string    `json:"content,omitempty"`
	ContentURL    string    `json:"content_url,omitempty"`
	DurationLabel string    `json:"duration_label"`
}

type RecommendedExerciseResponse struct {
	Id              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	DisplayType     string    `json:"display_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Phase           int       `json:"phase"`
}

type VideoResponse struct {
	Id              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	URL             string    `json:"url"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	DurationSeconds int       `json:"duration_seconds"`
	ViewCount       int       `json:"view_count"`
}

type VideoFeedResponse struct {
	Videos  []VideoResponse `json:"videos"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	HasMore bool            `json:"has_more"`
}
