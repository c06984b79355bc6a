package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecordProgressRequest struct {
	Activity string `json:"activity" validate:"required,oneof=exercise video"`
}

type ProgressResponse struct {
	ExercisesCompleted int        `json:"exercises_completed"`
	VideosWatched      int        `json:"videos_watched"`
	StreakDays         int        `json:"streak_days"`
	LastActivityAt     *time.Time `json:"last_activity_at"`
}

type CheckInRequest struct {
	Mood int    `json:"mood" validate:"required,min=1,max=10"`
	Note string `json:"note" validate:"max=500"`
}

type CheckInResponse struct {
	Id         uuid.UUID `json:"id"`
	WeekNumber int       `json:"week_number"`
	Mood       int       `json:"mood"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// DashboardResponse bundles what the home screen renders in one call.
type DashboardResponse struct {
	Progress          ProgressResponse         `json:"progress"`
	Profile           *WellnessProfileResponse `json:"profile,omitempty"`
	RecommendedVideos []VideoResponse          `json:"recommended_videos"`
	SuggestCheckIn    bool                     `json:"suggest_check_in"`
}
