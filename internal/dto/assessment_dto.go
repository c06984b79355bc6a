package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitAssessmentRequest carries the answers of the 10-question onboarding
// flow. Enum answers are validated against the closed vocabularies; concerns
// and goals allow 1-3 picks.
type SubmitAssessmentRequest struct {
	Age                *int     `json:"age" validate:"omitempty,min=18,max=99"`
	Concerns           []string `json:"concerns" validate:"required,min=1,max=3,dive,oneof=performance anxiety communication relationships body_image confidence sexual_health education loneliness social_wellness stress mental_health exploring"`
	Duration           string   `json:"duration" validate:"required,oneof=recently few_months over_a_year years"`
	Severity           string   `json:"severity" validate:"required,oneof=occasionally think_regularly affecting_confidence impacting_relationships avoiding_situations"`
	RelationshipStatus string   `json:"relationship_status" validate:"required,oneof=yes_they_know yes_havent_shared no_single complicated"`
	Goals              []string `json:"goals" validate:"required,min=1,max=3,dive,oneof=confident_intimate better_communication body_confidence less_anxiety enjoying_without_overthinking feeling_normal healthy_habits"`
	SupportHistory     string   `json:"support_history" validate:"required,oneof=yes_therapist yes_friends_family no_first_time tried_not_helpful"`
	StressLevel        int      `json:"stress_level" validate:"required,min=1,max=10"`
	PrimaryFear        string   `json:"primary_fear" validate:"required,oneof=never_get_better broken_abnormal partner_will_leave never_confident alone_in_this all_in_my_head"`
	LearningStyle      string   `json:"learning_style" validate:"required,oneof=videos reading interactive talking mix"`
	PreferredTime      string   `json:"preferred_time" validate:"required,oneof=morning midday afternoon evening night varies"`
}

type SubmitAssessmentResponse struct {
	Id          uuid.UUID `json:"id"`
	CompletedAt time.Time `json:"completed_at"`
}

type ShowAssessmentResponse struct {
	Id                 uuid.UUID  `json:"id"`
	Age                *int       `json:"age"`
	Concerns           []string   `json:"concerns"`
	Duration           string     `json:"duration"`
	Severity           string     `json:"severity"`
	RelationshipStatus string     `json:"relationship_status"`
	Goals              []string   `json:"goals"`
	SupportHistory     string     `json:"support_history"`
	StressLevel        int        `json:"stress_level"`
	PrimaryFear        string     `json:"primary_fear"`
	LearningStyle      string     `json:"learning_style"`
	PreferredTime      string     `json:"preferred_time"`
	CompletedAt        time.Time  `json:"completed_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

// WellnessProfileResponse is the derived profile, recomputed from the stored
// answers on every read.
type WellnessProfileResponse struct {
	Age                *int     `json:"age,omitempty"`
	Gender             string   `json:"gender"`
	Concerns           []string `json:"concerns"`
	UrgencyScore       int      `json:"urgency_score"`
	SeverityScore      int      `json:"severity_score"`
	RelationshipStatus string   `json:"relationship_status"`
	Goals              []string `json:"goals"`
	SupportHistory     string   `json:"support_history"`
	StressLevel        int      `json:"stress_level"`
	PrimaryFear        string   `json:"primary_fear"`
	LearningStyle      string   `json:"learning_style"`
	PreferredTime      string   `json:"preferred_time"`
	NotificationHour   int      `json:"notification_hour"`
}

type PlanDayResponse struct {
	DayNumber       int       `json:"day_number"`
	ExerciseId      uuid.UUID `json:"exercise_id"`
	Title           string    `json:"title"`
	DurationMinutes int       `json:"duration_minutes"`
	DurationLabel   string    `json:"duration_label"`
}

type PlanResponse struct {
	Days []PlanDayResponse `json:"days"`
}

// AssessmentSubmittedMessage is the in-process queue payload emitted after a
// successful submission.
type AssessmentSubmittedMessage struct {
	UserId          uuid.UUID `json:"user_id"`
	FirstSubmission bool      `json:"first_submission"`
}
