package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assessment stores the raw answers from the 10-question onboarding flow.
// The wellness profile is derived from these answers on read, never stored.
type Assessment struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	Age                *int
	Concerns           []string
	Duration           string
	Severity           string
	RelationshipStatus string
	Goals              []string
	SupportHistory     string
	StressLevel        int
	PrimaryFear        string
	LearningStyle      string
	PreferredTime      string
	CompletedAt        time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
