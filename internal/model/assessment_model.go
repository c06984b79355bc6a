package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Assessment struct {
	Id                 uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             uuid.UUID                     `gorm:"type:uuid;not null;uniqueIndex"`
	Age                *int
	Concerns           datatypes.JSONSlice[string]   `gorm:"type:jsonb;not null"`
	Duration           string                        `gorm:"type:varchar(50);not null"`
	Severity           string                        `gorm:"type:varchar(50);not null"`
	RelationshipStatus string                        `gorm:"type:varchar(50);not null"`
	Goals              datatypes.JSONSlice[string]   `gorm:"type:jsonb;not null"`
	SupportHistory     string                        `gorm:"type:varchar(50);not null"`
	StressLevel        int                           `gorm:"not null"`
	PrimaryFear        string                        `gorm:"type:varchar(50);not null"`
	LearningStyle      string                        `gorm:"type:varchar(50);not null"`
	PreferredTime      string                        `gorm:"type:varchar(50);not null"`
	CompletedAt        time.Time                     `gorm:"not null"`
	CreatedAt          time.Time                     `gorm:"autoCreateTime"`
	UpdatedAt          time.Time                     `gorm:"autoUpdateTime"`
}

func (Assessment) TableName() string {
	return "assessments"
}
