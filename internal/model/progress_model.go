package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ExercisesCompleted int       `gorm:"default:0"`
	VideosWatched      int       `gorm:"default:0"`
	StreakDays         int       `gorm:"default:0"`
	LastActivityAt     *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

type CheckIn struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_check_ins_user_week"`
	WeekNumber int       `gorm:"not null;uniqueIndex:idx_check_ins_user_week"`
	Mood       int       `gorm:"not null"`
	Note       string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}
