package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	ExercisesCompleted int
	VideosWatched      int
	StreakDays         int
	LastActivityAt     *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

type CheckIn struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	WeekNumber int
	Mood       int
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
