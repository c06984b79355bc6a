package entity

import (
	"time"

	"github.com/google/uuid"
)

// Exercise and Video share the targeting fields the recommender matches on:
// concern tags, goal tags, an optional fear and a set of severity scores.
// An empty SeverityLevels slice means the item suits every severity.

type Exercise struct {
	Id              uuid.UUID
	Title           string
	Description     string
	Type            string
	Tags            []string
	GoalTags        []string
	FearAddressed   string
	SeverityLevels  []int
	DurationMinutes int
	Content         string
	ContentURL      string
	DisplayType     string
	Order           int
	Phase           int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

type Video struct {
	Id              uuid.UUID
	Title           string
	Description     string
	Category        string
	Tags            []string
	GoalTags        []string
	FearAddressed   string
	SeverityLevels  []int
	URL             string
	ThumbnailURL    string
	DurationSeconds int
	ViewCount       int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
