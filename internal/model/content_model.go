package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Exercise struct {
	Id              uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title           string                      `gorm:"type:varchar(255);not null"`
	Description     string                      `gorm:"type:text"`
	Type            string                      `gorm:"type:varchar(50);not null"`
	Tags            datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	GoalTags        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	FearAddressed   string                      `gorm:"type:varchar(50)"`
	SeverityLevels  datatypes.JSONSlice[int]    `gorm:"type:jsonb;not null"`
	DurationMinutes int
	Content         string    `gorm:"type:text"`
	ContentURL      string    `gorm:"type:text"`
	DisplayType     string    `gorm:"type:varchar(20)"`
	Order           int       `gorm:"column:display_order;default:0;index:idx_exercises_phase_order"`
	Phase           int       `gorm:"default:1;index:idx_exercises_phase_order"`
	IsActive        bool      `gorm:"default:true;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Exercise) TableName() string {
	return "exercises"
}

type Video struct {
	Id              uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title           string                      `gorm:"type:varchar(255);not null"`
	Description     string                      `gorm:"type:text"`
	Category        string                      `gorm:"type:varchar(100);index"`
	Tags            datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	GoalTags        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	FearAddressed   string                      `gorm:"type:varchar(50)"`
	SeverityLevels  datatypes.JSONSlice[int]    `gorm:"type:jsonb;not null"`
	URL             string                      `gorm:"type:text;not null"`
	ThumbnailURL    string                      `gorm:"type:text"`
	DurationSeconds int
	ViewCount       int       `gorm:"default:0;index"`
	IsActive        bool      `gorm:"default:true;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Video) TableName() string {
	return "videos"
}
