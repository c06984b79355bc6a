package mapper

import (
	"time"

	"wellness-be/internal/entity"
	"wellness-be/internal/model"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) ExerciseToEntity(e *model.Exercise) *entity.Exercise {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Exercise{
		Id:              e.Id,
		Title:           e.Title,
		Description:     e.Description,
		Type:            e.Type,
		Tags:            e.Tags,
		GoalTags:        e.GoalTags,
		FearAddressed:   e.FearAddressed,
		SeverityLevels:  e.SeverityLevels,
		DurationMinutes: e.DurationMinutes,
		Content:         e.Content,
		ContentURL:      e.ContentURL,
		DisplayType:     e.DisplayType,
		Order:           e.Order,
		Phase:           e.Phase,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ContentMapper) ExerciseToModel(e *entity.Exercise) *model.Exercise {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Exercise{
		Id:              e.Id,
		Title:           e.Title,
		Description:     e.Description,
		Type:            e.Type,
		Tags:            e.Tags,
		GoalTags:        e.GoalTags,
		FearAddressed:   e.FearAddressed,
		SeverityLevels:  e.SeverityLevels,
		DurationMinutes: e.DurationMinutes,
		Content:         e.Content,
		ContentURL:      e.ContentURL,
		DisplayType:     e.DisplayType,
		Order:           e.Order,
		Phase:           e.Phase,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ContentMapper) VideoToEntity(v *model.Video) *entity.Video {
	if v == nil {
		return nil
	}

	var updatedAt *time.Time
	if !v.UpdatedAt.IsZero() {
		t := v.UpdatedAt
		updatedAt = &t
	}

	return &entity.Video{
		Id:              v.Id,
		Title:           v.Title,
		Description:     v.Description,
		Category:        v.Category,
		Tags:            v.Tags,
		GoalTags:        v.GoalTags,
		FearAddressed:   v.FearAddressed,
		SeverityLevels:  v.SeverityLevels,
		URL:             v.URL,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		ViewCount:       v.ViewCount,
		IsActive:        v.IsActive,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ContentMapper) VideoToModel(v *entity.Video) *model.Video {
	if v == nil {
		return nil
	}

	var updatedAt time.Time
	if v.UpdatedAt != nil {
		updatedAt = *v.UpdatedAt
	}

	return &model.Video{
		Id:              v.Id,
		Title:           v.Title,
		Description:     v.Description,
		Category:        v.Category,
		Tags:            v.Tags,
		GoalTags:        v.GoalTags,
		FearAddressed:   v.FearAddressed,
		SeverityLevels:  v.SeverityLevels,
		URL:             v.URL,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		ViewCount:       v.ViewCount,
		IsActive:        v.IsActive,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}
