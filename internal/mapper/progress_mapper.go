package mapper

import (
	"time"

	"wellness-be/internal/entity"
	"wellness-be/internal/model"
)

type ProgressMapper struct{}

func NewProgressMapper() *ProgressMapper {
	return &ProgressMapper{}
}

func (m *ProgressMapper) ProgressToEntity(p *model.UserProgress) *entity.UserProgress {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserProgress{
		Id:                 p.Id,
		UserId:             p.UserId,
		ExercisesCompleted: p.ExercisesCompleted,
		VideosWatched:      p.VideosWatched,
		StreakDays:         p.StreakDays,
		LastActivityAt:     p.LastActivityAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *ProgressMapper) ProgressToModel(p *entity.UserProgress) *model.UserProgress {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.UserProgress{
		Id:                 p.Id,
		UserId:             p.UserId,
		ExercisesCompleted: p.ExercisesCompleted,
		VideosWatched:      p.VideosWatched,
		StreakDays:         p.StreakDays,
		LastActivityAt:     p.LastActivityAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *ProgressMapper) CheckInToEntity(c *model.CheckIn) *entity.CheckIn {
	if c == nil {
		return nil
	}

	return &entity.CheckIn{
		Id:         c.Id,
		UserId:     c.UserId,
		WeekNumber: c.WeekNumber,
		Mood:       c.Mood,
		Note:       c.Note,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *ProgressMapper) CheckInToModel(c *entity.CheckIn) *model.CheckIn {
	if c == nil {
		return nil
	}

	return &model.CheckIn{
		Id:         c.Id,
		UserId:     c.UserId,
		WeekNumber: c.WeekNumber,
		Mood:       c.Mood,
		Note:       c.Note,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
