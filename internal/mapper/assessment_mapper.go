package mapper

import (
	"time"

	"wellness-be/internal/entity"
	"wellness-be/internal/model"
)

type AssessmentMapper struct{}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{}
}

func (m *AssessmentMapper) ToEntity(a *model.Assessment) *entity.Assessment {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Assessment{
		Id:                 a.Id,
		UserId:             a.UserId,
		Age:                a.Age,
		Concerns:           a.Concerns,
		Duration:           a.Duration,
		Severity:           a.Severity,
		RelationshipStatus: a.RelationshipStatus,
		Goals:              a.Goals,
		SupportHistory:     a.SupportHistory,
		StressLevel:        a.StressLevel,
		PrimaryFear:        a.PrimaryFear,
		LearningStyle:      a.LearningStyle,
		PreferredTime:      a.PreferredTime,
		CompletedAt:        a.CompletedAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *AssessmentMapper) ToModel(a *entity.Assessment) *model.Assessment {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Assessment{
		Id:                 a.Id,
		UserId:             a.UserId,
		Age:                a.Age,
		Concerns:           a.Concerns,
		Duration:           a.Duration,
		Severity:           a.Severity,
		RelationshipStatus: a.RelationshipStatus,
		Goals:              a.Goals,
		SupportHistory:     a.SupportHistory,
		StressLevel:        a.StressLevel,
		PrimaryFear:        a.PrimaryFear,
		LearningStyle:      a.LearningStyle,
		PreferredTime:      a.PreferredTime,
		CompletedAt:        a.CompletedAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}
