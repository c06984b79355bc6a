package contract

import (
	"context"

	"wellness-be/internal/entity"
	"wellness-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	// Upsert creates the user's assessment or replaces the answers of an
	// existing one, keyed by user id.
	Upsert(ctx context.Context, assessment *entity.Assessment) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Assessment, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
