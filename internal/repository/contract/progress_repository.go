package contract

import (
	"context"

	"wellness-be/internal/entity"
	"wellness-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProgressRepository interface {
	Create(ctx context.Context, progress *entity.UserProgress) error
	Update(ctx context.Context, progress *entity.UserProgress) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProgress, error)
}

type CheckInRepository interface {
	Create(ctx context.Context, checkIn *entity.CheckIn) error
	Upsert(ctx context.Context, checkIn *entity.CheckIn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckIn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
