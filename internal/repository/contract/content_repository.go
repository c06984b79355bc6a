package contract

import (
	"context"

	"wellness-be/internal/entity"
	"wellness-be/internal/repository/specification"
)

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *entity.Exercise) error
	Update(ctx context.Context, exercise *entity.Exercise) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Exercise, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Exercise, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	Update(ctx context.Context, video *entity.Video) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Video, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Video, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
