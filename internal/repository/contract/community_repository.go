package contract

import (
	"context"

	"wellness-be/internal/entity"
	"wellness-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CommunityRepository interface {
	Create(ctx context.Context, community *entity.Community) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Community, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Community, error)
	IncrementMemberCount(ctx context.Context, id uuid.UUID, delta int) error
}

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Post, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// IncrementCounter bumps one of the denormalized engagement counters
	// (likes_count, comments_count, shares_count) atomically.
	IncrementCounter(ctx context.Context, id uuid.UUID, column string, delta int) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type PostLikeRepository interface {
	Create(ctx context.Context, like *entity.PostLike) error
	Delete(ctx context.Context, postId, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PostLike, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PostLike, error)
}
