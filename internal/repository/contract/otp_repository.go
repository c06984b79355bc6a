package contract

import (
	"context"

	"wellness-be/internal/entity"
	"wellness-be/internal/repository/specification"
)

type OtpRepository interface {
	Create(ctx context.Context, otp *entity.Otp) error
	Update(ctx context.Context, otp *entity.Otp) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Otp, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteExpired(ctx context.Context) error
}
