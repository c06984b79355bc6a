package service

import (
	"context"
	"testing"
	"time"

	"wellness-be/internal/config"
	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/repository/specification"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type fakeOtpRepo struct {
	otp     *entity.Otp
	updated []*entity.Otp
}

func (r *fakeOtpRepo) Create(ctx context.Context, o *entity.Otp) error { return nil }

func (r *fakeOtpRepo) Update(ctx context.Context, o *entity.Otp) error {
	r.updated = append(r.updated, o)
	return nil
}

func (r *fakeOtpRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Otp, error) {
	return r.otp, nil
}

func (r *fakeOtpRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakeOtpRepo) DeleteExpired(ctx context.Context) error { return nil }

func usableOtp(t *testing.T, email, code string) *entity.Otp {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing code: %v", err)
	}
	return &entity.Otp{
		Id:        uuid.New(),
		Email:     email,
		CodeHash:  string(hash),
		Purpose:   entity.OtpPurposeSignIn,
		ExpiresAt: time.Now().Add(5 * time.Minute),
		CreatedAt: time.Now(),
	}
}

func TestVerifyOtpBlockedAccount(t *testing.T) {
	email := "blocked@example.com"
	uow := &fakeUow{
		otps: &fakeOtpRepo{otp: usableOtp(t, email, "123456")},
		users: &fakeUserRepo{user: &entity.User{
			Id:            uuid.New(),
			Email:         email,
			EmailVerified: true,
			IsBlocked:     true,
		}},
	}
	svc := NewAuthService(&fakeFactory{uow: uow}, nil, nil, nil, nil, nopLogger{}, config.OtpConfig{}, config.JWTConfig{})

	_, err := svc.VerifyOtp(context.Background(), &dto.VerifyOtpRequest{Email: email, Code: "123456"})
	appErr := appStatus(t, err)
	if appErr.Status != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", appErr.Status)
	}
}

func TestVerifyOtpWrongCode(t *testing.T) {
	email := "user@example.com"
	uow := &fakeUow{
		otps:  &fakeOtpRepo{otp: usableOtp(t, email, "123456")},
		users: &fakeUserRepo{user: &entity.User{Id: uuid.New(), Email: email}},
	}
	svc := NewAuthService(&fakeFactory{uow: uow}, nil, nil, nil, nil, nopLogger{}, config.OtpConfig{}, config.JWTConfig{})

	_, err := svc.VerifyOtp(context.Background(), &dto.VerifyOtpRequest{Email: email, Code: "654321"})
	if appStatus(t, err).Status != fiber.StatusBadRequest {
		t.Fatal("expected 400 for a wrong code")
	}
}
