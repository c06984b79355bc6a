package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id               uuid.UUID
	Email            string
	FullName         string
	Gender           string
	AvatarURL        *string
	NotificationHour *int
	MessageLimit     *int
	EmailVerified    bool
	IsBlocked        bool
	EmailVerifiedAt  *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
	IsDeleted        bool
}

type OtpPurpose string

const (
	OtpPurposeSignIn OtpPurpose = "sign_in"
	OtpPurposeSignUp OtpPurpose = "sign_up"
)

type Otp struct {
	Id        uuid.UUID
	Email     string
	CodeHash  string
	Purpose   OtpPurpose
	ExpiresAt time.Time
	Consumed  bool
	CreatedAt time.Time
}
