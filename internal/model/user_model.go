package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName         string    `gorm:"type:varchar(255);not null"`
	Gender           string    `gorm:"type:varchar(20);not null"`
	AvatarURL        *string   `gorm:"type:text"`
	NotificationHour *int
	MessageLimit     *int
	EmailVerified    bool `gorm:"default:false"`
	IsBlocked        bool `gorm:"default:false"`
	EmailVerifiedAt  *time.Time
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

type Otp struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	Purpose   string    `gorm:"type:varchar(20);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Consumed  bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Otp) TableName() string {
	return "otps"
}
