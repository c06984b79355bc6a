package mapper

import (
	"time"

	"wellness-be/internal/entity"
	"wellness-be/internal/model"

	"gorm.io/gorm"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var deletedAt *time.Time
	if u.DeletedAt.Valid {
		t := u.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.User{
		Id:               u.Id,
		Email:            u.Email,
		FullName:         u.FullName,
		Gender:           u.Gender,
		AvatarURL:        u.AvatarURL,
		NotificationHour: u.NotificationHour,
		MessageLimit:     u.MessageLimit,
		EmailVerified:    u.EmailVerified,
		IsBlocked:        u.IsBlocked,
		EmailVerifiedAt:  u.EmailVerifiedAt,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
		DeletedAt:        deletedAt,
		IsDeleted:        u.DeletedAt.Valid,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if u.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *u.DeletedAt, Valid: true}
	} else if u.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.User{
		Id:               u.Id,
		Email:            u.Email,
		FullName:         u.FullName,
		Gender:           u.Gender,
		AvatarURL:        u.AvatarURL,
		NotificationHour: u.NotificationHour,
		MessageLimit:     u.MessageLimit,
		EmailVerified:    u.EmailVerified,
		IsBlocked:        u.IsBlocked,
		EmailVerifiedAt:  u.EmailVerifiedAt,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
		DeletedAt:        deletedAt,
	}
}

func (m *UserMapper) OtpToEntity(o *model.Otp) *entity.Otp {
	if o == nil {
		return nil
	}

	return &entity.Otp{
		Id:        o.Id,
		Email:     o.Email,
		CodeHash:  o.CodeHash,
		Purpose:   entity.OtpPurpose(o.Purpose),
		ExpiresAt: o.ExpiresAt,
		Consumed:  o.Consumed,
		CreatedAt: o.CreatedAt,
	}
}

func (m *UserMapper) OtpToModel(o *entity.Otp) *model.Otp {
	if o == nil {
		return nil
	}

	return &model.Otp{
		Id:        o.Id,
		Email:     o.Email,
		CodeHash:  o.CodeHash,
		Purpose:   string(o.Purpose),
		ExpiresAt: o.ExpiresAt,
		Consumed:  o.Consumed,
		CreatedAt: o.CreatedAt,
	}
}
