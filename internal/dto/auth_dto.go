package dto

import "github.com/google/uuid"

type RequestOtpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Gender   string `json:"gender" validate:"omitempty,oneof=male female"`
}

type RequestOtpResponse struct {
	Email         string `json:"email"`
	ExpiryMinutes int    `json:"expiry_minutes"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type VerifyOtpResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

type AuthUserResponse struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}
