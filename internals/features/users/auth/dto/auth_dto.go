package dto

import (
	"annur_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RegisterUserRequest struct {
	UserName     string `json:"user_name" validate:"required,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserRole     string `json:"user_role" validate:"omitempty,oneof=admin staff user"`
}

// ================== RESPONSE ==================
type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserCenterID *uuid.UUID `json:"user_center_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserRole     string     `json:"user_role"`
	UserIsActive bool       `json:"user_is_active"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserCenterID: m.UserCenterID,
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserIsActive: m.UserIsActive,
	}
}
