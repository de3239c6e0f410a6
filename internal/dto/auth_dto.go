package dto

import (
	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest accepts an email or a phone number as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type AuthResponse struct {
	Message     string       `json:"message,omitempty"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID                 uuid.UUID   `json:"id"`
	FullName           string      `json:"full_name"`
	Email              string      `json:"email"`
	Role               models.Role `json:"role"`
	IsApproved         bool        `json:"is_approved"`
	IsProfileCompleted bool        `json:"is_profile_completed"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		FullName:           u.FullName,
		Email:              u.Email,
		Role:               u.Role,
		IsApproved:         u.IsApproved,
		IsProfileCompleted: u.IsProfileCompleted,
	}
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
