package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/tyforge-backend/internal/models"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignupResponse is the token plus where the new account starts in onboarding.
type SignupResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	UserID      uuid.UUID         `json:"user_id"`
	SignupStep  models.SignupStep `json:"signup_step"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
