package dto

import "CARRENTAL_BACK-END/internal/models"

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents the response after successful authentication
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// UserDataResponse wraps the authenticated user's record
type UserDataResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}
