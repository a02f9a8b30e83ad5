package types

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRequest represents the request to create a new user account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued authentication token.
type LoginResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validator.New().Struct(r)
}
