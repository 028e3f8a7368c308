package dto

import "github.com/newwork/staffhub/internal/core/domain"

// LoginRequest carries the demo login credentials. The role field is
// required and must name a known role, but the session role always comes
// from the stored user record.
type LoginRequest struct {
	Email string      `json:"email" binding:"required,email"`
	Role  domain.Role `json:"role" binding:"required,oneof=manager employee coworker"`
}

// LoginResponse returns the authenticated user and their session token.
type LoginResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// MeResponse wraps the current session user.
type MeResponse struct {
	User domain.User `json:"user"`
}
