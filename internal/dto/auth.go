package dto

import (
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates the first admin account for a tenant.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// GoogleSignInRequest carries a Google ID token from the front end.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LoginResponse returns the token pair and the authenticated identity.
type LoginResponse struct {
	Token            string          `json:"token"`
	TokenExpiresAt   time.Time       `json:"tokenExpiresAt"`
	RefreshToken     string          `json:"refreshToken,omitempty"`
	RefreshExpiresAt *time.Time      `json:"refreshExpiresAt,omitempty"`
	User             *domain.User    `json:"user"`
	VisibleViews     []domain.ViewID `json:"visibleViews"`
}
