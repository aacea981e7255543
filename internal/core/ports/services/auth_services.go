package services

import (
	"context"

	"github.com/imani-cms/imani_backend/internal/dto"
)

// AuthSvcFacade defines the authentication flows. All flows produce the same
// token pair so handlers have a single response shape.
type AuthSvcFacade interface {
	// Login authenticates username/password credentials.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Register creates a new admin account and logs it in.
	Register(ctx context.Context, tenantID string, req dto.RegisterRequest) (*dto.LoginResponse, error)

	// GoogleSignIn validates a Google ID token and resolves the local account.
	GoogleSignIn(ctx context.Context, req dto.GoogleSignInRequest) (*dto.LoginResponse, error)

	// Refresh exchanges a valid refresh token for a fresh pair. The old
	// refresh token is rotated out.
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)

	// Logout invalidates the stored refresh token.
	Logout(ctx context.Context, userID string) error
}
