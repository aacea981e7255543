package services

import (
	"context"
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// UserSvcFacade defines user account operations.
type UserSvcFacade interface {
	// CreateUser creates an account within a tenant.
	CreateUser(ctx context.Context, tenantID, actorUserID string, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a non-deleted user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a non-deleted user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindOrCreateFederatedUser resolves a federated identity to a local
	// account, creating a MEMBER-role account on first sign-in.
	FindOrCreateFederatedUser(ctx context.Context, provider, providerUserID, email, name string) (*domain.User, error)

	// ListUsers retrieves the scoped users.
	ListUsers(ctx context.Context, scope domain.TenantScope) ([]domain.User, error)

	// UpdateUser applies a partial update. Returns ErrNotFound if absent.
	UpdateUser(ctx context.Context, scope domain.TenantScope, userID, actorUserID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, scope domain.TenantScope, userID, actorUserID string) error

	// SetRefreshToken stores a hashed refresh token for a user.
	SetRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken drops a user's refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}
