package repositories

import (
	"context"
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// UserRepository defines storage operations for user accounts.
type UserRepository interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a non-deleted user by id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a non-deleted user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a non-deleted user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by federated identity.
	FindUserByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.User, error)

	// ListUsers retrieves the scoped, non-deleted users.
	ListUsers(ctx context.Context, scope domain.TenantScope) ([]domain.User, error)

	// UpdateUser replaces a stored user. Returns ErrNotFound if absent.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores a hashed refresh token and its expiry.
	UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken drops the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error

	// MarkUserDeleted soft-deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error
}
