package repositories

import (
	"context"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// APIKeyRepository defines storage operations for API keys.
type APIKeyRepository interface {
	// CreateAPIKey persists a new key record.
	CreateAPIKey(ctx context.Context, key domain.APIKey) error

	// FindAPIKeyByID retrieves a key by id.
	FindAPIKeyByID(ctx context.Context, keyID string) (*domain.APIKey, error)

	// ListAPIKeysByUser retrieves all keys belonging to a user.
	ListAPIKeysByUser(ctx context.Context, userID string) ([]domain.APIKey, error)

	// UpdateAPIKey replaces a stored key (revocation, last-used stamping).
	UpdateAPIKey(ctx context.Context, key domain.APIKey) error
}
