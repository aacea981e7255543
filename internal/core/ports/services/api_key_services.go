package services

import (
	"context"
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// APIKeySvc defines API key lifecycle and validation.
type APIKeySvc interface {
	// CreateKey mints a key for a user. The plaintext key is returned exactly
	// once; only its hash is stored.
	CreateKey(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIKey, error)

	// ListKeys returns a user's keys, newest first.
	ListKeys(ctx context.Context, userID string) ([]domain.APIKey, error)

	// RevokeKey revokes a key owned by the user.
	RevokeKey(ctx context.Context, userID, keyID string) error

	// ValidateKey checks a presented plaintext key and returns the owning
	// user id, stamping last-used on success.
	ValidateKey(ctx context.Context, presented string) (string, error)
}
