package dto

import (
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// CreateAPIKeyRequest carries the fields for minting an API key.
type CreateAPIKeyRequest struct {
	Name      string `json:"name" binding:"required"`
	ExpiresIn string `json:"expiresIn"` // Go duration string, e.g. "720h"; empty means no expiry
}

// CreateAPIKeyResponse returns the plaintext key exactly once.
type CreateAPIKeyResponse struct {
	Key       string     `json:"key"`
	KeyID     string     `json:"keyID"`
	Name      string     `json:"name"`
	Prefix    string     `json:"prefix"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// ListAPIKeysResponse wraps a user's keys.
type ListAPIKeysResponse struct {
	Keys []domain.APIKey `json:"keys"`
}
