package domain

import "time"

// APIKey represents a long-lived key for authenticating API requests on
// behalf of a user.
type APIKey struct {
	KeyID      string     `json:"keyID"` // Primary key (UUID)
	UserID     string     `json:"userID"`
	Name       string     `json:"name"`
	KeyHash    string     `json:"-"` // bcrypt hash, never exposed
	Prefix     string     `json:"prefix"` // First characters of the key, for identification
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// IsExpired reports whether the key has passed its expiry time.
func (k *APIKey) IsExpired() bool {
	if k.ExpiresAt == nil {
		return false
	}
	return k.ExpiresAt.Before(time.Now())
}

// IsUsable reports whether the key may authenticate requests.
func (k *APIKey) IsUsable() bool {
	return k.RevokedAt == nil && !k.IsExpired()
}
