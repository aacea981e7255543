package domain

import "time"

// AuditLog is an append-only record of a notable action. Entries are never
// updated or deleted.
type AuditLog struct {
	LogID      string    `json:"logID"` // Primary key (UUID)
	TenantID   string    `json:"tenantID,omitempty"`
	ActorID    string    `json:"actorID"` // UserID reference
	Action     string    `json:"action"`  // e.g. "tenant.suspend", "member.import"
	EntityType string    `json:"entityType,omitempty"`
	EntityID   string    `json:"entityID,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	At         time.Time `json:"at"`
}
