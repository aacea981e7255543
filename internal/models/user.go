package models

import (
	"database/sql"
	"time"
)

// User is the users table row.
type User struct {
	UserID         string         `db:"user_id"`
	TenantID       sql.NullString `db:"tenant_id"`
	Username       string         `db:"username"`
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	PasswordHash   string         `db:"password_hash"`
	Role           string         `db:"role"`
	MemberID       *string        `db:"member_id"`
	AuthProvider   sql.NullString `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`

	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
