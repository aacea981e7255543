package domain

import "time"

// Role is the application-level role of a user. It drives navigation
// filtering and capability checks.
type Role string

const (
	RoleSystemOwner Role = "SYSTEM_OWNER" // Platform operator, owner console only
	RoleAdmin       Role = "ADMIN"
	RolePastor      Role = "PASTOR"
	RoleTreasurer   Role = "TREASURER"
	RoleSecretary   Role = "SECRETARY"
	RoleMember      Role = "MEMBER"
)

// KnownRoles lists every role the platform understands, in privilege order.
var KnownRoles = []Role{
	RoleSystemOwner,
	RoleAdmin,
	RolePastor,
	RoleTreasurer,
	RoleSecretary,
	RoleMember,
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	for _, known := range KnownRoles {
		if r == known {
			return true
		}
	}
	return false
}

// User represents an authenticated account. A user belongs to exactly one
// tenant, except the SYSTEM_OWNER whose TenantID is empty and whose requests
// resolve their scope per request.
type User struct {
	UserID         string  `json:"userID"` // Primary key (UUID)
	TenantID       string  `json:"tenantID,omitempty"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PasswordHash   string  `json:"-"`
	Role           Role    `json:"role"`
	MemberID       *string `json:"memberID,omitempty"` // Optional link to a Member record
	AuthProvider   string  `json:"-"`                  // e.g. "google" for federated sign-in
	ProviderUserID string  `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}
