package domain

import "time"

// MemberStatus is the standing of a member within the congregation.
type MemberStatus string

const (
	MemberActive   MemberStatus = "ACTIVE"
	MemberInactive MemberStatus = "INACTIVE"
	MemberVisitor  MemberStatus = "VISITOR"
	MemberYouth    MemberStatus = "YOUTH"
	MemberDeceased MemberStatus = "DECEASED"
	MemberArchived MemberStatus = "ARCHIVED"
)

// MembershipType classifies how a member relates to the congregation roll.
type MembershipType string

const (
	MembershipRegular   MembershipType = "REGULAR"
	MembershipLeader    MembershipType = "LEADERSHIP"
	MembershipVolunteer MembershipType = "VOLUNTEER"
	MembershipGuest     MembershipType = "GUEST"
)

// Member represents one person on a tenant's congregation roll.
//
// Groups holds group names by value; the names are not enforced against any
// group registry, so dangling names are allowed.
type Member struct {
	MemberID       string         `json:"memberID"` // Primary key (UUID)
	TenantID       string         `json:"tenantID"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Location       string         `json:"location,omitempty"`
	Groups         []string       `json:"groups,omitempty"`
	Status         MemberStatus   `json:"status"`
	MembershipType MembershipType `json:"membershipType"`
	JoinDate       time.Time      `json:"joinDate"`
	AuditFields
}

// FullName returns the member's display name.
func (m Member) FullName() string {
	if m.FirstName == "" {
		return m.LastName
	}
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// IsActiveRoll reports whether the member counts toward active-members views.
// Archived, deceased and inactive members are excluded but stay retrievable
// by id.
func (m Member) IsActiveRoll() bool {
	switch m.Status {
	case MemberActive, MemberYouth, MemberVisitor:
		return true
	default:
		return false
	}
}
