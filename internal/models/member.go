package models

import "time"

// Member is the members table row.
type Member struct {
	MemberID       string    `db:"member_id"`
	TenantID       string    `db:"tenant_id"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Email          string    `db:"email"`
	Phone          string    `db:"phone"`
	Location       string    `db:"location"`
	Groups         []string  `db:"groups"`
	Status         string    `db:"status"`
	MembershipType string    `db:"membership_type"`
	JoinDate       time.Time `db:"join_date"`
	AuditFields
}
