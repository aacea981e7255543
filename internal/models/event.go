package models

import "time"

// ChurchEvent is the events table row.
type ChurchEvent struct {
	EventID     string     `db:"event_id"`
	TenantID    string     `db:"tenant_id"`
	Title       string     `db:"title"`
	Type        string     `db:"type"`
	StartsAt    time.Time  `db:"starts_at"`
	EndsAt      *time.Time `db:"ends_at"`
	Location    string     `db:"location"`
	Description string     `db:"description"`
	Attendance  []string   `db:"attendance"`
	AuditFields
}
