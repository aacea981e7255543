package domain

import "time"

// EventType classifies a church event.
type EventType string

const (
	EventService      EventType = "SERVICE"
	EventBibleStudy   EventType = "BIBLE_STUDY"
	EventPrayer       EventType = "PRAYER_MEETING"
	EventOutreach     EventType = "OUTREACH"
	EventConference   EventType = "CONFERENCE"
	EventYouth        EventType = "YOUTH"
	EventWedding      EventType = "WEDDING"
	EventFuneral      EventType = "FUNERAL"
)

// ChurchEvent represents a scheduled gathering for a tenant.
//
// Attendance holds member ids marked present during roll call. Entries are
// not enforced against the member roll.
type ChurchEvent struct {
	EventID     string     `json:"eventID"` // Primary key (UUID)
	TenantID    string     `json:"tenantID"`
	Title       string     `json:"title"`
	Type        EventType  `json:"type"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Location    string     `json:"location,omitempty"`
	Description string     `json:"description,omitempty"`
	Attendance  []string   `json:"attendance,omitempty"`
	AuditFields
}

// MarkAttendance adds member ids to the attendance set, ignoring duplicates.
// It returns the number of newly added entries.
func (e *ChurchEvent) MarkAttendance(memberIDs []string) int {
	present := make(map[string]struct{}, len(e.Attendance))
	for _, id := range e.Attendance {
		present[id] = struct{}{}
	}
	added := 0
	for _, id := range memberIDs {
		if _, ok := present[id]; ok {
			continue
		}
		present[id] = struct{}{}
		e.Attendance = append(e.Attendance, id)
		added++
	}
	return added
}
