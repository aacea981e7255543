package domain

import "time"

// TicketStatus is the workflow state of a support ticket. Statuses are set
// directly by user action; there is no guarded transition table.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketClosed     TicketStatus = "CLOSED"
)

// TicketPriority ranks a support ticket.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "LOW"
	PriorityMedium TicketPriority = "MEDIUM"
	PriorityHigh   TicketPriority = "HIGH"
	PriorityUrgent TicketPriority = "URGENT"
)

// SupportTicket is a tenant-raised issue visible in the owner console queue.
type SupportTicket struct {
	TicketID   string         `json:"ticketID"` // Primary key (UUID)
	TenantID   string         `json:"tenantID"`
	Subject    string         `json:"subject"`
	Body       string         `json:"body,omitempty"`
	Status     TicketStatus   `json:"status"`
	Priority   TicketPriority `json:"priority"`
	RaisedBy   string         `json:"raisedBy"` // UserID reference
	ResolvedAt *time.Time     `json:"resolvedAt,omitempty"`
	AuditFields
}
