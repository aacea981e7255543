package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// CreateSermonRequest carries the fields for recording a sermon.
type CreateSermonRequest struct {
	Title        string    `json:"title" binding:"required"`
	Speaker      string    `json:"speaker" binding:"required"`
	ScriptureRef string    `json:"scriptureRef"`
	Series       string    `json:"series"`
	Date         time.Time `json:"date" binding:"required"`
	Outline      string    `json:"outline"`
	Tags         []string  `json:"tags"`
}

// UpdateSermonRequest carries a partial sermon update.
type UpdateSermonRequest struct {
	Title        *string    `json:"title"`
	Speaker      *string    `json:"speaker"`
	ScriptureRef *string    `json:"scriptureRef"`
	Series       *string    `json:"series"`
	Date         *time.Time `json:"date"`
	Outline      *string    `json:"outline"`
	Tags         *[]string  `json:"tags"`
}

// ListSermonsResponse wraps the scoped sermons.
type ListSermonsResponse struct {
	Sermons []domain.Sermon `json:"sermons"`
}

// CreateTicketRequest raises a support ticket.
type CreateTicketRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Body     string `json:"body"`
	Priority string `json:"priority"`
}

// UpdateTicketStatusRequest moves a ticket to a new status.
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListTicketsResponse wraps the scoped tickets.
type ListTicketsResponse struct {
	Tickets []domain.SupportTicket `json:"tickets"`
}

// SendCommunicationRequest logs an outbound message to members.
type SendCommunicationRequest struct {
	Channel      string   `json:"channel" binding:"required"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body" binding:"required"`
	TargetGroups []string `json:"targetGroups"`
}

// ListCommunicationsResponse wraps the scoped communication log.
type ListCommunicationsResponse struct {
	Communications []domain.CommunicationLog `json:"communications"`
}

// CreateBudgetRequest plans a spending envelope.
type CreateBudgetRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PeriodStart time.Time       `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time       `json:"periodEnd" binding:"required"`
}

// CreateRecurringExpenseRequest registers a monthly expense.
type CreateRecurringExpenseRequest struct {
	Name       string          `json:"name" binding:"required"`
	Type       string          `json:"type" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	DayOfMonth int             `json:"dayOfMonth" binding:"required,min=1,max=28"`
}

// CreateRecurringContributionRequest registers a member pledge.
type CreateRecurringContributionRequest struct {
	MemberID  string          `json:"memberID" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Frequency string          `json:"frequency" binding:"required"`
}

// ListAuditLogsResponse wraps the scoped audit trail.
type ListAuditLogsResponse struct {
	Logs []domain.AuditLog `json:"logs"`
}
