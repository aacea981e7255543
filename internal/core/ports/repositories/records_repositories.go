package repositories

import (
	"context"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// SermonRepository defines storage operations for sermon records.
type SermonRepository interface {
	SaveSermon(ctx context.Context, sermon domain.Sermon) error
	FindSermonByID(ctx context.Context, scope domain.TenantScope, sermonID string) (*domain.Sermon, error)
	ListSermons(ctx context.Context, scope domain.TenantScope) ([]domain.Sermon, error)
	UpdateSermon(ctx context.Context, sermon domain.Sermon) error
	DeleteSermon(ctx context.Context, scope domain.TenantScope, sermonID string) error
}

// TicketRepository defines storage operations for support tickets.
type TicketRepository interface {
	SaveTicket(ctx context.Context, ticket domain.SupportTicket) error
	FindTicketByID(ctx context.Context, scope domain.TenantScope, ticketID string) (*domain.SupportTicket, error)
	ListTickets(ctx context.Context, scope domain.TenantScope, status *domain.TicketStatus) ([]domain.SupportTicket, error)
	UpdateTicket(ctx context.Context, ticket domain.SupportTicket) error
}

// CommunicationRepository defines storage for the outbound message log.
// Entries are append-only.
type CommunicationRepository interface {
	SaveCommunication(ctx context.Context, log domain.CommunicationLog) error
	ListCommunications(ctx context.Context, scope domain.TenantScope) ([]domain.CommunicationLog, error)
}

// AuditRepository defines storage for the append-only audit trail.
type AuditRepository interface {
	AppendAuditLog(ctx context.Context, entry domain.AuditLog) error
	ListAuditLogs(ctx context.Context, scope domain.TenantScope, limit int) ([]domain.AuditLog, error)
}

// BudgetRepository defines storage for budgets and recurring items.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	ListBudgets(ctx context.Context, scope domain.TenantScope) ([]domain.Budget, error)
	DeleteBudget(ctx context.Context, scope domain.TenantScope, budgetID string) error

	SaveRecurringExpense(ctx context.Context, item domain.RecurringExpense) error
	ListRecurringExpenses(ctx context.Context, scope domain.TenantScope) ([]domain.RecurringExpense, error)
	DeleteRecurringExpense(ctx context.Context, scope domain.TenantScope, recurringID string) error

	SaveRecurringContribution(ctx context.Context, item domain.RecurringContribution) error
	ListRecurringContributions(ctx context.Context, scope domain.TenantScope) ([]domain.RecurringContribution, error)
	DeleteRecurringContribution(ctx context.Context, scope domain.TenantScope, recurringID string) error
}
