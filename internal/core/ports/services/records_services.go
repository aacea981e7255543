package services

import (
	"context"
	"io"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// SermonSvcFacade defines sermon record operations.
type SermonSvcFacade interface {
	CreateSermon(ctx context.Context, tenantID, actorUserID string, req dto.CreateSermonRequest) (*domain.Sermon, error)
	GetSermonByID(ctx context.Context, scope domain.TenantScope, sermonID string) (*domain.Sermon, error)
	ListSermons(ctx context.Context, scope domain.TenantScope) ([]domain.Sermon, error)
	UpdateSermon(ctx context.Context, scope domain.TenantScope, sermonID, actorUserID string, req dto.UpdateSermonRequest) (*domain.Sermon, error)
	DeleteSermon(ctx context.Context, scope domain.TenantScope, sermonID, actorUserID string) error

	// ExportSermonsCSV writes the scoped sermons as CSV.
	ExportSermonsCSV(ctx context.Context, scope domain.TenantScope, w io.Writer) error
}

// TicketSvcFacade defines support ticket operations.
type TicketSvcFacade interface {
	RaiseTicket(ctx context.Context, tenantID, actorUserID string, req dto.CreateTicketRequest) (*domain.SupportTicket, error)
	GetTicketByID(ctx context.Context, scope domain.TenantScope, ticketID string) (*domain.SupportTicket, error)
	ListTickets(ctx context.Context, scope domain.TenantScope, status *domain.TicketStatus) ([]domain.SupportTicket, error)
	UpdateTicketStatus(ctx context.Context, scope domain.TenantScope, ticketID, actorUserID string, status domain.TicketStatus) (*domain.SupportTicket, error)
}

// CommunicationSvcFacade defines the outbound message log.
type CommunicationSvcFacade interface {
	// SendCommunication logs a message. Sending is simulated; the recipient
	// count is resolved from the targeted groups at log time.
	SendCommunication(ctx context.Context, tenantID, actorUserID string, req dto.SendCommunicationRequest) (*domain.CommunicationLog, error)
	ListCommunications(ctx context.Context, scope domain.TenantScope) ([]domain.CommunicationLog, error)
}

// BudgetSvcFacade defines budget and recurring item operations.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, tenantID, actorUserID string, req dto.CreateBudgetRequest) (*domain.Budget, error)
	ListBudgets(ctx context.Context, scope domain.TenantScope) ([]domain.Budget, error)
	DeleteBudget(ctx context.Context, scope domain.TenantScope, budgetID, actorUserID string) error

	CreateRecurringExpense(ctx context.Context, tenantID, actorUserID string, req dto.CreateRecurringExpenseRequest) (*domain.RecurringExpense, error)
	ListRecurringExpenses(ctx context.Context, scope domain.TenantScope) ([]domain.RecurringExpense, error)
	DeleteRecurringExpense(ctx context.Context, scope domain.TenantScope, recurringID, actorUserID string) error

	CreateRecurringContribution(ctx context.Context, tenantID, actorUserID string, req dto.CreateRecurringContributionRequest) (*domain.RecurringContribution, error)
	ListRecurringContributions(ctx context.Context, scope domain.TenantScope) ([]domain.RecurringContribution, error)
	DeleteRecurringContribution(ctx context.Context, scope domain.TenantScope, recurringID, actorUserID string) error
}

// AuditSvcFacade defines the audit trail.
type AuditSvcFacade interface {
	// Record appends an audit entry. Failures are logged, never propagated;
	// auditing must not fail the action it records.
	Record(ctx context.Context, entry domain.AuditLog)

	ListAuditLogs(ctx context.Context, scope domain.TenantScope, limit int) ([]domain.AuditLog, error)
}
