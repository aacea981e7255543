package memory

import (
	"context"
	"sort"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
)

// SermonRepository implements the sermon port over a memstore collection.
type SermonRepository struct {
	stores *Stores
}

var _ portrepo.SermonRepository = (*SermonRepository)(nil)

// NewSermonRepository creates a new in-memory sermon repository.
func NewSermonRepository(s *Stores) *SermonRepository {
	return &SermonRepository{stores: s}
}

func (r *SermonRepository) SaveSermon(_ context.Context, sermon domain.Sermon) error {
	if _, ok := r.stores.Sermons.Add(sermon); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *SermonRepository) FindSermonByID(_ context.Context, scope domain.TenantScope, sermonID string) (*domain.Sermon, error) {
	sermon, ok := r.stores.Sermons.Get(sermonID)
	if !ok || !scope.Matches(sermon.TenantID) {
		return nil, apperrors.ErrNotFound
	}
	return &sermon, nil
}

func (r *SermonRepository) ListSermons(_ context.Context, scope domain.TenantScope) ([]domain.Sermon, error) {
	sermons := r.stores.Sermons.Filter(func(s domain.Sermon) bool {
		return scope.Matches(s.TenantID)
	})
	sort.SliceStable(sermons, func(i, j int) bool {
		return sermons[i].Date.After(sermons[j].Date)
	})
	return sermons, nil
}

func (r *SermonRepository) UpdateSermon(_ context.Context, sermon domain.Sermon) error {
	if !r.stores.Sermons.Replace(sermon.SermonID, sermon) {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SermonRepository) DeleteSermon(ctx context.Context, scope domain.TenantScope, sermonID string) error {
	if _, err := r.FindSermonByID(ctx, scope, sermonID); err != nil {
		return err
	}
	if !r.stores.Sermons.Remove(sermonID) {
		return apperrors.ErrNotFound
	}
	return nil
}

// TicketRepository implements the support ticket port.
type TicketRepository struct {
	stores *Stores
}

var _ portrepo.TicketRepository = (*TicketRepository)(nil)

// NewTicketRepository creates a new in-memory ticket repository.
func NewTicketRepository(s *Stores) *TicketRepository {
	return &TicketRepository{stores: s}
}

func (r *TicketRepository) SaveTicket(_ context.Context, ticket domain.SupportTicket) error {
	if _, ok := r.stores.Tickets.Add(ticket); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *TicketRepository) FindTicketByID(_ context.Context, scope domain.TenantScope, ticketID string) (*domain.SupportTicket, error) {
	ticket, ok := r.stores.Tickets.Get(ticketID)
	if !ok || !scope.Matches(ticket.TenantID) {
		return nil, apperrors.ErrNotFound
	}
	return &ticket, nil
}

func (r *TicketRepository) ListTickets(_ context.Context, scope domain.TenantScope, status *domain.TicketStatus) ([]domain.SupportTicket, error) {
	tickets := r.stores.Tickets.Filter(func(t domain.SupportTicket) bool {
		if !scope.Matches(t.TenantID) {
			return false
		}
		return status == nil || t.Status == *status
	})
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
	return tickets, nil
}

func (r *TicketRepository) UpdateTicket(_ context.Context, ticket domain.SupportTicket) error {
	if !r.stores.Tickets.Replace(ticket.TicketID, ticket) {
		return apperrors.ErrNotFound
	}
	return nil
}

// CommunicationRepository implements the append-only message log port.
type CommunicationRepository struct {
	stores *Stores
}

var _ portrepo.CommunicationRepository = (*CommunicationRepository)(nil)

// NewCommunicationRepository creates a new in-memory communication repository.
func NewCommunicationRepository(s *Stores) *CommunicationRepository {
	return &CommunicationRepository{stores: s}
}

func (r *CommunicationRepository) SaveCommunication(_ context.Context, log domain.CommunicationLog) error {
	if _, ok := r.stores.Communications.Add(log); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *CommunicationRepository) ListCommunications(_ context.Context, scope domain.TenantScope) ([]domain.CommunicationLog, error) {
	logs := r.stores.Communications.Filter(func(c domain.CommunicationLog) bool {
		return scope.Matches(c.TenantID)
	})
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].SentAt.After(logs[j].SentAt)
	})
	return logs, nil
}

// AuditRepository implements the append-only audit trail port.
type AuditRepository struct {
	stores *Stores
}

var _ portrepo.AuditRepository = (*AuditRepository)(nil)

// NewAuditRepository creates a new in-memory audit repository.
func NewAuditRepository(s *Stores) *AuditRepository {
	return &AuditRepository{stores: s}
}

func (r *AuditRepository) AppendAuditLog(_ context.Context, entry domain.AuditLog) error {
	if _, ok := r.stores.AuditLogs.Add(entry); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *AuditRepository) ListAuditLogs(_ context.Context, scope domain.TenantScope, limit int) ([]domain.AuditLog, error) {
	logs := r.stores.AuditLogs.Filter(func(a domain.AuditLog) bool {
		return scope.Matches(a.TenantID)
	})
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].At.After(logs[j].At)
	})
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

// BudgetRepository implements the budget and recurring item port.
type BudgetRepository struct {
	stores *Stores
}

var _ portrepo.BudgetRepository = (*BudgetRepository)(nil)

// NewBudgetRepository creates a new in-memory budget repository.
func NewBudgetRepository(s *Stores) *BudgetRepository {
	return &BudgetRepository{stores: s}
}

func (r *BudgetRepository) SaveBudget(_ context.Context, budget domain.Budget) error {
	if _, ok := r.stores.Budgets.Add(budget); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *BudgetRepository) ListBudgets(_ context.Context, scope domain.TenantScope) ([]domain.Budget, error) {
	return r.stores.Budgets.Filter(func(b domain.Budget) bool {
		return scope.Matches(b.TenantID)
	}), nil
}

func (r *BudgetRepository) DeleteBudget(_ context.Context, scope domain.TenantScope, budgetID string) error {
	budget, ok := r.stores.Budgets.Get(budgetID)
	if !ok || !scope.Matches(budget.TenantID) {
		return apperrors.ErrNotFound
	}
	if !r.stores.Budgets.Remove(budgetID) {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BudgetRepository) SaveRecurringExpense(_ context.Context, item domain.RecurringExpense) error {
	if _, ok := r.stores.RecurringExp.Add(item); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *BudgetRepository) ListRecurringExpenses(_ context.Context, scope domain.TenantScope) ([]domain.RecurringExpense, error) {
	return r.stores.RecurringExp.Filter(func(e domain.RecurringExpense) bool {
		return scope.Matches(e.TenantID)
	}), nil
}

func (r *BudgetRepository) DeleteRecurringExpense(_ context.Context, scope domain.TenantScope, recurringID string) error {
	item, ok := r.stores.RecurringExp.Get(recurringID)
	if !ok || !scope.Matches(item.TenantID) {
		return apperrors.ErrNotFound
	}
	if !r.stores.RecurringExp.Remove(recurringID) {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BudgetRepository) SaveRecurringContribution(_ context.Context, item domain.RecurringContribution) error {
	if _, ok := r.stores.RecurringCon.Add(item); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *BudgetRepository) ListRecurringContributions(_ context.Context, scope domain.TenantScope) ([]domain.RecurringContribution, error) {
	return r.stores.RecurringCon.Filter(func(c domain.RecurringContribution) bool {
		return scope.Matches(c.TenantID)
	}), nil
}

func (r *BudgetRepository) DeleteRecurringContribution(_ context.Context, scope domain.TenantScope, recurringID string) error {
	item, ok := r.stores.RecurringCon.Get(recurringID)
	if !ok || !scope.Matches(item.TenantID) {
		return apperrors.ErrNotFound
	}
	if !r.stores.RecurringCon.Remove(recurringID) {
		return apperrors.ErrNotFound
	}
	return nil
}
