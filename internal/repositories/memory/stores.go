// Package memory implements the repository ports over memstore collections.
// It is the default storage backend; every read applies the caller's tenant
// scope before anything else sees the records.
package memory

import (
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/memstore"
)

// Stores holds one collection per record type. A single Stores instance backs
// all memory repositories so seed data and repositories share state.
type Stores struct {
	Members        *memstore.Collection[domain.Member]
	Transactions   *memstore.Collection[domain.Transaction]
	Events         *memstore.Collection[domain.ChurchEvent]
	Tenants        *memstore.Collection[domain.Tenant]
	Users          *memstore.Collection[domain.User]
	Sermons        *memstore.Collection[domain.Sermon]
	Tickets        *memstore.Collection[domain.SupportTicket]
	Communications *memstore.Collection[domain.CommunicationLog]
	AuditLogs      *memstore.Collection[domain.AuditLog]
	Budgets        *memstore.Collection[domain.Budget]
	RecurringExp   *memstore.Collection[domain.RecurringExpense]
	RecurringCon   *memstore.Collection[domain.RecurringContribution]
	APIKeys        *memstore.Collection[domain.APIKey]
}

// NewStores creates empty collections for every record type.
func NewStores() *Stores {
	return &Stores{
		Members: memstore.NewCollection(
			func(m domain.Member) string { return m.MemberID },
			func(m domain.Member, id string) domain.Member { m.MemberID = id; return m },
		),
		Transactions: memstore.NewCollection(
			func(t domain.Transaction) string { return t.TransactionID },
			func(t domain.Transaction, id string) domain.Transaction { t.TransactionID = id; return t },
		),
		Events: memstore.NewCollection(
			func(e domain.ChurchEvent) string { return e.EventID },
			func(e domain.ChurchEvent, id string) domain.ChurchEvent { e.EventID = id; return e },
		),
		Tenants: memstore.NewCollection(
			func(t domain.Tenant) string { return t.TenantID },
			func(t domain.Tenant, id string) domain.Tenant { t.TenantID = id; return t },
		),
		Users: memstore.NewCollection(
			func(u domain.User) string { return u.UserID },
			func(u domain.User, id string) domain.User { u.UserID = id; return u },
		),
		Sermons: memstore.NewCollection(
			func(s domain.Sermon) string { return s.SermonID },
			func(s domain.Sermon, id string) domain.Sermon { s.SermonID = id; return s },
		),
		Tickets: memstore.NewCollection(
			func(t domain.SupportTicket) string { return t.TicketID },
			func(t domain.SupportTicket, id string) domain.SupportTicket { t.TicketID = id; return t },
		),
		Communications: memstore.NewCollection(
			func(c domain.CommunicationLog) string { return c.LogID },
			func(c domain.CommunicationLog, id string) domain.CommunicationLog { c.LogID = id; return c },
		),
		AuditLogs: memstore.NewCollection(
			func(a domain.AuditLog) string { return a.LogID },
			func(a domain.AuditLog, id string) domain.AuditLog { a.LogID = id; return a },
		),
		Budgets: memstore.NewCollection(
			func(b domain.Budget) string { return b.BudgetID },
			func(b domain.Budget, id string) domain.Budget { b.BudgetID = id; return b },
		),
		RecurringExp: memstore.NewCollection(
			func(r domain.RecurringExpense) string { return r.RecurringID },
			func(r domain.RecurringExpense, id string) domain.RecurringExpense { r.RecurringID = id; return r },
		),
		RecurringCon: memstore.NewCollection(
			func(r domain.RecurringContribution) string { return r.RecurringID },
			func(r domain.RecurringContribution, id string) domain.RecurringContribution { r.RecurringID = id; return r },
		),
		APIKeys: memstore.NewCollection(
			func(k domain.APIKey) string { return k.KeyID },
			func(k domain.APIKey, id string) domain.APIKey { k.KeyID = id; return k },
		),
	}
}

// NewRepositoryProvider wires every memory repository over a shared Stores.
func NewRepositoryProvider(s *Stores) *portrepo.RepositoryProvider {
	return &portrepo.RepositoryProvider{
		MemberRepo:        NewMemberRepository(s),
		TransactionRepo:   NewTransactionRepository(s),
		EventRepo:         NewEventRepository(s),
		TenantRepo:        NewTenantRepository(s),
		UserRepo:          NewUserRepository(s),
		SermonRepo:        NewSermonRepository(s),
		TicketRepo:        NewTicketRepository(s),
		CommunicationRepo: NewCommunicationRepository(s),
		AuditRepo:         NewAuditRepository(s),
		BudgetRepo:        NewBudgetRepository(s),
		APIKeyRepo:        NewAPIKeyRepository(s),
	}
}
