package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/repositories/memory"
)

// NewRepositoryProvider wires the Postgres repositories for the core
// collections. The ancillary record types (sermons, tickets, communications,
// audit trail, budgets, API keys) have no tables yet and stay on the shared
// in-memory stores.
func NewRepositoryProvider(dbPool *pgxpool.Pool, stores *memory.Stores) *portrepo.RepositoryProvider {
	return &portrepo.RepositoryProvider{
		MemberRepo:        newPgxMemberRepository(dbPool),
		TransactionRepo:   newPgxTransactionRepository(dbPool),
		EventRepo:         newPgxEventRepository(dbPool),
		TenantRepo:        newPgxTenantRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		SermonRepo:        memory.NewSermonRepository(stores),
		TicketRepo:        memory.NewTicketRepository(stores),
		CommunicationRepo: memory.NewCommunicationRepository(stores),
		AuditRepo:         memory.NewAuditRepository(stores),
		BudgetRepo:        memory.NewBudgetRepository(stores),
		APIKeyRepo:        memory.NewAPIKeyRepository(stores),
	}
}
