package repositories

// RepositoryProvider bundles every repository implementation the service
// container needs. The concrete set is assembled in main according to the
// configured storage driver.
type RepositoryProvider struct {
	MemberRepo        MemberRepositoryFacade
	TransactionRepo   TransactionRepositoryFacade
	EventRepo         EventRepository
	TenantRepo        TenantRepositoryFacade
	UserRepo          UserRepository
	SermonRepo        SermonRepository
	TicketRepo        TicketRepository
	CommunicationRepo CommunicationRepository
	AuditRepo         AuditRepository
	BudgetRepo        BudgetRepository
	APIKeyRepo        APIKeyRepository
}
