package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Member        MemberSvcFacade
	Transaction   TransactionSvcFacade
	Event         EventSvcFacade
	Tenant        TenantSvcFacade
	User          UserSvcFacade
	Auth          AuthSvcFacade
	APIKey        APIKeySvc
	Sermon        SermonSvcFacade
	Ticket        TicketSvcFacade
	Communication CommunicationSvcFacade
	Budget        BudgetSvcFacade
	Audit         AuditSvcFacade
	Reporting     ReportingSvcFacade
	AIText        AITextSvc
	Scripture     ScriptureSvc
}
