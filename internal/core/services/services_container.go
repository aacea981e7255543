package services

import (
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/platform/config"
)

// NewServiceContainer wires every service over the configured repositories.
// The AI and scripture clients are built in main and injected here so the
// container stays free of HTTP concerns.
func NewServiceContainer(cfg *config.Config, repos *portrepo.RepositoryProvider, aiSvc portssvc.AITextSvc, scriptureSvc portssvc.ScriptureSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first; nearly every other service records through it.
	container.Audit = NewAuditService(repos.AuditRepo)

	container.Member = NewMemberService(repos.MemberRepo, container.Audit)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Audit)
	container.Event = NewEventService(repos.EventRepo, container.Audit)
	container.Tenant = NewTenantService(repos.TenantRepo, container.Audit)
	container.User = NewUserService(repos.UserRepo, container.Audit)
	container.Auth = NewAuthService(cfg, container.User, repos.TenantRepo)
	container.APIKey = NewAPIKeyService(repos.APIKeyRepo)
	container.Sermon = NewSermonService(repos.SermonRepo, container.Audit)
	container.Ticket = NewTicketService(repos.TicketRepo, container.Audit)
	container.Communication = NewCommunicationService(repos.CommunicationRepo, repos.MemberRepo, container.Audit)
	container.Budget = NewBudgetService(repos.BudgetRepo, container.Audit)
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.MemberRepo, aiSvc)
	container.AIText = aiSvc
	container.Scripture = scriptureSvc

	return container
}
