package services

import (
	"context"
	"io"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// TenantReaderSvc defines read operations over the tenant registry.
type TenantReaderSvc interface {
	// GetTenantByID retrieves a tenant.
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenants retrieves all tenants.
	ListTenants(ctx context.Context) ([]domain.Tenant, error)

	// BillingSummary computes the owner-console billing aggregate.
	BillingSummary(ctx context.Context) (*domain.PlatformBillingSummary, error)

	// ExportTenantsCSV writes the tenant registry as CSV.
	ExportTenantsCSV(ctx context.Context, w io.Writer) error
}

// TenantWriterSvc defines owner-triggered tenant lifecycle operations.
type TenantWriterSvc interface {
	// ProvisionTenant creates a new parish instance. Subdomains are unique.
	ProvisionTenant(ctx context.Context, actorUserID string, req dto.ProvisionTenantRequest) (*domain.Tenant, error)

	// ChangeTenantStatus moves a tenant to a new lifecycle status.
	ChangeTenantStatus(ctx context.Context, tenantID, actorUserID string, status domain.TenantStatus) (*domain.Tenant, error)

	// ChangeTenantPlan moves a tenant to a new plan tier and reprices MRR.
	ChangeTenantPlan(ctx context.Context, tenantID, actorUserID string, tier domain.PlanTier) (*domain.Tenant, error)

	// RunBillingCycle accrues MRR for billable tenants, expires ended trials
	// and suspends long past-due tenants. Owner-triggered; there is no
	// automatic scheduler.
	RunBillingCycle(ctx context.Context, actorUserID string) (*dto.BillingRunResponse, error)
}

// TenantSvcFacade combines all tenant service interfaces.
type TenantSvcFacade interface {
	TenantReaderSvc
	TenantWriterSvc
}
