package repositories

import (
	"context"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// TenantReader defines read operations over the tenant registry. Tenants are
// platform-level records, so reads are not themselves tenant-scoped.
type TenantReader interface {
	// FindTenantByID retrieves a tenant by id.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// FindTenantBySubdomain retrieves a tenant by its unique subdomain.
	FindTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)

	// ListTenants retrieves all tenants.
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

// TenantWriter defines write operations over the tenant registry.
type TenantWriter interface {
	// SaveTenant persists a newly provisioned tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenant replaces a stored tenant. Returns ErrNotFound if absent.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error
}

// TenantRepositoryFacade combines all tenant repository interfaces.
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
