package memory

import (
	"context"
	"strings"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
)

// TenantRepository implements the tenant ports over a memstore collection.
type TenantRepository struct {
	stores *Stores
}

var _ portrepo.TenantRepositoryFacade = (*TenantRepository)(nil)

// NewTenantRepository creates a new in-memory tenant repository.
func NewTenantRepository(s *Stores) *TenantRepository {
	return &TenantRepository{stores: s}
}

// SaveTenant persists a newly provisioned tenant.
func (r *TenantRepository) SaveTenant(_ context.Context, tenant domain.Tenant) error {
	if _, ok := r.stores.Tenants.Add(tenant); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

// FindTenantByID retrieves a tenant by id.
func (r *TenantRepository) FindTenantByID(_ context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, ok := r.stores.Tenants.Get(tenantID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &tenant, nil
}

// FindTenantBySubdomain retrieves a tenant by its unique subdomain.
func (r *TenantRepository) FindTenantBySubdomain(_ context.Context, subdomain string) (*domain.Tenant, error) {
	matched := r.stores.Tenants.Filter(func(t domain.Tenant) bool {
		return strings.EqualFold(t.Subdomain, subdomain)
	})
	if len(matched) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &matched[0], nil
}

// ListTenants retrieves all tenants in provisioning order.
func (r *TenantRepository) ListTenants(_ context.Context) ([]domain.Tenant, error) {
	return r.stores.Tenants.All(), nil
}

// UpdateTenant replaces a stored tenant.
func (r *TenantRepository) UpdateTenant(_ context.Context, tenant domain.Tenant) error {
	if !r.stores.Tenants.Replace(tenant.TenantID, tenant) {
		return apperrors.ErrNotFound
	}
	return nil
}
