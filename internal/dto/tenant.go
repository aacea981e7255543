package dto

import (
	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// ProvisionTenantRequest carries the fields for provisioning a new parish.
type ProvisionTenantRequest struct {
	Name      string `json:"name" binding:"required"`
	Subdomain string `json:"subdomain" binding:"required,hostname_rfc1123"`
	PlanTier  string `json:"planTier" binding:"required"`
	Trial     bool   `json:"trial"`
}

// ChangeTenantStatusRequest moves a tenant to a new lifecycle status.
type ChangeTenantStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeTenantPlanRequest moves a tenant to a new plan tier.
type ChangeTenantPlanRequest struct {
	PlanTier string `json:"planTier" binding:"required"`
}

// ListTenantsResponse wraps the tenant registry.
type ListTenantsResponse struct {
	Tenants []domain.Tenant `json:"tenants"`
}

// BillingRunResponse summarizes one billing-cycle run.
type BillingRunResponse struct {
	TenantsBilled    int `json:"tenantsBilled"`
	TrialsExpired    int `json:"trialsExpired"`
	TenantsSuspended int `json:"tenantsSuspended"`
}
