package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantStatus describes the lifecycle state of a tenant parish.
type TenantStatus string

const (
	TenantActive    TenantStatus = "ACTIVE"
	TenantTrialing  TenantStatus = "TRIALING"
	TenantPastDue   TenantStatus = "PAST_DUE"
	TenantSuspended TenantStatus = "SUSPENDED"
)

// PlanTier is the subscription plan a tenant is billed on.
type PlanTier string

const (
	PlanStarter    PlanTier = "STARTER"
	PlanGrowth     PlanTier = "GROWTH"
	PlanEnterprise PlanTier = "ENTERPRISE"
)

// PlanMonthlyPrice returns the monthly recurring price for a plan tier.
// Unknown tiers price at zero rather than erroring; billing treats them as
// unprovisioned.
func PlanMonthlyPrice(tier PlanTier) decimal.Decimal {
	switch tier {
	case PlanStarter:
		return decimal.NewFromInt(29)
	case PlanGrowth:
		return decimal.NewFromInt(79)
	case PlanEnterprise:
		return decimal.NewFromInt(199)
	default:
		return decimal.Zero
	}
}

// Tenant represents a logically separate church/parish instance within the
// multi-tenant product.
type Tenant struct {
	TenantID      string          `json:"tenantID"`  // Primary key (UUID)
	Name          string          `json:"name"`      // Display name of the parish
	Subdomain     string          `json:"subdomain"` // Unique across the platform
	PlanTier      PlanTier        `json:"planTier"`
	Status        TenantStatus    `json:"status"`
	MRR           decimal.Decimal `json:"mrr"` // Monthly recurring revenue accrued for this tenant
	MemberCount   int             `json:"memberCount"`
	StorageUsedMB int             `json:"storageUsedMB"`
	TrialEndsAt   *time.Time      `json:"trialEndsAt,omitempty"`
	PastDueSince  *time.Time      `json:"pastDueSince,omitempty"`
	AuditFields
}

// TenantScope narrows reads to a single tenant, or widens them to the whole
// platform for owner-console aggregate views.
type TenantScope string

// TenantScopeAll matches every tenant. Only SYSTEM_OWNER requests may carry it.
const TenantScopeAll TenantScope = "ALL"

// ScopeTenant returns a scope pinned to a single tenant id.
func ScopeTenant(tenantID string) TenantScope {
	return TenantScope(tenantID)
}

// IsAll reports whether the scope covers all tenants.
func (s TenantScope) IsAll() bool {
	return s == TenantScopeAll
}

// Matches reports whether a record owned by tenantID is visible in this scope.
func (s TenantScope) Matches(tenantID string) bool {
	return s.IsAll() || string(s) == tenantID
}
