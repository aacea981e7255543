package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tenant is the tenants table row.
type Tenant struct {
	TenantID      string          `db:"tenant_id"`
	Name          string          `db:"name"`
	Subdomain     string          `db:"subdomain"`
	PlanTier      string          `db:"plan_tier"`
	Status        string          `db:"status"`
	MRR           decimal.Decimal `db:"mrr"`
	MemberCount   int             `db:"member_count"`
	StorageUsedMB int             `db:"storage_used_mb"`
	TrialEndsAt   *time.Time      `db:"trial_ends_at"`
	PastDueSince  *time.Time      `db:"past_due_since"`
	AuditFields
}
