package domain

import (
	"github.com/shopspring/decimal"
)

// FinanceSummary is the headline income/expense aggregate over a snapshot of
// transactions.
type FinanceSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
	Count        int             `json:"count"`
}

// MonthlyTrendBucket is one month's income/expense totals.
type MonthlyTrendBucket struct {
	Month   string          `json:"month"` // "2026-01"
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// GroupCount is a label with the number of records carrying it.
type GroupCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PlatformBillingSummary aggregates billing state over tenants for the owner
// console.
type PlatformBillingSummary struct {
	TotalMRR       decimal.Decimal              `json:"totalMRR"`
	TenantCount    int                          `json:"tenantCount"`
	ActiveCount    int                          `json:"activeCount"`
	TrialingCount  int                          `json:"trialingCount"`
	PastDueCount   int                          `json:"pastDueCount"`
	SuspendedCount int                          `json:"suspendedCount"`
	MRRByPlan      map[PlanTier]decimal.Decimal `json:"mrrByPlan"`
}
