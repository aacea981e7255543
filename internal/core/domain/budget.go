package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a planned spending envelope for a category over a period.
type Budget struct {
	BudgetID    string          `json:"budgetID"` // Primary key (UUID)
	TenantID    string          `json:"tenantID"`
	Name        string          `json:"name"`
	Category    TransactionType `json:"category"` // The expense type budgeted against
	Amount      decimal.Decimal `json:"amount"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	AuditFields
}

// RecurringExpense is a known expense expected every month.
type RecurringExpense struct {
	RecurringID string          `json:"recurringID"` // Primary key (UUID)
	TenantID    string          `json:"tenantID"`
	Name        string          `json:"name"`
	Type        TransactionType `json:"type"` // Must map to CategoryExpense
	Amount      decimal.Decimal `json:"amount"`
	DayOfMonth  int             `json:"dayOfMonth"` // 1..28
	AuditFields
}

// ContributionFrequency is how often a pledged contribution recurs.
type ContributionFrequency string

const (
	FrequencyWeekly  ContributionFrequency = "WEEKLY"
	FrequencyMonthly ContributionFrequency = "MONTHLY"
)

// RecurringContribution is a member's standing pledge.
type RecurringContribution struct {
	RecurringID string                `json:"recurringID"` // Primary key (UUID)
	TenantID    string                `json:"tenantID"`
	MemberID    string                `json:"memberID"`
	Type        TransactionType       `json:"type"` // Must map to CategoryIncome
	Amount      decimal.Decimal       `json:"amount"`
	Frequency   ContributionFrequency `json:"frequency"`
	AuditFields
}
