package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

func txn(t domain.TransactionType, amount int64, date time.Time) domain.Transaction {
	category, _ := domain.CategoryForType(t)
	return domain.Transaction{
		Amount:   decimal.NewFromInt(amount),
		Type:     t,
		Category: category,
		Date:     date,
	}
}

func TestFinanceTotals(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn(domain.TxnTithe, 2000, now),
		txn(domain.TxnExpense, 500, now),
	}

	summary := FinanceTotals(txns)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(2000)), "income %s", summary.TotalIncome)
	assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(500)), "expense %s", summary.TotalExpense)
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(1500)), "net %s", summary.Net)
	assert.Equal(t, 2, summary.Count)
}

func TestFinanceTotalsIsPure(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn(domain.TxnOffering, 120, now),
		txn(domain.TxnSalary, 75, now),
		txn(domain.TxnDonation, 40, now),
	}

	first := FinanceTotals(txns)
	second := FinanceTotals(txns)
	assert.Equal(t, first, second)
}

func TestMonthlyTrendBucketsAndSorts(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.TxnTithe, 100, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)),
		txn(domain.TxnExpense, 30, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)),
		txn(domain.TxnOffering, 50, time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC)),
	}

	trend := MonthlyTrend(txns)
	require.Len(t, trend, 2)
	assert.Equal(t, "2026-01", trend[0].Month)
	assert.True(t, trend[0].Expense.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "2026-02", trend[1].Month)
	assert.True(t, trend[1].Income.Equal(decimal.NewFromInt(150)))
}

func TestMembersByStatusStableOrder(t *testing.T) {
	members := []domain.Member{
		{Status: domain.MemberArchived},
		{Status: domain.MemberActive},
		{Status: domain.MemberActive},
		{Status: domain.MemberVisitor},
	}

	first := MembersByStatus(members)
	second := MembersByStatus(members)
	require.Equal(t, first, second)

	require.Len(t, first, 3)
	assert.Equal(t, string(domain.MemberActive), first[0].Label)
	assert.Equal(t, 2, first[0].Count)
	assert.Equal(t, string(domain.MemberArchived), first[2].Label)
}

func TestMembersByLocationGroupsUnknown(t *testing.T) {
	members := []domain.Member{
		{Location: "Nairobi"},
		{Location: ""},
		{Location: "Accra"},
		{Location: "Accra"},
	}

	groups := MembersByLocation(members)
	require.Len(t, groups, 3)
	assert.Equal(t, "Accra", groups[0].Label)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "UNKNOWN", groups[2].Label)
}

func TestBillingSummarySkipsSuspendedMRR(t *testing.T) {
	tenants := []domain.Tenant{
		{PlanTier: domain.PlanGrowth, Status: domain.TenantActive, MRR: decimal.NewFromInt(79)},
		{PlanTier: domain.PlanStarter, Status: domain.TenantTrialing, MRR: decimal.Zero},
		{PlanTier: domain.PlanGrowth, Status: domain.TenantSuspended, MRR: decimal.NewFromInt(79)},
		{PlanTier: domain.PlanEnterprise, Status: domain.TenantPastDue, MRR: decimal.NewFromInt(199)},
	}

	summary := BillingSummary(tenants)
	assert.Equal(t, 4, summary.TenantCount)
	assert.Equal(t, 1, summary.ActiveCount)
	assert.Equal(t, 1, summary.TrialingCount)
	assert.Equal(t, 1, summary.PastDueCount)
	assert.Equal(t, 1, summary.SuspendedCount)
	assert.True(t, summary.TotalMRR.Equal(decimal.NewFromInt(278)), "mrr %s", summary.TotalMRR)
	assert.True(t, summary.MRRByPlan[domain.PlanGrowth].Equal(decimal.NewFromInt(79)))
}
