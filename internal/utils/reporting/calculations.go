// Package reporting holds the pure aggregate calculators used by the
// reporting and billing services. Every function takes a snapshot of domain
// records and returns a derived view; none of them mutate their inputs or
// touch any store, so recomputing on every read is safe.
package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// FinanceTotals computes the headline income/expense summary over a snapshot
// of transactions. The transaction category decides the sign convention.
func FinanceTotals(txns []domain.Transaction) domain.FinanceSummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range txns {
		switch txn.Category {
		case domain.CategoryIncome:
			income = income.Add(txn.Amount)
		case domain.CategoryExpense:
			expense = expense.Add(txn.Amount)
		}
	}
	return domain.FinanceSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
		Count:        len(txns),
	}
}

// MonthlyTrend buckets transactions into per-month income/expense totals,
// sorted ascending by month.
func MonthlyTrend(txns []domain.Transaction) []domain.MonthlyTrendBucket {
	byMonth := make(map[string]*domain.MonthlyTrendBucket)
	for _, txn := range txns {
		month := txn.Date.Format("2006-01")
		bucket, ok := byMonth[month]
		if !ok {
			bucket = &domain.MonthlyTrendBucket{
				Month:   month,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			byMonth[month] = bucket
		}
		switch txn.Category {
		case domain.CategoryIncome:
			bucket.Income = bucket.Income.Add(txn.Amount)
		case domain.CategoryExpense:
			bucket.Expense = bucket.Expense.Add(txn.Amount)
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]domain.MonthlyTrendBucket, 0, len(months))
	for _, m := range months {
		out = append(out, *byMonth[m])
	}
	return out
}

// MembersByStatus counts members per status, ordered by the status enum
// declaration order so repeated calls yield identical output.
func MembersByStatus(members []domain.Member) []domain.GroupCount {
	order := []domain.MemberStatus{
		domain.MemberActive, domain.MemberInactive, domain.MemberVisitor,
		domain.MemberYouth, domain.MemberDeceased, domain.MemberArchived,
	}
	counts := make(map[domain.MemberStatus]int)
	for _, m := range members {
		counts[m.Status]++
	}
	var out []domain.GroupCount
	for _, status := range order {
		if counts[status] > 0 {
			out = append(out, domain.GroupCount{Label: string(status), Count: counts[status]})
		}
	}
	return out
}

// MembersByLocation counts members per location, ordered alphabetically.
// Members without a location are grouped under "UNKNOWN".
func MembersByLocation(members []domain.Member) []domain.GroupCount {
	counts := make(map[string]int)
	for _, m := range members {
		loc := m.Location
		if loc == "" {
			loc = "UNKNOWN"
		}
		counts[loc]++
	}
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	out := make([]domain.GroupCount, 0, len(labels))
	for _, l := range labels {
		out = append(out, domain.GroupCount{Label: l, Count: counts[l]})
	}
	return out
}

// BillingSummary rolls tenant billing state up into the owner-console
// aggregate. Suspended tenants contribute no MRR.
func BillingSummary(tenants []domain.Tenant) domain.PlatformBillingSummary {
	summary := domain.PlatformBillingSummary{
		TotalMRR:    decimal.Zero,
		TenantCount: len(tenants),
		MRRByPlan:   make(map[domain.PlanTier]decimal.Decimal),
	}
	for _, t := range tenants {
		switch t.Status {
		case domain.TenantActive:
			summary.ActiveCount++
		case domain.TenantTrialing:
			summary.TrialingCount++
		case domain.TenantPastDue:
			summary.PastDueCount++
		case domain.TenantSuspended:
			summary.SuspendedCount++
			continue
		}
		summary.TotalMRR = summary.TotalMRR.Add(t.MRR)
		existing, ok := summary.MRRByPlan[t.PlanTier]
		if !ok {
			existing = decimal.Zero
		}
		summary.MRRByPlan[t.PlanTier] = existing.Add(t.MRR)
	}
	return summary
}
