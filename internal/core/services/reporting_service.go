package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/utils/reporting"
)

// reportingService recomputes every view from a fresh store snapshot. The
// collections are demo-scale; nothing here is cached or incremental.
type reportingService struct {
	BaseService
	txnRepo    portrepo.TransactionRepositoryFacade
	memberRepo portrepo.MemberRepositoryFacade
	aiSvc      portssvc.AITextSvc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// NewReportingService creates the reporting service.
func NewReportingService(txnRepo portrepo.TransactionRepositoryFacade, memberRepo portrepo.MemberRepositoryFacade, aiSvc portssvc.AITextSvc) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo, memberRepo: memberRepo, aiSvc: aiSvc}
}

func (s *reportingService) FinanceReport(ctx context.Context, scope domain.TenantScope, from, to *time.Time) (*dto.FinanceReportResponse, error) {
	txns, err := s.txnRepo.ListAllTransactions(ctx, scope, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.FinanceReportResponse{
		Summary: reporting.FinanceTotals(txns),
		Trend:   reporting.MonthlyTrend(txns),
	}
	if from != nil {
		resp.From = from.Format("2006-01-02")
	}
	if to != nil {
		resp.To = to.Format("2006-01-02")
	}
	return resp, nil
}

func (s *reportingService) Demographics(ctx context.Context, scope domain.TenantScope) (*dto.DemographicsReportResponse, error) {
	members, err := s.memberRepo.ListAllMembers(ctx, scope)
	if err != nil {
		return nil, err
	}

	activeRoll := 0
	for _, m := range members {
		if m.IsActiveRoll() {
			activeRoll++
		}
	}
	return &dto.DemographicsReportResponse{
		Total:      len(members),
		ActiveRoll: activeRoll,
		ByStatus:   reporting.MembersByStatus(members),
		ByLocation: reporting.MembersByLocation(members),
	}, nil
}

func (s *reportingService) FinancialInsight(ctx context.Context, scope domain.TenantScope) (*dto.FinancialInsightResponse, error) {
	txns, err := s.txnRepo.ListAllTransactions(ctx, scope, nil, nil)
	if err != nil {
		return nil, err
	}

	summary := reporting.FinanceTotals(txns)
	trend := reporting.MonthlyTrend(txns)
	return s.aiSvc.FinancialInsight(ctx, renderFinanceContext(summary, trend))
}

// renderFinanceContext flattens the finance aggregates into the plain-text
// block handed to the model as prompt context.
func renderFinanceContext(summary domain.FinanceSummary, trend []domain.MonthlyTrendBucket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total income: %s\n", summary.TotalIncome.StringFixed(2))
	fmt.Fprintf(&b, "Total expense: %s\n", summary.TotalExpense.StringFixed(2))
	fmt.Fprintf(&b, "Net: %s\n", summary.Net.StringFixed(2))
	fmt.Fprintf(&b, "Transactions: %d\n", summary.Count)
	if len(trend) > 0 {
		b.WriteString("Monthly trend (income/expense):\n")
		for _, bucket := range trend {
			fmt.Fprintf(&b, "  %s: %s / %s\n", bucket.Month, bucket.Income.StringFixed(2), bucket.Expense.StringFixed(2))
		}
	}
	return b.String()
}
