package services

import (
	"context"
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// ReportingSvcFacade defines the derived views computed from store snapshots.
// All aggregates are recomputed on every read; collections are demo-scale.
type ReportingSvcFacade interface {
	// FinanceReport computes the income/expense summary and monthly trend.
	FinanceReport(ctx context.Context, scope domain.TenantScope, from, to *time.Time) (*dto.FinanceReportResponse, error)

	// Demographics computes member group-by views.
	Demographics(ctx context.Context, scope domain.TenantScope) (*dto.DemographicsReportResponse, error)

	// FinancialInsight asks the AI collaborator for a narrative over the
	// current finance summary.
	FinancialInsight(ctx context.Context, scope domain.TenantScope) (*dto.FinancialInsightResponse, error)
}
