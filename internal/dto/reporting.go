package dto

import (
	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// FinanceReportResponse is the finance dashboard payload.
type FinanceReportResponse struct {
	From    string                      `json:"from,omitempty"`
	To      string                      `json:"to,omitempty"`
	Summary domain.FinanceSummary       `json:"summary"`
	Trend   []domain.MonthlyTrendBucket `json:"trend"`
}

// DemographicsReportResponse is the membership dashboard payload.
type DemographicsReportResponse struct {
	Total      int                 `json:"total"`
	ActiveRoll int                 `json:"activeRoll"`
	ByStatus   []domain.GroupCount `json:"byStatus"`
	ByLocation []domain.GroupCount `json:"byLocation"`
}

// NavigationResponse lists the views the authenticated role may see.
type NavigationResponse struct {
	Role  domain.Role     `json:"role"`
	Views []domain.ViewID `json:"views"`
}

// ScriptureResponse carries a fetched chapter.
type ScriptureResponse struct {
	Reference string  `json:"reference"`
	Verses    []Verse `json:"verses"`
}

// Verse is one verse of a fetched chapter.
type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}
