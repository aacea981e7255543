package services

import (
	"context"

	"github.com/imani-cms/imani_backend/internal/dto"
)

// AITextSvc is the boundary to the external generative-text collaborator.
// Calls are best-effort: at most one retry, and failures surface as
// ErrServiceUnavailable so callers can show fallback content.
type AITextSvc interface {
	// SermonOutline generates a sermon outline for a topic.
	SermonOutline(ctx context.Context, req dto.SermonOutlineRequest) (string, error)

	// DailyVerse generates a short verse-of-the-day reflection.
	DailyVerse(ctx context.Context) (string, error)

	// LocationScout suggests outreach locations for an area.
	LocationScout(ctx context.Context, req dto.LocationScoutRequest) (string, error)

	// FinancialInsight generates the structured summary/recommendations view
	// over a finance summary rendered as prompt context.
	FinancialInsight(ctx context.Context, financeContext string) (*dto.FinancialInsightResponse, error)
}

// ScriptureSvc is the boundary to the public Bible-text API.
type ScriptureSvc interface {
	// GetChapter fetches the verses of one chapter. Failures are retryable
	// from the caller's point of view.
	GetChapter(ctx context.Context, book string, chapter int) (*dto.ScriptureResponse, error)
}
