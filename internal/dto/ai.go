package dto

// SermonOutlineRequest asks the AI collaborator for a sermon outline.
type SermonOutlineRequest struct {
	Topic        string   `json:"topic" binding:"required"`
	ScriptureRef string   `json:"scriptureRef"`
	Audience     string   `json:"audience"`
	Temperature  *float64 `json:"temperature"`
}

// LocationScoutRequest asks for outreach location suggestions.
type LocationScoutRequest struct {
	Area      string `json:"area" binding:"required"`
	EventKind string `json:"eventKind"`
}

// GeneratedTextResponse wraps best-effort generated text.
type GeneratedTextResponse struct {
	Text string `json:"text"`
}

// FinancialInsightResponse is the structured AI view over the ledger.
type FinancialInsightResponse struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// DailyVerseResponse wraps the verse-of-the-day text.
type DailyVerseResponse struct {
	Verse string `json:"verse"`
}
