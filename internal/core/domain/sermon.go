package domain

import "time"

// Sermon represents a sermon record, optionally with an AI-generated outline.
type Sermon struct {
	SermonID     string    `json:"sermonID"` // Primary key (UUID)
	TenantID     string    `json:"tenantID"`
	Title        string    `json:"title"`
	Speaker      string    `json:"speaker"`
	ScriptureRef string    `json:"scriptureRef,omitempty"` // e.g. "John 3:16-21"
	Series       string    `json:"series,omitempty"`
	Date         time.Time `json:"date"`
	Outline      string    `json:"outline,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	AuditFields
}
