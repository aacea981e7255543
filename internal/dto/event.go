package dto

import (
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// CreateEventRequest carries the fields for scheduling a church event.
type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	StartsAt    time.Time  `json:"startsAt" binding:"required"`
	EndsAt      *time.Time `json:"endsAt"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
}

// UpdateEventRequest carries a partial event update.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Type        *string    `json:"type"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
}

// RollCallRequest marks members present at an event.
type RollCallRequest struct {
	MemberIDs []string `json:"memberIDs" binding:"required,min=1"`
}

// RollCallResponse reports the attendance after a roll call.
type RollCallResponse struct {
	EventID      string `json:"eventID"`
	Added        int    `json:"added"`
	TotalPresent int    `json:"totalPresent"`
}

// ListEventsResponse wraps the scoped events.
type ListEventsResponse struct {
	Events []domain.ChurchEvent `json:"events"`
}
