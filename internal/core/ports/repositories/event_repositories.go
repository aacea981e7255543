package repositories

import (
	"context"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// EventRepository defines storage operations for church events.
type EventRepository interface {
	// SaveEvent persists a new event.
	SaveEvent(ctx context.Context, event domain.ChurchEvent) error

	// FindEventByID retrieves an event by id.
	FindEventByID(ctx context.Context, scope domain.TenantScope, eventID string) (*domain.ChurchEvent, error)

	// ListEvents retrieves the scoped events ordered by start time descending.
	ListEvents(ctx context.Context, scope domain.TenantScope) ([]domain.ChurchEvent, error)

	// UpdateEvent replaces a stored event. Returns ErrNotFound if absent.
	UpdateEvent(ctx context.Context, event domain.ChurchEvent) error

	// DeleteEvent removes an event by id. Returns ErrNotFound if absent.
	DeleteEvent(ctx context.Context, scope domain.TenantScope, eventID string) error
}
