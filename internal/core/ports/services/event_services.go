package services

import (
	"context"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// EventSvcFacade defines church event scheduling and roll call.
type EventSvcFacade interface {
	// CreateEvent schedules an event for a tenant.
	CreateEvent(ctx context.Context, tenantID, actorUserID string, req dto.CreateEventRequest) (*domain.ChurchEvent, error)

	// GetEventByID retrieves an event.
	GetEventByID(ctx context.Context, scope domain.TenantScope, eventID string) (*domain.ChurchEvent, error)

	// ListEvents retrieves the scoped events.
	ListEvents(ctx context.Context, scope domain.TenantScope) ([]domain.ChurchEvent, error)

	// UpdateEvent applies a partial update. Returns ErrNotFound if absent.
	UpdateEvent(ctx context.Context, scope domain.TenantScope, eventID, actorUserID string, req dto.UpdateEventRequest) (*domain.ChurchEvent, error)

	// DeleteEvent removes an event. Returns ErrNotFound if absent.
	DeleteEvent(ctx context.Context, scope domain.TenantScope, eventID, actorUserID string) error

	// MarkRollCall marks members present, ignoring already-present ids.
	// Member ids are not checked against the roll.
	MarkRollCall(ctx context.Context, scope domain.TenantScope, eventID, actorUserID string, memberIDs []string) (*dto.RollCallResponse, error)
}
