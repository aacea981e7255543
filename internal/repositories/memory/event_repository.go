package memory

import (
	"context"
	"sort"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
)

// EventRepository implements the event port over a memstore collection.
type EventRepository struct {
	stores *Stores
}

var _ portrepo.EventRepository = (*EventRepository)(nil)

// NewEventRepository creates a new in-memory event repository.
func NewEventRepository(s *Stores) *EventRepository {
	return &EventRepository{stores: s}
}

// SaveEvent persists a new event.
func (r *EventRepository) SaveEvent(_ context.Context, event domain.ChurchEvent) error {
	if _, ok := r.stores.Events.Add(event); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

// FindEventByID retrieves an event by id within the scope.
func (r *EventRepository) FindEventByID(_ context.Context, scope domain.TenantScope, eventID string) (*domain.ChurchEvent, error) {
	event, ok := r.stores.Events.Get(eventID)
	if !ok || !scope.Matches(event.TenantID) {
		return nil, apperrors.ErrNotFound
	}
	return &event, nil
}

// ListEvents retrieves the scoped events ordered by start time descending.
func (r *EventRepository) ListEvents(_ context.Context, scope domain.TenantScope) ([]domain.ChurchEvent, error) {
	events := r.stores.Events.Filter(func(e domain.ChurchEvent) bool {
		return scope.Matches(e.TenantID)
	})
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartsAt.After(events[j].StartsAt)
	})
	return events, nil
}

// UpdateEvent replaces a stored event.
func (r *EventRepository) UpdateEvent(_ context.Context, event domain.ChurchEvent) error {
	if !r.stores.Events.Replace(event.EventID, event) {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEvent removes an event by id within the scope.
func (r *EventRepository) DeleteEvent(ctx context.Context, scope domain.TenantScope, eventID string) error {
	if _, err := r.FindEventByID(ctx, scope, eventID); err != nil {
		return err
	}
	if !r.stores.Events.Remove(eventID) {
		return apperrors.ErrNotFound
	}
	return nil
}
