package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// eventService implements event scheduling and roll call.
type eventService struct {
	BaseService
	eventRepo portrepo.EventRepository
	auditSvc  portssvc.AuditSvcFacade
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// NewEventService creates the event service.
func NewEventService(eventRepo portrepo.EventRepository, auditSvc portssvc.AuditSvcFacade) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo, auditSvc: auditSvc}
}

func (s *eventService) CreateEvent(ctx context.Context, tenantID, actorUserID string, req dto.CreateEventRequest) (*domain.ChurchEvent, error) {
	now := time.Now()
	event := domain.ChurchEvent{
		EventID:     uuid.NewString(),
		TenantID:    tenantID,
		Title:       req.Title,
		Type:        domain.EventType(req.Type),
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Location:    req.Location,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(actorUserID, now),
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save event", "tenant_id", tenantID)
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "event.create",
		EntityType: "event", EntityID: event.EventID, At: now,
	})
	return &event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, scope domain.TenantScope, eventID string) (*domain.ChurchEvent, error) {
	return s.eventRepo.FindEventByID(ctx, scope, eventID)
}

func (s *eventService) ListEvents(ctx context.Context, scope domain.TenantScope) ([]domain.ChurchEvent, error) {
	return s.eventRepo.ListEvents(ctx, scope)
}

func (s *eventService) UpdateEvent(ctx context.Context, scope domain.TenantScope, eventID, actorUserID string, req dto.UpdateEventRequest) (*domain.ChurchEvent, error) {
	event, err := s.eventRepo.FindEventByID(ctx, scope, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Type != nil {
		event.Type = domain.EventType(*req.Type)
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	event.Touch(actorUserID, time.Now())

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update event", "event_id", eventID)
		return nil, err
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, scope domain.TenantScope, eventID, actorUserID string) error {
	event, err := s.eventRepo.FindEventByID(ctx, scope, eventID)
	if err != nil {
		return err
	}
	if err := s.eventRepo.DeleteEvent(ctx, scope, eventID); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: event.TenantID, ActorID: actorUserID, Action: "event.delete",
		EntityType: "event", EntityID: eventID, At: time.Now(),
	})
	return nil
}

func (s *eventService) MarkRollCall(ctx context.Context, scope domain.TenantScope, eventID, actorUserID string, memberIDs []string) (*dto.RollCallResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, scope, eventID)
	if err != nil {
		return nil, err
	}

	added := event.MarkAttendance(memberIDs)
	event.Touch(actorUserID, time.Now())

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to persist roll call", "event_id", eventID)
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: event.TenantID, ActorID: actorUserID, Action: "event.rollcall",
		EntityType: "event", EntityID: eventID,
		Detail: fmt.Sprintf("added=%d total=%d", added, len(event.Attendance)), At: time.Now(),
	})
	return &dto.RollCallResponse{
		EventID:      eventID,
		Added:        added,
		TotalPresent: len(event.Attendance),
	}, nil
}
