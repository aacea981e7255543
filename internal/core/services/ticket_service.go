package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

type ticketService struct {
	BaseService
	ticketRepo portrepo.TicketRepository
	auditSvc   portssvc.AuditSvcFacade
}

var _ portssvc.TicketSvcFacade = (*ticketService)(nil)

// NewTicketService creates the support ticket service.
func NewTicketService(ticketRepo portrepo.TicketRepository, auditSvc portssvc.AuditSvcFacade) portssvc.TicketSvcFacade {
	return &ticketService{ticketRepo: ticketRepo, auditSvc: auditSvc}
}

func parseTicketPriority(raw string) (domain.TicketPriority, error) {
	if raw == "" {
		return domain.PriorityMedium, nil
	}
	priority := domain.TicketPriority(raw)
	switch priority {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent:
		return priority, nil
	default:
		return "", fmt.Errorf("%w: unknown ticket priority %q", apperrors.ErrValidation, raw)
	}
}

// ParseTicketStatus validates a raw ticket status string for handlers.
func ParseTicketStatus(raw string) (domain.TicketStatus, error) {
	status := domain.TicketStatus(raw)
	switch status {
	case domain.TicketOpen, domain.TicketInProgress, domain.TicketResolved, domain.TicketClosed:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown ticket status %q", apperrors.ErrValidation, raw)
	}
}

func (s *ticketService) RaiseTicket(ctx context.Context, tenantID, actorUserID string, req dto.CreateTicketRequest) (*domain.SupportTicket, error) {
	priority, err := parseTicketPriority(req.Priority)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket := domain.SupportTicket{
		TicketID:    uuid.NewString(),
		TenantID:    tenantID,
		Subject:     req.Subject,
		Body:        req.Body,
		Status:      domain.TicketOpen,
		Priority:    priority,
		RaisedBy:    actorUserID,
		AuditFields: domain.NewAuditFields(actorUserID, now),
	}
	if err := s.ticketRepo.SaveTicket(ctx, ticket); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Support ticket raised", "ticket_id", ticket.TicketID, "priority", string(priority))
	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "ticket.raise",
		EntityType: "ticket", EntityID: ticket.TicketID, Detail: req.Subject, At: now,
	})
	return &ticket, nil
}

func (s *ticketService) GetTicketByID(ctx context.Context, scope domain.TenantScope, ticketID string) (*domain.SupportTicket, error) {
	return s.ticketRepo.FindTicketByID(ctx, scope, ticketID)
}

func (s *ticketService) ListTickets(ctx context.Context, scope domain.TenantScope, status *domain.TicketStatus) ([]domain.SupportTicket, error) {
	return s.ticketRepo.ListTickets(ctx, scope, status)
}

func (s *ticketService) UpdateTicketStatus(ctx context.Context, scope domain.TenantScope, ticketID, actorUserID string, status domain.TicketStatus) (*domain.SupportTicket, error) {
	if _, err := ParseTicketStatus(string(status)); err != nil {
		return nil, err
	}
	ticket, err := s.ticketRepo.FindTicketByID(ctx, scope, ticketID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket.Status = status
	if status == domain.TicketResolved && ticket.ResolvedAt == nil {
		ticket.ResolvedAt = &now
	}
	ticket.Touch(actorUserID, now)

	if err := s.ticketRepo.UpdateTicket(ctx, *ticket); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: ticket.TenantID, ActorID: actorUserID, Action: "ticket.status",
		EntityType: "ticket", EntityID: ticketID, Detail: string(status), At: now,
	})
	return ticket, nil
}
