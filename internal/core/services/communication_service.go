package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// communicationService logs outbound messages. Actual delivery is out of
// scope; the recipient count is resolved against the member roll at log time
// so the history stays meaningful as groups change.
type communicationService struct {
	BaseService
	commRepo   portrepo.CommunicationRepository
	memberRepo portrepo.MemberRepositoryFacade
	auditSvc   portssvc.AuditSvcFacade
}

var _ portssvc.CommunicationSvcFacade = (*communicationService)(nil)

// NewCommunicationService creates the communication log service.
func NewCommunicationService(commRepo portrepo.CommunicationRepository, memberRepo portrepo.MemberRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.CommunicationSvcFacade {
	return &communicationService{commRepo: commRepo, memberRepo: memberRepo, auditSvc: auditSvc}
}

func parseChannel(raw string) (domain.CommunicationChannel, error) {
	channel := domain.CommunicationChannel(strings.ToUpper(raw))
	switch channel {
	case domain.ChannelSMS, domain.ChannelEmail, domain.ChannelWhatsApp:
		return channel, nil
	default:
		return "", fmt.Errorf("%w: unknown channel %q", apperrors.ErrValidation, raw)
	}
}

// countRecipients counts active-roll members reachable by the message. An
// empty target list addresses the whole roll.
func countRecipients(members []domain.Member, targetGroups []string) int {
	count := 0
	for _, m := range members {
		if !m.IsActiveRoll() {
			continue
		}
		if len(targetGroups) == 0 || memberInAnyGroup(m, targetGroups) {
			count++
		}
	}
	return count
}

func memberInAnyGroup(m domain.Member, groups []string) bool {
	for _, g := range groups {
		if memberInGroup(m, g) {
			return true
		}
	}
	return false
}

func memberInGroup(m domain.Member, group string) bool {
	for _, g := range m.Groups {
		if strings.EqualFold(g, group) {
			return true
		}
	}
	return false
}

func (s *communicationService) SendCommunication(ctx context.Context, tenantID, actorUserID string, req dto.SendCommunicationRequest) (*domain.CommunicationLog, error) {
	channel, err := parseChannel(req.Channel)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListAllMembers(ctx, domain.ScopeTenant(tenantID))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.CommunicationLog{
		LogID:          uuid.NewString(),
		TenantID:       tenantID,
		Channel:        channel,
		Subject:        req.Subject,
		Body:           req.Body,
		RecipientCount: countRecipients(members, req.TargetGroups),
		TargetGroups:   req.TargetGroups,
		SentBy:         actorUserID,
		SentAt:         now,
	}
	if err := s.commRepo.SaveCommunication(ctx, entry); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Communication logged", "channel", string(channel), "recipients", entry.RecipientCount)
	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "communication.send",
		EntityType: "communication", EntityID: entry.LogID,
		Detail: fmt.Sprintf("%s recipients=%d", channel, entry.RecipientCount), At: now,
	})
	return &entry, nil
}

func (s *communicationService) ListCommunications(ctx context.Context, scope domain.TenantScope) ([]domain.CommunicationLog, error) {
	return s.commRepo.ListCommunications(ctx, scope)
}
