package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
)

// auditService implements the append-only audit trail.
type auditService struct {
	BaseService
	auditRepo portrepo.AuditRepository
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// NewAuditService creates the audit service.
func NewAuditService(auditRepo portrepo.AuditRepository) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

// Record appends an audit entry. Failures are logged, never propagated;
// auditing must not fail the action it records.
func (s *auditService) Record(ctx context.Context, entry domain.AuditLog) {
	if entry.LogID == "" {
		entry.LogID = uuid.NewString()
	}
	if err := s.auditRepo.AppendAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append audit log", "action", entry.Action)
	}
}

func (s *auditService) ListAuditLogs(ctx context.Context, scope domain.TenantScope, limit int) ([]domain.AuditLog, error) {
	return s.auditRepo.ListAuditLogs(ctx, scope, limit)
}
