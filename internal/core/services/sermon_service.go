package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/utils/csvio"
)

type sermonService struct {
	BaseService
	sermonRepo portrepo.SermonRepository
	auditSvc   portssvc.AuditSvcFacade
}

var _ portssvc.SermonSvcFacade = (*sermonService)(nil)

// NewSermonService creates the sermon service.
func NewSermonService(sermonRepo portrepo.SermonRepository, auditSvc portssvc.AuditSvcFacade) portssvc.SermonSvcFacade {
	return &sermonService{sermonRepo: sermonRepo, auditSvc: auditSvc}
}

func (s *sermonService) CreateSermon(ctx context.Context, tenantID, actorUserID string, req dto.CreateSermonRequest) (*domain.Sermon, error) {
	now := time.Now()
	sermon := domain.Sermon{
		SermonID:     uuid.NewString(),
		TenantID:     tenantID,
		Title:        req.Title,
		Speaker:      req.Speaker,
		ScriptureRef: req.ScriptureRef,
		Series:       req.Series,
		Date:         req.Date,
		Outline:      req.Outline,
		Tags:         req.Tags,
		AuditFields:  domain.NewAuditFields(actorUserID, now),
	}
	if err := s.sermonRepo.SaveSermon(ctx, sermon); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "sermon.create",
		EntityType: "sermon", EntityID: sermon.SermonID, Detail: req.Title, At: now,
	})
	return &sermon, nil
}

func (s *sermonService) GetSermonByID(ctx context.Context, scope domain.TenantScope, sermonID string) (*domain.Sermon, error) {
	return s.sermonRepo.FindSermonByID(ctx, scope, sermonID)
}

func (s *sermonService) ListSermons(ctx context.Context, scope domain.TenantScope) ([]domain.Sermon, error) {
	return s.sermonRepo.ListSermons(ctx, scope)
}

func (s *sermonService) UpdateSermon(ctx context.Context, scope domain.TenantScope, sermonID, actorUserID string, req dto.UpdateSermonRequest) (*domain.Sermon, error) {
	sermon, err := s.sermonRepo.FindSermonByID(ctx, scope, sermonID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		sermon.Title = *req.Title
	}
	if req.Speaker != nil {
		sermon.Speaker = *req.Speaker
	}
	if req.ScriptureRef != nil {
		sermon.ScriptureRef = *req.ScriptureRef
	}
	if req.Series != nil {
		sermon.Series = *req.Series
	}
	if req.Date != nil {
		sermon.Date = *req.Date
	}
	if req.Outline != nil {
		sermon.Outline = *req.Outline
	}
	if req.Tags != nil {
		sermon.Tags = *req.Tags
	}
	sermon.Touch(actorUserID, time.Now())

	if err := s.sermonRepo.UpdateSermon(ctx, *sermon); err != nil {
		return nil, err
	}
	return sermon, nil
}

func (s *sermonService) DeleteSermon(ctx context.Context, scope domain.TenantScope, sermonID, actorUserID string) error {
	sermon, err := s.sermonRepo.FindSermonByID(ctx, scope, sermonID)
	if err != nil {
		return err
	}
	if err := s.sermonRepo.DeleteSermon(ctx, scope, sermonID); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: sermon.TenantID, ActorID: actorUserID, Action: "sermon.delete",
		EntityType: "sermon", EntityID: sermonID, At: time.Now(),
	})
	return nil
}

var sermonCSVHeader = []string{
	"title", "speaker", "scripture_ref", "series", "date", "tags",
}

func (s *sermonService) ExportSermonsCSV(ctx context.Context, scope domain.TenantScope, w io.Writer) error {
	sermons, err := s.sermonRepo.ListSermons(ctx, scope)
	if err != nil {
		return err
	}
	return csvio.Export(w, sermonCSVHeader, sermons, func(sm domain.Sermon) []string {
		return []string{
			sm.Title, sm.Speaker, sm.ScriptureRef, sm.Series,
			sm.Date.Format("2006-01-02"), csvio.JoinMulti(sm.Tags),
		}
	})
}
