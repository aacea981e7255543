package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/utils/csvio"
)

// memberService implements the member roll operations.
type memberService struct {
	BaseService
	memberRepo portrepo.MemberRepositoryFacade
	auditSvc   portssvc.AuditSvcFacade
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// NewMemberService creates the member service.
func NewMemberService(memberRepo portrepo.MemberRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo, auditSvc: auditSvc}
}

var knownMemberStatuses = map[domain.MemberStatus]bool{
	domain.MemberActive: true, domain.MemberInactive: true, domain.MemberVisitor: true,
	domain.MemberYouth: true, domain.MemberDeceased: true, domain.MemberArchived: true,
}

func parseMemberStatus(raw string) (domain.MemberStatus, error) {
	if raw == "" {
		return domain.MemberActive, nil
	}
	status := domain.MemberStatus(raw)
	if !knownMemberStatuses[status] {
		return "", fmt.Errorf("%w: unknown member status %q", apperrors.ErrValidation, raw)
	}
	return status, nil
}

func parseMembershipType(raw string) domain.MembershipType {
	if raw == "" {
		return domain.MembershipRegular
	}
	return domain.MembershipType(raw)
}

func (s *memberService) CreateMember(ctx context.Context, tenantID, actorUserID string, req dto.CreateMemberRequest) (*domain.Member, error) {
	status, err := parseMemberStatus(req.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	joinDate := now
	if req.JoinDate != nil {
		joinDate = *req.JoinDate
	}

	member := domain.Member{
		MemberID:       uuid.NewString(),
		TenantID:       tenantID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Location:       req.Location,
		Groups:         req.Groups,
		Status:         status,
		MembershipType: parseMembershipType(req.MembershipType),
		JoinDate:       joinDate,
		AuditFields:    domain.NewAuditFields(actorUserID, now),
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save member", "tenant_id", tenantID)
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "member.create",
		EntityType: "member", EntityID: member.MemberID, At: now,
	})
	return &member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, scope domain.TenantScope, memberID string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByID(ctx, scope, memberID)
}

func (s *memberService) ListMembers(ctx context.Context, scope domain.TenantScope, params dto.ListMembersParams) ([]domain.Member, string, error) {
	filter := portrepo.MemberListFilter{
		Group:     params.Group,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if params.Status != "" {
		status, err := parseMemberStatus(params.Status)
		if err != nil {
			return nil, "", err
		}
		filter.Status = &status
	}
	return s.memberRepo.ListMembers(ctx, scope, filter)
}

func (s *memberService) UpdateMember(ctx context.Context, scope domain.TenantScope, memberID, actorUserID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, scope, memberID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Location != nil {
		member.Location = *req.Location
	}
	if req.Groups != nil {
		member.Groups = *req.Groups
	}
	if req.Status != nil {
		status, err := parseMemberStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		member.Status = status
	}
	if req.MembershipType != nil {
		member.MembershipType = parseMembershipType(*req.MembershipType)
	}
	member.Touch(actorUserID, time.Now())

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to update member", "member_id", memberID)
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: member.TenantID, ActorID: actorUserID, Action: "member.update",
		EntityType: "member", EntityID: memberID, At: time.Now(),
	})
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, scope domain.TenantScope, memberID, actorUserID string) error {
	member, err := s.memberRepo.FindMemberByID(ctx, scope, memberID)
	if err != nil {
		return err
	}
	if err := s.memberRepo.DeleteMember(ctx, scope, memberID); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: member.TenantID, ActorID: actorUserID, Action: "member.delete",
		EntityType: "member", EntityID: memberID, At: time.Now(),
	})
	return nil
}

var memberCSVHeader = []string{
	"first_name", "last_name", "email", "phone", "location",
	"groups", "status", "membership_type", "join_date",
}

func (s *memberService) ExportMembersCSV(ctx context.Context, scope domain.TenantScope, w io.Writer) error {
	members, err := s.memberRepo.ListAllMembers(ctx, scope)
	if err != nil {
		return err
	}
	return csvio.Export(w, memberCSVHeader, members, func(m domain.Member) []string {
		return []string{
			m.FirstName, m.LastName, m.Email, m.Phone, m.Location,
			csvio.JoinMulti(m.Groups), string(m.Status), string(m.MembershipType),
			m.JoinDate.Format("2006-01-02"),
		}
	})
}

func (s *memberService) ImportMembersCSV(ctx context.Context, tenantID, actorUserID string, r io.Reader) (*dto.ImportMembersResponse, error) {
	rows, err := csvio.Import(r, []string{"first_name", "last_name"})
	if err != nil {
		return nil, err
	}

	result := &dto.ImportMembersResponse{}
	for i, row := range rows {
		req := dto.CreateMemberRequest{
			FirstName:      row.Get("first_name"),
			LastName:       row.Get("last_name"),
			Email:          row.Get("email"),
			Phone:          row.Get("phone"),
			Location:       row.Get("location"),
			Groups:         csvio.SplitMulti(row.Get("groups")),
			Status:         row.Get("status"),
			MembershipType: row.Get("membership_type"),
		}
		if req.FirstName == "" && req.LastName == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing name", i+2))
			continue
		}
		if joined := row.Get("join_date"); joined != "" {
			if parsed, err := time.Parse("2006-01-02", joined); err == nil {
				req.JoinDate = &parsed
			} else {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: bad join_date %q", i+2, joined))
				continue
			}
		}
		if _, err := s.CreateMember(ctx, tenantID, actorUserID, req); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		result.Imported++
	}

	s.LogInfo(ctx, "Member CSV import finished",
		"tenant_id", tenantID, "imported", result.Imported, "skipped", result.Skipped)
	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "member.import",
		EntityType: "member", Detail: fmt.Sprintf("imported=%d skipped=%d", result.Imported, result.Skipped),
		At: time.Now(),
	})
	return result, nil
}
