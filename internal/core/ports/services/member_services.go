package services

import (
	"context"
	"io"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// MemberReaderSvc defines read operations over the member roll.
type MemberReaderSvc interface {
	// GetMemberByID retrieves a member; archived members are included.
	GetMemberByID(ctx context.Context, scope domain.TenantScope, memberID string) (*domain.Member, error)

	// ListMembers retrieves a page of members matching the filter.
	ListMembers(ctx context.Context, scope domain.TenantScope, params dto.ListMembersParams) ([]domain.Member, string, error)

	// ExportMembersCSV writes the scoped roll as CSV.
	ExportMembersCSV(ctx context.Context, scope domain.TenantScope, w io.Writer) error
}

// MemberWriterSvc defines write operations over the member roll.
type MemberWriterSvc interface {
	// CreateMember adds a member to a tenant's roll.
	CreateMember(ctx context.Context, tenantID, actorUserID string, req dto.CreateMemberRequest) (*domain.Member, error)

	// UpdateMember applies a partial update. Returns ErrNotFound if absent.
	UpdateMember(ctx context.Context, scope domain.TenantScope, memberID, actorUserID string, req dto.UpdateMemberRequest) (*domain.Member, error)

	// DeleteMember removes a member. Returns ErrNotFound if absent.
	DeleteMember(ctx context.Context, scope domain.TenantScope, memberID, actorUserID string) error

	// ImportMembersCSV creates members from an uploaded CSV template.
	ImportMembersCSV(ctx context.Context, tenantID, actorUserID string, r io.Reader) (*dto.ImportMembersResponse, error)
}

// MemberSvcFacade combines all member service interfaces.
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
