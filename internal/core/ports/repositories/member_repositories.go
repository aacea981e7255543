package repositories

import (
	"context"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// MemberListFilter narrows and pages a member listing.
type MemberListFilter struct {
	Status    *domain.MemberStatus
	Group     string // Group name; empty matches all
	Limit     int
	NextToken string
}

// MemberReader defines read operations over the member roll. Every read is
// bounded by the caller's tenant scope.
type MemberReader interface {
	// FindMemberByID retrieves a member by id. Archived members are still
	// retrievable here.
	FindMemberByID(ctx context.Context, scope domain.TenantScope, memberID string) (*domain.Member, error)

	// ListMembers retrieves a page of members plus a cursor for the next page.
	ListMembers(ctx context.Context, scope domain.TenantScope, filter MemberListFilter) ([]domain.Member, string, error)

	// ListAllMembers retrieves the full scoped roll, for exports and aggregates.
	ListAllMembers(ctx context.Context, scope domain.TenantScope) ([]domain.Member, error)
}

// MemberWriter defines write operations over the member roll.
type MemberWriter interface {
	// SaveMember persists a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMember replaces a stored member. Returns ErrNotFound if absent.
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member by id. Returns ErrNotFound if absent.
	DeleteMember(ctx context.Context, scope domain.TenantScope, memberID string) error
}

// MemberRepositoryFacade combines all member repository interfaces.
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
