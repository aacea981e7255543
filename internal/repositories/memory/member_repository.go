package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/utils/pagination"
)

const defaultPageLimit = 20

// MemberRepository implements the member ports over a memstore collection.
type MemberRepository struct {
	stores *Stores
}

var _ portrepo.MemberRepositoryFacade = (*MemberRepository)(nil)

// NewMemberRepository creates a new in-memory member repository.
func NewMemberRepository(s *Stores) *MemberRepository {
	return &MemberRepository{stores: s}
}

// SaveMember persists a new member.
func (r *MemberRepository) SaveMember(_ context.Context, member domain.Member) error {
	if _, ok := r.stores.Members.Add(member); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

// FindMemberByID retrieves a member by id within the scope.
func (r *MemberRepository) FindMemberByID(_ context.Context, scope domain.TenantScope, memberID string) (*domain.Member, error) {
	member, ok := r.stores.Members.Get(memberID)
	if !ok || !scope.Matches(member.TenantID) {
		return nil, apperrors.ErrNotFound
	}
	return &member, nil
}

// ListMembers retrieves a page of members ordered by creation time descending.
func (r *MemberRepository) ListMembers(_ context.Context, scope domain.TenantScope, filter portrepo.MemberListFilter) ([]domain.Member, string, error) {
	matched := r.stores.Members.Filter(func(m domain.Member) bool {
		if !scope.Matches(m.TenantID) {
			return false
		}
		if filter.Status != nil && m.Status != *filter.Status {
			return false
		}
		if filter.Group != "" && !memberInGroup(m, filter.Group) {
			return false
		}
		return true
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.NextToken != "" {
		cursor, err := pagination.DecodeDateBasedToken(filter.NextToken)
		if err != nil {
			return nil, "", apperrors.ErrValidation
		}
		matched = after(matched, func(m domain.Member) bool { return m.CreatedAt.Before(cursor) })
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	nextToken := ""
	if len(matched) > limit {
		matched = matched[:limit]
		nextToken = pagination.EncodeDateBasedToken(matched[limit-1].CreatedAt)
	}
	return matched, nextToken, nil
}

// ListAllMembers retrieves the full scoped roll in insertion order.
func (r *MemberRepository) ListAllMembers(_ context.Context, scope domain.TenantScope) ([]domain.Member, error) {
	return r.stores.Members.Filter(func(m domain.Member) bool {
		return scope.Matches(m.TenantID)
	}), nil
}

// UpdateMember replaces a stored member.
func (r *MemberRepository) UpdateMember(_ context.Context, member domain.Member) error {
	if !r.stores.Members.Replace(member.MemberID, member) {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMember removes a member by id within the scope.
func (r *MemberRepository) DeleteMember(ctx context.Context, scope domain.TenantScope, memberID string) error {
	if _, err := r.FindMemberByID(ctx, scope, memberID); err != nil {
		return err
	}
	if !r.stores.Members.Remove(memberID) {
		return apperrors.ErrNotFound
	}
	return nil
}

func memberInGroup(m domain.Member, group string) bool {
	for _, g := range m.Groups {
		if strings.EqualFold(g, group) {
			return true
		}
	}
	return false
}

// after drops leading items until pred first holds, keeping the rest.
func after[T any](items []T, pred func(T) bool) []T {
	for i, item := range items {
		if pred(item) {
			return items[i:]
		}
	}
	return nil
}
