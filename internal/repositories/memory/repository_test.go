package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
)

func seedMember(t *testing.T, repo *MemberRepository, tenantID, first string, createdAt time.Time) domain.Member {
	t.Helper()
	member := domain.Member{
		TenantID:  tenantID,
		FirstName: first,
		LastName:  "Mwangi",
		Status:    domain.MemberActive,
		AuditFields: domain.AuditFields{
			CreatedAt: createdAt,
		},
	}
	require.NoError(t, repo.SaveMember(context.Background(), member))
	members, err := repo.ListAllMembers(context.Background(), domain.TenantScopeAll)
	require.NoError(t, err)
	return members[len(members)-1]
}

func TestMemberReadsAreTenantScoped(t *testing.T) {
	repo := NewMemberRepository(NewStores())
	ctx := context.Background()

	a := seedMember(t, repo, "tenant-a", "Grace", time.Now())
	seedMember(t, repo, "tenant-b", "Daniel", time.Now())

	listed, err := repo.ListAllMembers(ctx, domain.ScopeTenant("tenant-a"))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Grace", listed[0].FirstName)

	// A record in another tenant is invisible even with the right id.
	_, err = repo.FindMemberByID(ctx, domain.ScopeTenant("tenant-b"), a.MemberID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestScopeAllSeesEveryTenant(t *testing.T) {
	repo := NewMemberRepository(NewStores())
	ctx := context.Background()

	seedMember(t, repo, "tenant-a", "Grace", time.Now())
	seedMember(t, repo, "tenant-b", "Daniel", time.Now())

	listed, err := repo.ListAllMembers(ctx, domain.TenantScopeAll)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestUpdateUnknownMemberReturnsNotFound(t *testing.T) {
	repo := NewMemberRepository(NewStores())

	err := repo.UpdateMember(context.Background(), domain.Member{MemberID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.DeleteMember(context.Background(), domain.TenantScopeAll, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListMembersPaginatesByCreationTime(t *testing.T) {
	repo := NewMemberRepository(NewStores())
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		seedMember(t, repo, "tenant-a", "Member", base.Add(time.Duration(i)*time.Hour))
	}

	scope := domain.ScopeTenant("tenant-a")
	first, token, err := repo.ListMembers(ctx, scope, portrepo.MemberListFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.NotEmpty(t, token)
	// Newest first.
	assert.True(t, first[0].CreatedAt.After(first[1].CreatedAt))

	second, token2, err := repo.ListMembers(ctx, scope, portrepo.MemberListFilter{Limit: 2, NextToken: token})
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.NotEmpty(t, token2)
	assert.True(t, first[1].CreatedAt.After(second[0].CreatedAt))

	last, token3, err := repo.ListMembers(ctx, scope, portrepo.MemberListFilter{Limit: 2, NextToken: token2})
	require.NoError(t, err)
	assert.Len(t, last, 1)
	assert.Empty(t, token3)
}

func TestListMembersFiltersByStatusAndGroup(t *testing.T) {
	repo := NewMemberRepository(NewStores())
	ctx := context.Background()

	require.NoError(t, repo.SaveMember(ctx, domain.Member{
		TenantID: "tenant-a", FirstName: "Joy", Status: domain.MemberYouth, Groups: []string{"Choir"},
	}))
	require.NoError(t, repo.SaveMember(ctx, domain.Member{
		TenantID: "tenant-a", FirstName: "Peter", Status: domain.MemberActive, Groups: []string{"Ushering"},
	}))

	youth := domain.MemberYouth
	listed, _, err := repo.ListMembers(ctx, domain.ScopeTenant("tenant-a"), portrepo.MemberListFilter{Status: &youth})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Joy", listed[0].FirstName)

	listed, _, err = repo.ListMembers(ctx, domain.ScopeTenant("tenant-a"), portrepo.MemberListFilter{Group: "choir"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Joy", listed[0].FirstName)
}

func TestTransactionWindowAndScopeFiltering(t *testing.T) {
	repo := NewTransactionRepository(NewStores())
	ctx := context.Background()
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveTransaction(ctx, domain.Transaction{
		TenantID: "tenant-a", Type: domain.TxnTithe, Category: domain.CategoryIncome,
		Amount: decimal.NewFromInt(2000), Date: jan, ReferenceCode: "TXN-20260115-AAAAAA",
	}))
	require.NoError(t, repo.SaveTransaction(ctx, domain.Transaction{
		TenantID: "tenant-a", Type: domain.TxnExpense, Category: domain.CategoryExpense,
		Amount: decimal.NewFromInt(500), Date: feb, ReferenceCode: "TXN-20260215-BBBBBB",
	}))
	require.NoError(t, repo.SaveTransaction(ctx, domain.Transaction{
		TenantID: "tenant-b", Type: domain.TxnOffering, Category: domain.CategoryIncome,
		Amount: decimal.NewFromInt(100), Date: feb, ReferenceCode: "TXN-20260215-CCCCCC",
	}))

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	scoped, err := repo.ListAllTransactions(ctx, domain.ScopeTenant("tenant-a"), &from, nil)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, domain.TxnExpense, scoped[0].Type)

	all, err := repo.ListAllTransactions(ctx, domain.TenantScopeAll, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := repo.FindTransactionByReference(ctx, domain.ScopeTenant("tenant-a"), "TXN-20260115-AAAAAA")
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(2000)))

	_, err = repo.FindTransactionByReference(ctx, domain.ScopeTenant("tenant-b"), "TXN-20260115-AAAAAA")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTenantSubdomainLookupIsCaseInsensitive(t *testing.T) {
	repo := NewTenantRepository(NewStores())
	ctx := context.Background()

	require.NoError(t, repo.SaveTenant(ctx, domain.Tenant{
		TenantID: "tenant-a", Name: "Grace Chapel", Subdomain: "grace-chapel",
	}))

	found, err := repo.FindTenantBySubdomain(ctx, "Grace-Chapel")
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", found.TenantID)

	_, err = repo.FindTenantBySubdomain(ctx, "unknown")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSoftDeletedUsersAreHiddenFromLookups(t *testing.T) {
	repo := NewUserRepository(NewStores())
	ctx := context.Background()

	user := domain.User{UserID: "user-1", TenantID: "tenant-a", Username: "gmwangi", Email: "g@example.com", Role: domain.RoleAdmin}
	require.NoError(t, repo.SaveUser(ctx, user))

	found, err := repo.FindUserByUsername(ctx, "GMwangi")
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.UserID)

	require.NoError(t, repo.MarkUserDeleted(ctx, "user-1", time.Now(), "admin-1"))

	_, err = repo.FindUserByID(ctx, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.FindUserByUsername(ctx, "gmwangi")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	listed, err := repo.ListUsers(ctx, domain.ScopeTenant("tenant-a"))
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestEventRollCallPersistsThroughUpdate(t *testing.T) {
	repo := NewEventRepository(NewStores())
	ctx := context.Background()

	require.NoError(t, repo.SaveEvent(ctx, domain.ChurchEvent{
		EventID: "event-1", TenantID: "tenant-a", Title: "Sunday Service", StartsAt: time.Now(),
	}))

	event, err := repo.FindEventByID(ctx, domain.ScopeTenant("tenant-a"), "event-1")
	require.NoError(t, err)
	added := event.MarkAttendance([]string{"m1", "m2", "m1"})
	assert.Equal(t, 2, added)
	require.NoError(t, repo.UpdateEvent(ctx, *event))

	reloaded, err := repo.FindEventByID(ctx, domain.ScopeTenant("tenant-a"), "event-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, reloaded.Attendance)
}
