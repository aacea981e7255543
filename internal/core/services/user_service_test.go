package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

func newUserSvc(repos *portrepo.RepositoryProvider) portssvc.UserSvcFacade {
	return services.NewUserService(repos.UserRepo, services.NewAuditService(repos.AuditRepo))
}

func TestCreateUserRejectsOwnerRole(t *testing.T) {
	svc := newUserSvc(newTestRepos())

	_, err := svc.CreateUser(context.Background(), "t1", "admin", dto.CreateUserRequest{
		Username: "sneaky", Name: "Sneaky", Email: "sneaky@example.com",
		Password: "supersecret1", Role: string(domain.RoleSystemOwner),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateUserRejectsTakenUsername(t *testing.T) {
	svc := newUserSvc(newTestRepos())
	ctx := context.Background()

	req := dto.CreateUserRequest{
		Username: "ama", Name: "Ama", Email: "ama@example.com",
		Password: "supersecret1", Role: string(domain.RoleSecretary),
	}
	_, err := svc.CreateUser(ctx, "t1", "admin", req)
	require.NoError(t, err)

	req.Email = "other@example.com"
	_, err = svc.CreateUser(ctx, "t2", "admin", req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestFederatedSignInCreatesMemberAccount(t *testing.T) {
	svc := newUserSvc(newTestRepos())
	ctx := context.Background()

	user, err := svc.FindOrCreateFederatedUser(ctx, "google", "sub-123", "kofi@example.com", "Kofi Annan")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.Equal(t, "kofi", user.Username)

	// A second sign-in resolves to the same account.
	again, err := svc.FindOrCreateFederatedUser(ctx, "google", "sub-123", "kofi@example.com", "Kofi Annan")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, again.UserID)
}

func TestFederatedSignInLinksByEmail(t *testing.T) {
	svc := newUserSvc(newTestRepos())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "t1", "admin", dto.CreateUserRequest{
		Username: "ama", Name: "Ama", Email: "ama@example.com",
		Password: "supersecret1", Role: string(domain.RolePastor),
	})
	require.NoError(t, err)

	linked, err := svc.FindOrCreateFederatedUser(ctx, "google", "sub-456", "ama@example.com", "Ama B")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, linked.UserID)
	assert.Equal(t, domain.RolePastor, linked.Role)
}

func TestDeletedUserHiddenFromLookup(t *testing.T) {
	svc := newUserSvc(newTestRepos())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "t1", "admin", dto.CreateUserRequest{
		Username: "ama", Name: "Ama", Email: "ama@example.com",
		Password: "supersecret1", Role: string(domain.RoleSecretary),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, domain.ScopeTenant("t1"), user.UserID, "admin"))

	_, err = svc.GetUserByUsername(ctx, "ama")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
