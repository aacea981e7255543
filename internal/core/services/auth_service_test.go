package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/platform/config"
)

func newAuthFixture(repos *portrepo.RepositoryProvider) (portssvc.AuthSvcFacade, portssvc.UserSvcFacade) {
	cfg := &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "imani-test",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
	userSvc := services.NewUserService(repos.UserRepo, services.NewAuditService(repos.AuditRepo))
	return services.NewAuthService(cfg, userSvc, repos.TenantRepo), userSvc
}

func seedAccount(t *testing.T, userSvc portssvc.UserSvcFacade, tenantID, username, password string) *domain.User {
	t.Helper()
	user, err := userSvc.CreateUser(context.Background(), tenantID, "admin", dto.CreateUserRequest{
		Username: username,
		Name:     "Test User",
		Email:    username + "@example.com",
		Password: password,
		Role:     string(domain.RoleSecretary),
	})
	require.NoError(t, err)
	return user
}

func TestLoginIssuesTokenPair(t *testing.T) {
	authSvc, userSvc := newAuthFixture(newTestRepos())
	seedAccount(t, userSvc, "", "ama", "correct-horse-battery")

	resp, err := authSvc.Login(context.Background(), dto.LoginRequest{
		Username: "ama", Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, domain.RoleSecretary, resp.User.Role)
	assert.Contains(t, resp.VisibleViews, domain.ViewMembers)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	authSvc, userSvc := newAuthFixture(newTestRepos())
	seedAccount(t, userSvc, "", "ama", "correct-horse-battery")

	_, err := authSvc.Login(context.Background(), dto.LoginRequest{
		Username: "ama", Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	authSvc, _ := newAuthFixture(newTestRepos())

	_, err := authSvc.Login(context.Background(), dto.LoginRequest{
		Username: "nobody", Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginRejectsSuspendedTenant(t *testing.T) {
	repos := newTestRepos()
	authSvc, userSvc := newAuthFixture(repos)
	ctx := context.Background()

	tenantSvc := newTenantSvc(repos)
	tenant, err := tenantSvc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "Grace Chapel", Subdomain: "grace", PlanTier: "STARTER",
	})
	require.NoError(t, err)
	seedAccount(t, userSvc, tenant.TenantID, "kofi", "correct-horse-battery")

	_, err = tenantSvc.ChangeTenantStatus(ctx, tenant.TenantID, "owner", domain.TenantSuspended)
	require.NoError(t, err)

	_, err = authSvc.Login(ctx, dto.LoginRequest{Username: "kofi", Password: "correct-horse-battery"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRefreshRotatesToken(t *testing.T) {
	authSvc, userSvc := newAuthFixture(newTestRepos())
	user := seedAccount(t, userSvc, "", "ama", "correct-horse-battery")
	ctx := context.Background()

	login, err := authSvc.Login(ctx, dto.LoginRequest{Username: "ama", Password: "correct-horse-battery"})
	require.NoError(t, err)

	refreshed, err := authSvc.Refresh(ctx, dto.RefreshRequest{
		UserID: user.UserID, RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The rotated-out token no longer validates.
	_, err = authSvc.Refresh(ctx, dto.RefreshRequest{
		UserID: user.UserID, RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	authSvc, userSvc := newAuthFixture(newTestRepos())
	user := seedAccount(t, userSvc, "", "ama", "correct-horse-battery")
	ctx := context.Background()

	login, err := authSvc.Login(ctx, dto.LoginRequest{Username: "ama", Password: "correct-horse-battery"})
	require.NoError(t, err)

	// Force the stored expiry into the past, keeping the same hash.
	stored, err := userSvc.GetUserByID(ctx, user.UserID)
	require.NoError(t, err)
	require.NoError(t, userSvc.SetRefreshToken(ctx, user.UserID, stored.RefreshTokenHash, time.Now().Add(-time.Minute)))

	_, err = authSvc.Refresh(ctx, dto.RefreshRequest{
		UserID: user.UserID, RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
}

func TestLogoutClearsRefreshToken(t *testing.T) {
	authSvc, userSvc := newAuthFixture(newTestRepos())
	user := seedAccount(t, userSvc, "", "ama", "correct-horse-battery")
	ctx := context.Background()

	login, err := authSvc.Login(ctx, dto.LoginRequest{Username: "ama", Password: "correct-horse-battery"})
	require.NoError(t, err)
	require.NoError(t, authSvc.Logout(ctx, user.UserID))

	_, err = authSvc.Refresh(ctx, dto.RefreshRequest{
		UserID: user.UserID, RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
