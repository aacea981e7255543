package services_test

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
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

func newTenantSvc(repos *portrepo.RepositoryProvider) portssvc.TenantSvcFacade {
	return services.NewTenantService(repos.TenantRepo, services.NewAuditService(repos.AuditRepo))
}

func TestProvisionTenantPricesPlan(t *testing.T) {
	svc := newTenantSvc(newTestRepos())

	tenant, err := svc.ProvisionTenant(context.Background(), "owner", dto.ProvisionTenantRequest{
		Name: "Grace Chapel", Subdomain: "grace", PlanTier: "GROWTH",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TenantActive, tenant.Status)
	assert.True(t, tenant.MRR.Equal(decimal.NewFromInt(79)))
	assert.Nil(t, tenant.TrialEndsAt)
}

func TestProvisionTrialTenantAccruesNoMRR(t *testing.T) {
	svc := newTenantSvc(newTestRepos())

	tenant, err := svc.ProvisionTenant(context.Background(), "owner", dto.ProvisionTenantRequest{
		Name: "Hope Parish", Subdomain: "hope", PlanTier: "STARTER", Trial: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TenantTrialing, tenant.Status)
	assert.True(t, tenant.MRR.IsZero())
	require.NotNil(t, tenant.TrialEndsAt)
	assert.True(t, tenant.TrialEndsAt.After(time.Now()))
}

func TestProvisionTenantRejectsTakenSubdomain(t *testing.T) {
	svc := newTenantSvc(newTestRepos())
	ctx := context.Background()

	_, err := svc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "Grace Chapel", Subdomain: "grace", PlanTier: "STARTER",
	})
	require.NoError(t, err)

	_, err = svc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "Another Grace", Subdomain: "grace", PlanTier: "GROWTH",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestProvisionTenantRejectsUnknownTier(t *testing.T) {
	svc := newTenantSvc(newTestRepos())

	_, err := svc.ProvisionTenant(context.Background(), "owner", dto.ProvisionTenantRequest{
		Name: "Grace Chapel", Subdomain: "grace", PlanTier: "PLATINUM",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestChangeTenantStatusStampsPastDue(t *testing.T) {
	svc := newTenantSvc(newTestRepos())
	ctx := context.Background()

	tenant, err := svc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "Grace Chapel", Subdomain: "grace", PlanTier: "STARTER",
	})
	require.NoError(t, err)

	updated, err := svc.ChangeTenantStatus(ctx, tenant.TenantID, "owner", domain.TenantPastDue)
	require.NoError(t, err)
	require.NotNil(t, updated.PastDueSince)

	// Reactivating clears the past-due marker and restores the plan price.
	updated, err = svc.ChangeTenantStatus(ctx, tenant.TenantID, "owner", domain.TenantActive)
	require.NoError(t, err)
	assert.Nil(t, updated.PastDueSince)
	assert.True(t, updated.MRR.Equal(decimal.NewFromInt(29)))
}

func TestSuspensionZeroesMRR(t *testing.T) {
	svc := newTenantSvc(newTestRepos())
	ctx := context.Background()

	tenant, err := svc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "Grace Chapel", Subdomain: "grace", PlanTier: "ENTERPRISE",
	})
	require.NoError(t, err)

	updated, err := svc.ChangeTenantStatus(ctx, tenant.TenantID, "owner", domain.TenantSuspended)
	require.NoError(t, err)
	assert.True(t, updated.MRR.IsZero())
}

func TestBillingCycleTransitions(t *testing.T) {
	repos := newTestRepos()
	svc := newTenantSvc(repos)
	ctx := context.Background()

	active, err := svc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "Active Parish", Subdomain: "active", PlanTier: "GROWTH",
	})
	require.NoError(t, err)

	trial, err := svc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "Trial Parish", Subdomain: "trial", PlanTier: "STARTER", Trial: true,
	})
	require.NoError(t, err)

	overdue, err := svc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "Overdue Parish", Subdomain: "overdue", PlanTier: "STARTER",
	})
	require.NoError(t, err)

	// Backdate the trial end and the past-due marker past the grace period.
	trialEnd := time.Now().Add(-24 * time.Hour)
	trial.TrialEndsAt = &trialEnd
	require.NoError(t, repos.TenantRepo.UpdateTenant(ctx, *trial))

	pastDueSince := time.Now().Add(-40 * 24 * time.Hour)
	overdue.Status = domain.TenantPastDue
	overdue.PastDueSince = &pastDueSince
	require.NoError(t, repos.TenantRepo.UpdateTenant(ctx, *overdue))

	result, err := svc.RunBillingCycle(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, 2, result.TenantsBilled)
	assert.Equal(t, 1, result.TrialsExpired)
	assert.Equal(t, 1, result.TenantsSuspended)

	expired, err := svc.GetTenantByID(ctx, trial.TenantID)
	require.NoError(t, err)
	assert.Equal(t, domain.TenantActive, expired.Status)
	assert.True(t, expired.MRR.Equal(decimal.NewFromInt(29)))

	suspended, err := svc.GetTenantByID(ctx, overdue.TenantID)
	require.NoError(t, err)
	assert.Equal(t, domain.TenantSuspended, suspended.Status)
	assert.True(t, suspended.MRR.IsZero())

	stillActive, err := svc.GetTenantByID(ctx, active.TenantID)
	require.NoError(t, err)
	assert.Equal(t, domain.TenantActive, stillActive.Status)
}

func TestBillingSummaryAggregatesMRR(t *testing.T) {
	svc := newTenantSvc(newTestRepos())
	ctx := context.Background()

	_, err := svc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "A", Subdomain: "a", PlanTier: "GROWTH",
	})
	require.NoError(t, err)
	_, err = svc.ProvisionTenant(ctx, "owner", dto.ProvisionTenantRequest{
		Name: "B", Subdomain: "b", PlanTier: "STARTER",
	})
	require.NoError(t, err)

	summary, err := svc.BillingSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TenantCount)
	assert.True(t, summary.TotalMRR.Equal(decimal.NewFromInt(108)))
}
