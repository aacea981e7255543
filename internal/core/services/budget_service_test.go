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

func newBudgetSvc(repos *portrepo.RepositoryProvider) portssvc.BudgetSvcFacade {
	return services.NewBudgetService(repos.BudgetRepo, services.NewAuditService(repos.AuditRepo))
}

func TestCreateBudgetRequiresExpenseCategory(t *testing.T) {
	svc := newBudgetSvc(newTestRepos())
	ctx := context.Background()

	_, err := svc.CreateBudget(ctx, "t1", "treasurer", dto.CreateBudgetRequest{
		Name: "Tithe budget", Category: "TITHE", Amount: decimal.NewFromInt(500),
		PeriodStart: time.Now(), PeriodEnd: time.Now().AddDate(0, 1, 0),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	budget, err := svc.CreateBudget(ctx, "t1", "treasurer", dto.CreateBudgetRequest{
		Name: "Utilities", Category: "UTILITIES", Amount: decimal.NewFromInt(500),
		PeriodStart: time.Now(), PeriodEnd: time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TxnUtilities, budget.Category)
}

func TestCreateBudgetRejectsInvertedPeriod(t *testing.T) {
	svc := newBudgetSvc(newTestRepos())

	_, err := svc.CreateBudget(context.Background(), "t1", "treasurer", dto.CreateBudgetRequest{
		Name: "Backwards", Category: "UTILITIES", Amount: decimal.NewFromInt(100),
		PeriodStart: time.Now(), PeriodEnd: time.Now().AddDate(0, -1, 0),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecurringItemsEnforceCategory(t *testing.T) {
	svc := newBudgetSvc(newTestRepos())
	ctx := context.Background()

	_, err := svc.CreateRecurringExpense(ctx, "t1", "treasurer", dto.CreateRecurringExpenseRequest{
		Name: "Rent", Type: "TITHE", Amount: decimal.NewFromInt(800), DayOfMonth: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateRecurringExpense(ctx, "t1", "treasurer", dto.CreateRecurringExpenseRequest{
		Name: "Rent", Type: "EXPENSE", Amount: decimal.NewFromInt(800), DayOfMonth: 1,
	})
	require.NoError(t, err)

	_, err = svc.CreateRecurringContribution(ctx, "t1", "treasurer", dto.CreateRecurringContributionRequest{
		MemberID: "m1", Type: "SALARY", Amount: decimal.NewFromInt(50), Frequency: "MONTHLY",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	pledge, err := svc.CreateRecurringContribution(ctx, "t1", "treasurer", dto.CreateRecurringContributionRequest{
		MemberID: "m1", Type: "PLEDGE", Amount: decimal.NewFromInt(50), Frequency: "WEEKLY",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyWeekly, pledge.Frequency)
}

func TestRecurringExpenseDayOfMonthBounds(t *testing.T) {
	svc := newBudgetSvc(newTestRepos())

	_, err := svc.CreateRecurringExpense(context.Background(), "t1", "treasurer", dto.CreateRecurringExpenseRequest{
		Name: "Rent", Type: "EXPENSE", Amount: decimal.NewFromInt(800), DayOfMonth: 31,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
