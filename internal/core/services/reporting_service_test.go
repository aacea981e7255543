package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// stubAISvc captures the finance context handed to the collaborator.
type stubAISvc struct {
	lastContext string
	insight     *dto.FinancialInsightResponse
}

func (s *stubAISvc) SermonOutline(ctx context.Context, req dto.SermonOutlineRequest) (string, error) {
	return "", nil
}

func (s *stubAISvc) DailyVerse(ctx context.Context) (string, error) {
	return "", nil
}

func (s *stubAISvc) LocationScout(ctx context.Context, req dto.LocationScoutRequest) (string, error) {
	return "", nil
}

func (s *stubAISvc) FinancialInsight(ctx context.Context, financeContext string) (*dto.FinancialInsightResponse, error) {
	s.lastContext = financeContext
	return s.insight, nil
}

func seedLedger(t *testing.T, repos *portrepo.RepositoryProvider) {
	t.Helper()
	svc := newTxnSvc(repos)
	ctx := context.Background()

	_, err := svc.RecordTransaction(ctx, "t1", "treasurer", dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(2000), Type: "TITHE", PaymentMethod: "CASH",
	})
	require.NoError(t, err)
	_, err = svc.RecordTransaction(ctx, "t1", "treasurer", dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(500), Type: "UTILITIES", PaymentMethod: "BANK_TRANSFER",
	})
	require.NoError(t, err)
}

func TestFinanceReportTotals(t *testing.T) {
	repos := newTestRepos()
	seedLedger(t, repos)
	svc := services.NewReportingService(repos.TransactionRepo, repos.MemberRepo, &stubAISvc{})

	report, err := svc.FinanceReport(context.Background(), domain.ScopeTenant("t1"), nil, nil)
	require.NoError(t, err)
	assert.True(t, report.Summary.TotalIncome.Equal(decimal.NewFromInt(2000)))
	assert.True(t, report.Summary.TotalExpense.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.Summary.Net.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 2, report.Summary.Count)
	assert.NotEmpty(t, report.Trend)
}

func TestDemographicsCountsActiveRoll(t *testing.T) {
	repos := newTestRepos()
	memberSvc := newMemberSvc(repos)
	ctx := context.Background()

	for _, m := range []struct {
		first, status string
	}{
		{"Abena", "ACTIVE"},
		{"Kwame", "YOUTH"},
		{"Yaw", "ARCHIVED"},
	} {
		_, err := memberSvc.CreateMember(ctx, "t1", "admin", dto.CreateMemberRequest{
			FirstName: m.first, LastName: "Test", Status: m.status, Location: "Accra",
		})
		require.NoError(t, err)
	}

	svc := services.NewReportingService(repos.TransactionRepo, repos.MemberRepo, &stubAISvc{})
	report, err := svc.Demographics(ctx, domain.ScopeTenant("t1"))
	require.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.ActiveRoll)
	assert.NotEmpty(t, report.ByStatus)
	assert.NotEmpty(t, report.ByLocation)
}

func TestFinancialInsightRendersContext(t *testing.T) {
	repos := newTestRepos()
	seedLedger(t, repos)

	stub := &stubAISvc{insight: &dto.FinancialInsightResponse{Summary: "healthy"}}
	svc := services.NewReportingService(repos.TransactionRepo, repos.MemberRepo, stub)

	insight, err := svc.FinancialInsight(context.Background(), domain.ScopeTenant("t1"))
	require.NoError(t, err)
	assert.Equal(t, "healthy", insight.Summary)
	assert.Contains(t, stub.lastContext, "Total income: 2000.00")
	assert.Contains(t, stub.lastContext, "Net: 1500.00")
}
