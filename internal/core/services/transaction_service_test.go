package services_test

import (
	"context"
	"testing"

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

func newTxnSvc(repos *portrepo.RepositoryProvider) portssvc.TransactionSvcFacade {
	return services.NewTransactionService(repos.TransactionRepo, services.NewAuditService(repos.AuditRepo))
}

func TestRecordTransactionDerivesCategory(t *testing.T) {
	svc := newTxnSvc(newTestRepos())

	txn, err := svc.RecordTransaction(context.Background(), "t1", "treasurer", dto.CreateTransactionRequest{
		Amount:        decimal.NewFromInt(200),
		Type:          "TITHE",
		PaymentMethod: "CASH",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryIncome, txn.Category)
	assert.NotEmpty(t, txn.ReferenceCode)

	txn, err = svc.RecordTransaction(context.Background(), "t1", "treasurer", dto.CreateTransactionRequest{
		Amount:        decimal.NewFromInt(50),
		Type:          "UTILITIES",
		PaymentMethod: "BANK_TRANSFER",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryExpense, txn.Category)
}

func TestRecordTransactionRejectsCategoryMismatch(t *testing.T) {
	svc := newTxnSvc(newTestRepos())

	_, err := svc.RecordTransaction(context.Background(), "t1", "treasurer", dto.CreateTransactionRequest{
		Amount:        decimal.NewFromInt(200),
		Type:          "TITHE",
		Category:      "EXPENSE",
		PaymentMethod: "CASH",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordTransactionRejectsNegativeAmount(t *testing.T) {
	svc := newTxnSvc(newTestRepos())

	_, err := svc.RecordTransaction(context.Background(), "t1", "treasurer", dto.CreateTransactionRequest{
		Amount:        decimal.NewFromInt(-5),
		Type:          "OFFERING",
		PaymentMethod: "CASH",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordTransactionRejectsDuplicateReference(t *testing.T) {
	svc := newTxnSvc(newTestRepos())
	ctx := context.Background()

	req := dto.CreateTransactionRequest{
		Amount:        decimal.NewFromInt(100),
		Type:          "DONATION",
		PaymentMethod: "MOBILE_MONEY",
		ReferenceCode: "TXN-20260110-AB12CD",
	}
	_, err := svc.RecordTransaction(ctx, "t1", "treasurer", req)
	require.NoError(t, err)

	_, err = svc.RecordTransaction(ctx, "t2", "treasurer", req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestUpdateTransactionRederivesCategory(t *testing.T) {
	svc := newTxnSvc(newTestRepos())
	ctx := context.Background()

	txn, err := svc.RecordTransaction(ctx, "t1", "treasurer", dto.CreateTransactionRequest{
		Amount:        decimal.NewFromInt(300),
		Type:          "TITHE",
		PaymentMethod: "CASH",
	})
	require.NoError(t, err)

	newType := "SALARY"
	updated, err := svc.UpdateTransaction(ctx, domain.ScopeTenant("t1"), txn.TransactionID, "treasurer", dto.UpdateTransactionRequest{
		Type: &newType,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TxnSalary, updated.Type)
	assert.Equal(t, domain.CategoryExpense, updated.Category)
}
