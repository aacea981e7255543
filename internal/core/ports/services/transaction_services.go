package services

import (
	"context"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/dto"
)

// TransactionSvcFacade defines the ledger operations.
type TransactionSvcFacade interface {
	// RecordTransaction appends a ledger entry. The entry's category is
	// derived from its type; an explicit category that disagrees is rejected.
	RecordTransaction(ctx context.Context, tenantID, actorUserID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a ledger entry.
	GetTransactionByID(ctx context.Context, scope domain.TenantScope, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of ledger entries matching the filter.
	ListTransactions(ctx context.Context, scope domain.TenantScope, params dto.ListTransactionsParams) ([]domain.Transaction, string, error)

	// UpdateTransaction applies a partial update, re-deriving the category
	// when the type changes. Returns ErrNotFound if absent.
	UpdateTransaction(ctx context.Context, scope domain.TenantScope, transactionID, actorUserID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a ledger entry. Returns ErrNotFound if absent.
	DeleteTransaction(ctx context.Context, scope domain.TenantScope, transactionID, actorUserID string) error
}
