package repositories

import (
	"context"
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// TransactionListFilter narrows and pages a ledger listing.
type TransactionListFilter struct {
	From      *time.Time
	To        *time.Time
	Type      *domain.TransactionType
	Category  *domain.TransactionCategory
	MemberID  *string
	Limit     int
	NextToken string
}

// TransactionReader defines read operations over the ledger.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by id.
	FindTransactionByID(ctx context.Context, scope domain.TenantScope, transactionID string) (*domain.Transaction, error)

	// FindTransactionByReference retrieves a transaction by reference code.
	FindTransactionByReference(ctx context.Context, scope domain.TenantScope, referenceCode string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions plus a next-page cursor.
	ListTransactions(ctx context.Context, scope domain.TenantScope, filter TransactionListFilter) ([]domain.Transaction, string, error)

	// ListAllTransactions retrieves the full scoped ledger within an optional
	// date window, for exports and aggregates.
	ListAllTransactions(ctx context.Context, scope domain.TenantScope, from, to *time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations over the ledger.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces a stored transaction. Returns ErrNotFound if absent.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction by id. Returns ErrNotFound if absent.
	DeleteTransaction(ctx context.Context, scope domain.TenantScope, transactionID string) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
