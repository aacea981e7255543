package memory

import (
	"context"
	"sort"
	"time"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/utils/pagination"
)

// TransactionRepository implements the ledger ports over a memstore collection.
type TransactionRepository struct {
	stores *Stores
}

var _ portrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new in-memory ledger repository.
func NewTransactionRepository(s *Stores) *TransactionRepository {
	return &TransactionRepository{stores: s}
}

// SaveTransaction persists a new transaction.
func (r *TransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	if _, ok := r.stores.Transactions.Add(txn); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

// FindTransactionByID retrieves a transaction by id within the scope.
func (r *TransactionRepository) FindTransactionByID(_ context.Context, scope domain.TenantScope, transactionID string) (*domain.Transaction, error) {
	txn, ok := r.stores.Transactions.Get(transactionID)
	if !ok || !scope.Matches(txn.TenantID) {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

// FindTransactionByReference retrieves a transaction by reference code.
func (r *TransactionRepository) FindTransactionByReference(_ context.Context, scope domain.TenantScope, referenceCode string) (*domain.Transaction, error) {
	matched := r.stores.Transactions.Filter(func(t domain.Transaction) bool {
		return scope.Matches(t.TenantID) && t.ReferenceCode == referenceCode
	})
	if len(matched) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &matched[0], nil
}

// ListTransactions retrieves a page of transactions ordered by date descending.
func (r *TransactionRepository) ListTransactions(_ context.Context, scope domain.TenantScope, filter portrepo.TransactionListFilter) ([]domain.Transaction, string, error) {
	matched := r.stores.Transactions.Filter(func(t domain.Transaction) bool {
		if !scope.Matches(t.TenantID) {
			return false
		}
		if filter.From != nil && t.Date.Before(*filter.From) {
			return false
		}
		if filter.To != nil && t.Date.After(*filter.To) {
			return false
		}
		if filter.Type != nil && t.Type != *filter.Type {
			return false
		}
		if filter.Category != nil && t.Category != *filter.Category {
			return false
		}
		if filter.MemberID != nil && (t.MemberID == nil || *t.MemberID != *filter.MemberID) {
			return false
		}
		return true
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	if filter.NextToken != "" {
		cursor, err := pagination.DecodeDateBasedToken(filter.NextToken)
		if err != nil {
			return nil, "", apperrors.ErrValidation
		}
		matched = after(matched, func(t domain.Transaction) bool { return t.Date.Before(cursor) })
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	nextToken := ""
	if len(matched) > limit {
		matched = matched[:limit]
		nextToken = pagination.EncodeDateBasedToken(matched[limit-1].Date)
	}
	return matched, nextToken, nil
}

// ListAllTransactions retrieves the full scoped ledger within the window.
func (r *TransactionRepository) ListAllTransactions(_ context.Context, scope domain.TenantScope, from, to *time.Time) ([]domain.Transaction, error) {
	return r.stores.Transactions.Filter(func(t domain.Transaction) bool {
		if !scope.Matches(t.TenantID) {
			return false
		}
		if from != nil && t.Date.Before(*from) {
			return false
		}
		if to != nil && t.Date.After(*to) {
			return false
		}
		return true
	}), nil
}

// UpdateTransaction replaces a stored transaction.
func (r *TransactionRepository) UpdateTransaction(_ context.Context, txn domain.Transaction) error {
	if !r.stores.Transactions.Replace(txn.TransactionID, txn) {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction by id within the scope.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, scope domain.TenantScope, transactionID string) error {
	if _, err := r.FindTransactionByID(ctx, scope, transactionID); err != nil {
		return err
	}
	if !r.stores.Transactions.Remove(transactionID) {
		return apperrors.ErrNotFound
	}
	return nil
}
