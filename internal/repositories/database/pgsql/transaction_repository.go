package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/models"
	"github.com/imani-cms/imani_backend/internal/utils/mapping"
	"github.com/imani-cms/imani_backend/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

var _ portrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func newPgxTransactionRepository(db *pgxpool.Pool) portrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

const transactionColumns = `transaction_id, tenant_id, member_id, amount, type, category,
	payment_method, date, reference_code, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID, &m.TenantID, &m.MemberID, &m.Amount, &m.Type, &m.Category,
		&m.PaymentMethod, &m.Date, &m.ReferenceCode, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.TransactionID, m.TenantID, m.MemberID, m.Amount, m.Type, m.Category,
		m.PaymentMethod, m.Date, m.ReferenceCode, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, scope domain.TenantScope, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`
	args := []any{transactionID}
	if !scope.IsAll() {
		query += ` AND tenant_id = $2`
		args = append(args, string(scope))
	}
	m, err := scanTransaction(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactionByReference(ctx context.Context, scope domain.TenantScope, referenceCode string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference_code = $1`
	args := []any{referenceCode}
	if !scope.IsAll() {
		query += ` AND tenant_id = $2`
		args = append(args, string(scope))
	}
	m, err := scanTransaction(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by reference %s: %w", referenceCode, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, scope domain.TenantScope, filter portrepo.TransactionListFilter) ([]domain.Transaction, string, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if !scope.IsAll() {
		query += ` AND tenant_id = ` + arg(string(scope))
	}
	if filter.From != nil {
		query += ` AND date >= ` + arg(*filter.From)
	}
	if filter.To != nil {
		query += ` AND date <= ` + arg(*filter.To)
	}
	if filter.Type != nil {
		query += ` AND type = ` + arg(string(*filter.Type))
	}
	if filter.Category != nil {
		query += ` AND category = ` + arg(string(*filter.Category))
	}
	if filter.MemberID != nil {
		query += ` AND member_id = ` + arg(*filter.MemberID)
	}
	if filter.NextToken != "" {
		cursor, err := pagination.DecodeDateBasedToken(filter.NextToken)
		if err != nil {
			return nil, "", apperrors.ErrValidation
		}
		query += ` AND date < ` + arg(cursor)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query += ` ORDER BY date DESC LIMIT ` + arg(limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed reading transaction rows: %w", err)
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		nextToken = pagination.EncodeDateBasedToken(ms[limit-1].Date)
	}
	return mapping.ToDomainTransactionSlice(ms), nextToken, nil
}

func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context, scope domain.TenantScope, from, to *time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if !scope.IsAll() {
		query += ` AND tenant_id = ` + arg(string(scope))
	}
	if from != nil {
		query += ` AND date >= ` + arg(*from)
	}
	if to != nil {
		query += ` AND date <= ` + arg(*to)
	}
	query += ` ORDER BY date`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list all transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions SET
			member_id = $2, amount = $3, type = $4, category = $5,
			payment_method = $6, date = $7, notes = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE transaction_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.TransactionID, m.MemberID, m.Amount, m.Type, m.Category,
		m.PaymentMethod, m.Date, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, scope domain.TenantScope, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1`
	args := []any{transactionID}
	if !scope.IsAll() {
		query += ` AND tenant_id = $2`
		args = append(args, string(scope))
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
