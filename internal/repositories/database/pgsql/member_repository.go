// Package pgsql implements the repository ports for the Postgres-backed
// collections. Only the core entities (tenants, users, members, transactions,
// events) have tables; the remaining repositories stay in memory.
package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/models"
	"github.com/imani-cms/imani_backend/internal/utils/mapping"
	"github.com/imani-cms/imani_backend/internal/utils/pagination"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type PgxMemberRepository struct {
	db *pgxpool.Pool
}

var _ portrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func newPgxMemberRepository(db *pgxpool.Pool) portrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{db: db}
}

const memberColumns = `member_id, tenant_id, first_name, last_name, email, phone, location,
	groups, status, membership_type, join_date,
	created_at, created_by, last_updated_at, last_updated_by`

func scanMember(row pgx.Row) (models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID, &m.TenantID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Location,
		&m.Groups, &m.Status, &m.MembershipType, &m.JoinDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		m.MemberID, m.TenantID, m.FirstName, m.LastName, m.Email, m.Phone, m.Location,
		m.Groups, m.Status, m.MembershipType, m.JoinDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, scope domain.TenantScope, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1`
	args := []any{memberID}
	if !scope.IsAll() {
		query += ` AND tenant_id = $2`
		args = append(args, string(scope))
	}
	m, err := scanMember(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	member := mapping.ToDomainMember(m)
	return &member, nil
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, scope domain.TenantScope, filter portrepo.MemberListFilter) ([]domain.Member, string, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if !scope.IsAll() {
		query += ` AND tenant_id = ` + arg(string(scope))
	}
	if filter.Status != nil {
		query += ` AND status = ` + arg(string(*filter.Status))
	}
	if filter.Group != "" {
		query += ` AND ` + arg(filter.Group) + ` ILIKE ANY(groups)`
	}
	if filter.NextToken != "" {
		cursor, err := pagination.DecodeDateBasedToken(filter.NextToken)
		if err != nil {
			return nil, "", apperrors.ErrValidation
		}
		query += ` AND created_at < ` + arg(cursor)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to learn whether another page exists.
	query += ` ORDER BY created_at DESC LIMIT ` + arg(limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var ms []models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan member row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed reading member rows: %w", err)
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		nextToken = pagination.EncodeDateBasedToken(ms[limit-1].CreatedAt)
	}
	return mapping.ToDomainMemberSlice(ms), nextToken, nil
}

func (r *PgxMemberRepository) ListAllMembers(ctx context.Context, scope domain.TenantScope) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members`
	var args []any
	if !scope.IsAll() {
		query += ` WHERE tenant_id = $1`
		args = append(args, string(scope))
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list all members: %w", err)
	}
	defer rows.Close()

	var ms []models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading member rows: %w", err)
	}
	return mapping.ToDomainMemberSlice(ms), nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		UPDATE members SET
			first_name = $2, last_name = $3, email = $4, phone = $5, location = $6,
			groups = $7, status = $8, membership_type = $9, join_date = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE member_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.MemberID, m.FirstName, m.LastName, m.Email, m.Phone, m.Location,
		m.Groups, m.Status, m.MembershipType, m.JoinDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, scope domain.TenantScope, memberID string) error {
	query := `DELETE FROM members WHERE member_id = $1`
	args := []any{memberID}
	if !scope.IsAll() {
		query += ` AND tenant_id = $2`
		args = append(args, string(scope))
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
