package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/models"
	"github.com/imani-cms/imani_backend/internal/utils/mapping"
)

type PgxTenantRepository struct {
	db *pgxpool.Pool
}

var _ portrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

func newPgxTenantRepository(db *pgxpool.Pool) portrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{db: db}
}

const tenantColumns = `tenant_id, name, subdomain, plan_tier, status, mrr,
	member_count, storage_used_mb, trial_ends_at, past_due_since,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTenant(row pgx.Row) (models.Tenant, error) {
	var m models.Tenant
	err := row.Scan(
		&m.TenantID, &m.Name, &m.Subdomain, &m.PlanTier, &m.Status, &m.MRR,
		&m.MemberCount, &m.StorageUsedMB, &m.TrialEndsAt, &m.PastDueSince,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.TenantID, m.Name, m.Subdomain, m.PlanTier, m.Status, m.MRR,
		m.MemberCount, m.StorageUsedMB, m.TrialEndsAt, m.PastDueSince,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save tenant: %w", err)
	}
	return nil
}

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE tenant_id = $1;`
	m, err := scanTenant(r.db.QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant by ID %s: %w", tenantID, err)
	}
	tenant := mapping.ToDomainTenant(m)
	return &tenant, nil
}

func (r *PgxTenantRepository) FindTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE lower(subdomain) = lower($1);`
	m, err := scanTenant(r.db.QueryRow(ctx, query, subdomain))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant by subdomain %s: %w", subdomain, err)
	}
	tenant := mapping.ToDomainTenant(m)
	return &tenant, nil
}

func (r *PgxTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var ms []models.Tenant
	for rows.Next() {
		m, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading tenant rows: %w", err)
	}
	return mapping.ToDomainTenantSlice(ms), nil
}

func (r *PgxTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
		UPDATE tenants SET
			name = $2, subdomain = $3, plan_tier = $4, status = $5, mrr = $6,
			member_count = $7, storage_used_mb = $8, trial_ends_at = $9, past_due_since = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE tenant_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.TenantID, m.Name, m.Subdomain, m.PlanTier, m.Status, m.MRR,
		m.MemberCount, m.StorageUsedMB, m.TrialEndsAt, m.PastDueSince,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
