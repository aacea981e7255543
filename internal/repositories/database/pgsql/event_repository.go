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

type PgxEventRepository struct {
	db *pgxpool.Pool
}

var _ portrepo.EventRepository = (*PgxEventRepository)(nil)

func newPgxEventRepository(db *pgxpool.Pool) portrepo.EventRepository {
	return &PgxEventRepository{db: db}
}

const eventColumns = `event_id, tenant_id, title, type, starts_at, ends_at, location,
	description, attendance,
	created_at, created_by, last_updated_at, last_updated_by`

func scanEvent(row pgx.Row) (models.ChurchEvent, error) {
	var m models.ChurchEvent
	err := row.Scan(
		&m.EventID, &m.TenantID, &m.Title, &m.Type, &m.StartsAt, &m.EndsAt, &m.Location,
		&m.Description, &m.Attendance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.ChurchEvent) error {
	m := mapping.ToModelEvent(event)
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.EventID, m.TenantID, m.Title, m.Type, m.StartsAt, m.EndsAt, m.Location,
		m.Description, m.Attendance,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, scope domain.TenantScope, eventID string) (*domain.ChurchEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1`
	args := []any{eventID}
	if !scope.IsAll() {
		query += ` AND tenant_id = $2`
		args = append(args, string(scope))
	}
	m, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %s: %w", eventID, err)
	}
	event := mapping.ToDomainEvent(m)
	return &event, nil
}

func (r *PgxEventRepository) ListEvents(ctx context.Context, scope domain.TenantScope) ([]domain.ChurchEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	var args []any
	if !scope.IsAll() {
		query += ` WHERE tenant_id = $1`
		args = append(args, string(scope))
	}
	query += ` ORDER BY starts_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var ms []models.ChurchEvent
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading event rows: %w", err)
	}
	return mapping.ToDomainEventSlice(ms), nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.ChurchEvent) error {
	m := mapping.ToModelEvent(event)
	query := `
		UPDATE events SET
			title = $2, type = $3, starts_at = $4, ends_at = $5, location = $6,
			description = $7, attendance = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE event_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.EventID, m.Title, m.Type, m.StartsAt, m.EndsAt, m.Location,
		m.Description, m.Attendance,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, scope domain.TenantScope, eventID string) error {
	query := `DELETE FROM events WHERE event_id = $1`
	args := []any{eventID}
	if !scope.IsAll() {
		query += ` AND tenant_id = $2`
		args = append(args, string(scope))
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
