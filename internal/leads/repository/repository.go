package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("lead not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// Lead is the persisted lead row.
type Lead struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Company   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateLeadParams carries the fields for a new lead.
type CreateLeadParams struct {
	Name    string
	Email   string
	Company string
	Status  string
}

// UpdateLeadParams carries the replacement fields for an existing lead.
type UpdateLeadParams struct {
	Name    string
	Email   string
	Company string
	Status  string
}

// Query constants are exported to package scope so tests can assert on their
// shape without a live database.
const (
	createLeadQuery = `
		INSERT INTO leads (name, email, company, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, company, status, created_at, updated_at
	`

	getLeadByIDQuery = `
		SELECT id, name, email, company, status, created_at, updated_at
		FROM leads WHERE id = $1
	`

	listLeadsQuery = `
		SELECT id, name, email, company, status, created_at, updated_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	countLeadsQuery = `SELECT COUNT(*) FROM leads`

	updateLeadQuery = `
		UPDATE leads
		SET name = $2, email = $3, company = $4, status = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, email, company, status, created_at, updated_at
	`

	deleteLeadQuery = `DELETE FROM leads WHERE id = $1`
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, createLeadQuery,
		params.Name, params.Email, params.Company, params.Status,
	).Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.Status,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return Lead{}, ErrDuplicateEmail
	}
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, getLeadByIDQuery, id).Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.Status,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

// List returns leads newest first. A non-positive limit returns all rows.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Lead, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, listLeadsQuery, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.Status,
			&lead.CreatedAt, &lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return leads, nil
}

// Count returns the total number of leads.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, countLeadsQuery).Scan(&total)
	return total, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, params UpdateLeadParams) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, updateLeadQuery,
		id, params.Name, params.Email, params.Company, params.Status,
	).Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.Status,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if isUniqueViolation(err) {
		return Lead{}, ErrDuplicateEmail
	}
	return lead, err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteLeadQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
