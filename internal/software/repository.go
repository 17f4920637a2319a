package software

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accesshub/accesshub/internal/shared"
)

// Repository defines persistence operations for the catalog.
type Repository interface {
	Create(ctx context.Context, sw Software) (*Software, error)
	Get(ctx context.Context, id int64) (*Software, error)
	List(ctx context.Context) ([]Software, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Create inserts a new catalog entry.
func (r *PGRepository) Create(ctx context.Context, sw Software) (*Software, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO software (name, description, access_levels)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		sw.Name, sw.Description, sw.AccessLevels)
	if err := row.Scan(&sw.ID, &sw.CreatedAt, &sw.UpdatedAt); err != nil {
		return nil, err
	}
	return &sw, nil
}

// Get fetches a catalog entry by id.
func (r *PGRepository) Get(ctx context.Context, id int64) (*Software, error) {
	var sw Software
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, access_levels, created_at, updated_at
		FROM software WHERE id = $1`, id).
		Scan(&sw.ID, &sw.Name, &sw.Description, &sw.AccessLevels, &sw.CreatedAt, &sw.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sw, nil
}

// List returns the whole catalog in insertion order.
func (r *PGRepository) List(ctx context.Context) ([]Software, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, access_levels, created_at, updated_at
		FROM software ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var catalog []Software
	for rows.Next() {
		var sw Software
		if err := rows.Scan(&sw.ID, &sw.Name, &sw.Description, &sw.AccessLevels, &sw.CreatedAt, &sw.UpdatedAt); err != nil {
			return nil, err
		}
		catalog = append(catalog, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog, nil
}

var _ Repository = (*PGRepository)(nil)
