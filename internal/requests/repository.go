package requests

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accesshub/accesshub/internal/auth"
	"github.com/accesshub/accesshub/internal/shared"
)

// Repository defines persistence operations for the request ledger.
type Repository interface {
	Create(ctx context.Context, req AccessRequest) (*AccessRequest, error)
	GetDetail(ctx context.Context, id int64) (*Detail, error)
	ListByUser(ctx context.Context, userID int64) ([]Detail, error)
	ListByStatus(ctx context.Context, status Status) ([]Detail, error)
	ListAll(ctx context.Context) ([]Detail, error)
	// Transition performs the conditional Pending→target update. It reports
	// false when the request was not Pending, without touching the row.
	Transition(ctx context.Context, id int64, target Status) (bool, error)
}

const detailColumns = `
	r.id, r.user_id, r.software_id, r.access_type, r.reason, r.status, r.created_at, r.updated_at,
	s.id, s.name, s.description, s.access_levels, s.created_at, s.updated_at,
	u.id, u.username, u.role`

const detailFrom = `
	FROM access_requests r
	JOIN software s ON s.id = r.software_id
	JOIN users u ON u.id = r.user_id`

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Create inserts a new Pending request.
func (r *PGRepository) Create(ctx context.Context, req AccessRequest) (*AccessRequest, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO access_requests (user_id, software_id, access_type, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		req.UserID, req.SoftwareID, string(req.AccessType), req.Reason, string(req.Status))
	if err := row.Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetDetail fetches a request joined with its software and owning user.
func (r *PGRepository) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+detailColumns+detailFrom+` WHERE r.id = $1`, id)
	detail, err := scanDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return detail, nil
}

// ListByUser returns the requests owned by userID, newest first. The owner is
// asking about themselves, so the joined user is omitted.
func (r *PGRepository) ListByUser(ctx context.Context, userID int64) ([]Detail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+detailColumns+detailFrom+` WHERE r.user_id = $1 ORDER BY r.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	details, err := scanDetails(rows)
	if err != nil {
		return nil, err
	}
	for i := range details {
		details[i].User = nil
	}
	return details, nil
}

// ListByStatus returns all requests in the given status, oldest first, so the
// earliest submission is reviewed first.
func (r *PGRepository) ListByStatus(ctx context.Context, status Status) ([]Detail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+detailColumns+detailFrom+` WHERE r.status = $1 ORDER BY r.created_at ASC`, string(status))
	if err != nil {
		return nil, err
	}
	return scanDetails(rows)
}

// ListAll returns every request regardless of status, newest first.
func (r *PGRepository) ListAll(ctx context.Context) ([]Detail, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+detailColumns+detailFrom+` ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanDetails(rows)
}

// Transition executes the single conditional update that serializes
// concurrent approvals: only the first Pending→terminal transition matches
// the WHERE clause, any later attempt affects zero rows.
func (r *PGRepository) Transition(ctx context.Context, id int64, target Status) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE access_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'Pending'`,
		id, string(target))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanDetail(row pgx.Row) (*Detail, error) {
	var d Detail
	var accessType, status, role string
	var user auth.View
	err := row.Scan(
		&d.ID, &d.UserID, &d.SoftwareID, &accessType, &d.Reason, &status, &d.CreatedAt, &d.UpdatedAt,
		&d.Software.ID, &d.Software.Name, &d.Software.Description, &d.Software.AccessLevels,
		&d.Software.CreatedAt, &d.Software.UpdatedAt,
		&user.ID, &user.Username, &role,
	)
	if err != nil {
		return nil, err
	}
	d.AccessType = AccessType(accessType)
	d.Status = Status(status)
	user.Role = shared.Role(role)
	d.User = &user
	return &d, nil
}

func scanDetails(rows pgx.Rows) ([]Detail, error) {
	defer rows.Close()
	var details []Detail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

var _ Repository = (*PGRepository)(nil)
