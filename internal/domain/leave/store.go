package leave

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Store struct {
	DB *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, employeeID int64, startDate, endDate, reason string, status Status) (int64, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, reason, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, employeeID, startDate, endDate, reason, string(status)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) ListByStatus(ctx context.Context, status Status) ([]PendingRequest, error) {
	var out []PendingRequest
	err := s.DB.SelectContext(ctx, &out, `
    SELECT l.id, e.id AS employee_id, e.first_name, e.last_name,
           l.start_date, l.end_date, l.reason
    FROM leave_requests l
    JOIN employees e ON l.employee_id = e.id
    WHERE l.status = $1
    ORDER BY l.id
  `, string(status))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateStatus(ctx context.Context, requestID int64, status Status) error {
	result, err := s.DB.ExecContext(ctx,
		"UPDATE leave_requests SET status = $1 WHERE id = $2", string(status), requestID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
