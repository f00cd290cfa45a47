package performance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Store struct {
	DB *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) EmployeeName(ctx context.Context, employeeID int64) (string, string, error) {
	var first, last string
	err := s.DB.QueryRowContext(ctx,
		"SELECT first_name, last_name FROM employees WHERE id = $1", employeeID).Scan(&first, &last)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrEmployeeNotFound
	}
	if err != nil {
		return "", "", err
	}
	return first, last, nil
}

// RecordReview verifies the employee and inserts the review in one
// transaction, so the insert can never land after a stale existence check.
func (s *Store) RecordReview(ctx context.Context, employeeID int64, reviewDate string, rating int, comments string) (int64, error) {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM employees WHERE id = $1", employeeID).Scan(&count); err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrEmployeeNotFound
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `
    INSERT INTO performance_reviews (employee_id, review_date, rating, comments)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, employeeID, reviewDate, rating, comments).Scan(&id); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) ListReviews(ctx context.Context, employeeID int64) ([]Review, error) {
	var reviews []Review
	err := s.DB.SelectContext(ctx, &reviews, `
    SELECT id, employee_id, review_date, rating, comments
    FROM performance_reviews
    WHERE employee_id = $1
    ORDER BY review_date DESC, id DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
