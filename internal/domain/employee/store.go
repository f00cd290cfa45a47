package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Store struct {
	DB *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, emp NewEmployee) (int64, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx, `
    INSERT INTO employees (first_name, last_name, email, phone, department, job_title, salary)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Department, emp.JobTitle, emp.Salary).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) List(ctx context.Context) ([]Overview, error) {
	rows, err := s.DB.QueryContext(ctx, `
    SELECT e.id, e.first_name, e.last_name, e.email, e.phone, e.department, e.job_title, e.salary,
           (SELECT r.rating
              FROM performance_reviews r
             WHERE r.employee_id = e.id
             ORDER BY r.review_date DESC, r.id DESC
             LIMIT 1),
           (SELECT r.review_date
              FROM performance_reviews r
             WHERE r.employee_id = e.id
             ORDER BY r.review_date DESC, r.id DESC
             LIMIT 1)
    FROM employees e
    ORDER BY e.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Overview
	for rows.Next() {
		var ov Overview
		var rating sql.NullInt64
		var reviewDate sql.NullString
		if err := rows.Scan(
			&ov.ID, &ov.FirstName, &ov.LastName, &ov.Email, &ov.Phone, &ov.Department, &ov.JobTitle, &ov.Salary,
			&rating, &reviewDate,
		); err != nil {
			return nil, err
		}
		if rating.Valid {
			ov.LatestRating = &RatingInfo{Rating: int(rating.Int64), ReviewDate: reviewDate.String}
		}
		out = append(out, ov)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, employeeID int64) (*Employee, error) {
	var emp Employee
	err := s.DB.GetContext(ctx, &emp, `
    SELECT id, first_name, last_name, email, phone, department, job_title, salary
    FROM employees
    WHERE id = $1
  `, employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Reviews(ctx context.Context, employeeID int64) ([]ReviewEntry, error) {
	var reviews []ReviewEntry
	err := s.DB.SelectContext(ctx, &reviews, `
    SELECT review_date, rating, comments
    FROM performance_reviews
    WHERE employee_id = $1
    ORDER BY review_date DESC, id DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateFields writes only the fields set in upd. Callers are expected to
// reject an empty update before reaching the store.
func (s *Store) UpdateFields(ctx context.Context, employeeID int64, upd Update) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FirstName != nil {
		set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		set("last_name", *upd.LastName)
	}
	if upd.Phone != nil {
		set("phone", *upd.Phone)
	}
	if upd.JobTitle != nil {
		set("job_title", *upd.JobTitle)
	}
	if upd.Department != nil {
		set("department", *upd.Department)
	}
	if upd.Salary != nil {
		set("salary", *upd.Salary)
	}
	if len(sets) == 0 {
		return ErrNoChanges
	}

	args = append(args, employeeID)
	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := s.DB.ExecContext(ctx, query, args...)
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
