package recruitment

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

func (s *Store) Insert(ctx context.Context, title string, salaryOffered float64, workHours string, status Status) (int64, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx, `
    INSERT INTO job_openings (title, salary_offered, work_hours, status)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, title, salaryOffered, workHours, string(status)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) List(ctx context.Context) ([]JobOpening, error) {
	var out []JobOpening
	err := s.DB.SelectContext(ctx, &out, `
    SELECT id, title, salary_offered, work_hours, status
    FROM job_openings
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, jobID int64) (*JobOpening, error) {
	var job JobOpening
	err := s.DB.GetContext(ctx, &job, `
    SELECT id, title, salary_offered, work_hours, status
    FROM job_openings
    WHERE id = $1
  `, jobID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *Store) UpdateFields(ctx context.Context, jobID int64, upd Update) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.SalaryOffered != nil {
		set("salary_offered", *upd.SalaryOffered)
	}
	if upd.WorkHours != nil {
		set("work_hours", *upd.WorkHours)
	}
	if upd.Status != nil {
		set("status", string(*upd.Status))
	}
	if len(sets) == 0 {
		return ErrNoChanges
	}

	args = append(args, jobID)
	query := fmt.Sprintf("UPDATE job_openings SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

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
