package payroll

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

func (s *Store) ListEmployees(ctx context.Context) ([]EmployeeRef, error) {
	var out []EmployeeRef
	err := s.DB.SelectContext(ctx, &out, `
    SELECT id, first_name, last_name, salary
    FROM employees
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetEmployee(ctx context.Context, employeeID int64) (*EmployeeRef, error) {
	var emp EmployeeRef
	err := s.DB.GetContext(ctx, &emp, `
    SELECT id, first_name, last_name, salary
    FROM employees
    WHERE id = $1
  `, employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Insert(ctx context.Context, employeeID int64, b Breakdown, generatedOn string) (int64, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx, `
    INSERT INTO payroll_records (employee_id, basic_salary, hra, pf, insurance, net_salary, generated_on)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, employeeID, b.Basic, b.HRA, b.PF, b.Insurance, b.Net, generatedOn).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) History(ctx context.Context, employeeID int64) ([]Record, error) {
	var out []Record
	err := s.DB.SelectContext(ctx, &out, `
    SELECT id, employee_id, basic_salary, hra, pf, insurance, net_salary, generated_on
    FROM payroll_records
    WHERE employee_id = $1
    ORDER BY generated_on DESC, id DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	return out, nil
}
