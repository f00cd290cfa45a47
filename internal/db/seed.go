package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Seed inserts a small demo data set on an empty database. Safe to run on
// every start: it backs off as soon as any employee exists.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	employees := []struct {
		first, last, email, phone, department, title string
		salary                                       float64
	}{
		{"Amara", "Okafor", "amara.okafor@example.com", "+1-555-0101", "Engineering", "Software Engineer", 48000},
		{"Liam", "Perez", "liam.perez@example.com", "+1-555-0102", "Sales", "Account Executive", 36000},
		{"Noor", "Haddad", "noor.haddad@example.com", "+1-555-0103", "HR", "HR Generalist", 9500},
	}

	var firstID int64
	for i, emp := range employees {
		var id int64
		err := db.QueryRowContext(ctx, `
      INSERT INTO employees (first_name, last_name, email, phone, department, job_title, salary)
      VALUES ($1,$2,$3,$4,$5,$6,$7)
      RETURNING id
    `, emp.first, emp.last, emp.email, emp.phone, emp.department, emp.title, emp.salary).Scan(&id)
		if err != nil {
			return err
		}
		if i == 0 {
			firstID = id
		}
	}

	today := time.Now().Format("2006-01-02")
	if _, err := db.ExecContext(ctx, `
    INSERT INTO performance_reviews (employee_id, review_date, rating, comments)
    VALUES ($1,$2,$3,$4)
  `, firstID, today, 4, "Solid quarter, shipped on time."); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, `
    INSERT INTO job_openings (title, salary_offered, work_hours, status)
    VALUES ($1,$2,$3,$4)
  `, "Junior Accountant", 28000.0, "9 AM - 5 PM", "Open")
	return err
}
