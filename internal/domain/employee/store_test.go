package employee

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"hrdesk/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	conn, err := db.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.Migrate(ctx, conn, db.DialectSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewStore(conn)
}

func insertEmployee(t *testing.T, store *Store, first, last string, salary float64) int64 {
	t.Helper()
	id, err := store.Insert(context.Background(), NewEmployee{
		FirstName: first, LastName: last,
		Email:  first + "@example.com",
		Salary: salary,
	})
	if err != nil {
		t.Fatalf("insert employee: %v", err)
	}
	return id
}

func TestInsertAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Insert(ctx, NewEmployee{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane.doe@example.com",
		Phone:      "+1-555-0100",
		Department: "Engineering",
		JobTitle:   "Engineer",
		Salary:     8000,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero id")
	}

	emp, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if emp.FirstName != "Jane" || emp.LastName != "Doe" || emp.Salary != 8000 {
		t.Fatalf("unexpected employee: %+v", emp)
	}
	if emp.Department != "Engineering" || emp.JobTitle != "Engineer" {
		t.Fatalf("unexpected job fields: %+v", emp)
	}
}

func TestGetNotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdersByIDWithLatestRating(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := insertEmployee(t, store, "Amara", "Okafor", 48000)
	second := insertEmployee(t, store, "Liam", "Perez", 36000)

	// three reviews for the first employee; the two sharing the later date
	// tie-break on id descending
	for _, review := range []struct {
		date   string
		rating int
	}{
		{"2024-01-01", 2},
		{"2024-03-01", 3},
		{"2024-03-01", 5},
	} {
		if _, err := store.DB.ExecContext(ctx, `
      INSERT INTO performance_reviews (employee_id, review_date, rating, comments)
      VALUES ($1,$2,$3,$4)
    `, first, review.date, review.rating, ""); err != nil {
			t.Fatalf("insert review: %v", err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(list))
	}
	if list[0].ID != first || list[1].ID != second {
		t.Fatalf("expected id-ascending order, got %d then %d", list[0].ID, list[1].ID)
	}

	if list[0].LatestRating == nil {
		t.Fatal("expected a latest rating for the reviewed employee")
	}
	if list[0].LatestRating.Rating != 5 || list[0].LatestRating.ReviewDate != "2024-03-01" {
		t.Fatalf("unexpected latest rating: %+v", list[0].LatestRating)
	}
	if list[1].LatestRating != nil {
		t.Fatalf("expected no rating for the unreviewed employee, got %+v", list[1].LatestRating)
	}
}

func TestUpdateFieldsPartial(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id := insertEmployee(t, store, "Noor", "Haddad", 9500)

	phone := "+1-555-0199"
	title := "Senior HR Generalist"
	if err := store.UpdateFields(ctx, id, Update{Phone: &phone, JobTitle: &title}); err != nil {
		t.Fatalf("update: %v", err)
	}

	emp, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if emp.Phone != phone || emp.JobTitle != title {
		t.Fatalf("updated fields not applied: %+v", emp)
	}
	if emp.FirstName != "Noor" || emp.Salary != 9500 {
		t.Fatalf("untouched fields changed: %+v", emp)
	}
}

func TestUpdateFieldsNotFound(t *testing.T) {
	store := newTestStore(t)
	phone := "+1-555-0000"
	if err := store.UpdateFields(context.Background(), 99, Update{Phone: &phone}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateFieldsEmptySet(t *testing.T) {
	store := newTestStore(t)
	id := insertEmployee(t, store, "Amara", "Okafor", 48000)
	if err := store.UpdateFields(context.Background(), id, Update{}); !errors.Is(err, ErrNoChanges) {
		t.Fatalf("expected ErrNoChanges, got %v", err)
	}
}
