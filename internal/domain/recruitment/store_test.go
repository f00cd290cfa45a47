package recruitment

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"hrdesk/internal/db"
)

func newTestService(t *testing.T) *Service {
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
	return NewService(NewStore(conn))
}

func TestCreateForcesOpenStatus(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.Create(ctx, "Backend Engineer", 55000, "9 AM - 6 PM")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	job, err := service.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job.Status != StatusOpen {
		t.Fatalf("expected Open, got %s", job.Status)
	}
	if job.Title != "Backend Engineer" || job.SalaryOffered != 55000 {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestListOrdersByID(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	first, err := service.Create(ctx, "Backend Engineer", 55000, "9 AM - 6 PM")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := service.Create(ctx, "Accountant", 28000, "9 AM - 5 PM")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	jobs, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 2 || jobs[0].ID != first || jobs[1].ID != second {
		t.Fatalf("unexpected order: %+v", jobs)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.Create(ctx, "Backend Engineer", 55000, "9 AM - 6 PM")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := StatusClosed
	if err := service.Update(ctx, id, Update{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	job, err := service.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job.Status != StatusClosed {
		t.Fatalf("status not applied: %+v", job)
	}
	if job.SalaryOffered != 55000 || job.WorkHours != "9 AM - 6 PM" {
		t.Fatalf("untouched fields changed: %+v", job)
	}
}

func TestUpdateEmptySet(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.Create(ctx, "Backend Engineer", 55000, "9 AM - 6 PM")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := service.Update(ctx, id, Update{}); !errors.Is(err, ErrNoChanges) {
		t.Fatalf("expected ErrNoChanges, got %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	service := newTestService(t)
	hours := "8 AM - 4 PM"
	if err := service.Update(context.Background(), 77, Update{WorkHours: &hours}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	for _, input := range []string{"Open", "open", "OPEN"} {
		status, ok := ParseStatus(input)
		if !ok || status != StatusOpen {
			t.Fatalf("%q: expected Open, got %q ok=%v", input, status, ok)
		}
	}
	for _, input := range []string{"Closed", "closed", "CLOSED"} {
		status, ok := ParseStatus(input)
		if !ok || status != StatusClosed {
			t.Fatalf("%q: expected Closed, got %q ok=%v", input, status, ok)
		}
	}
	if _, ok := ParseStatus("Paused"); ok {
		t.Fatal("Paused must not parse")
	}
}
