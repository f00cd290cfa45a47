package leave

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

func insertEmployee(t *testing.T, store *Store, first, last string) int64 {
	t.Helper()
	var id int64
	err := store.DB.QueryRowContext(context.Background(), `
    INSERT INTO employees (first_name, last_name, email, salary)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, first, last, first+"@example.com", 30000.0).Scan(&id)
	if err != nil {
		t.Fatalf("insert employee: %v", err)
	}
	return id
}

func requestStatus(t *testing.T, store *Store, requestID int64) Status {
	t.Helper()
	var status string
	if err := store.DB.QueryRowContext(context.Background(),
		"SELECT status FROM leave_requests WHERE id = $1", requestID).Scan(&status); err != nil {
		t.Fatalf("read status: %v", err)
	}
	return Status(status)
}

func TestApplyForcesPending(t *testing.T) {
	store := newTestStore(t)
	service := NewService(store)
	ctx := context.Background()

	empID := insertEmployee(t, store, "Jane", "Doe")
	reqID, err := service.Apply(ctx, empID, "2024-05-01", "2024-05-03", "family")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := requestStatus(t, store, reqID); got != StatusPending {
		t.Fatalf("expected Pending, got %s", got)
	}
}

func TestApplyStoresDatesAsGiven(t *testing.T) {
	store := newTestStore(t)
	service := NewService(store)
	ctx := context.Background()

	empID := insertEmployee(t, store, "Jane", "Doe")
	// end before start and a malformed date are accepted as-is
	reqID, err := service.Apply(ctx, empID, "2024-05-09", "not-a-date", "trip")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	var start, end string
	if err := store.DB.QueryRowContext(ctx,
		"SELECT start_date, end_date FROM leave_requests WHERE id = $1", reqID).Scan(&start, &end); err != nil {
		t.Fatalf("read dates: %v", err)
	}
	if start != "2024-05-09" || end != "not-a-date" {
		t.Fatalf("dates altered on store: %q %q", start, end)
	}
}

func TestListPendingJoinsEmployeeName(t *testing.T) {
	store := newTestStore(t)
	service := NewService(store)
	ctx := context.Background()

	empID := insertEmployee(t, store, "Liam", "Perez")
	if _, err := service.Apply(ctx, empID, "2024-06-01", "2024-06-02", "move"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	pending, err := service.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(pending))
	}
	if pending[0].FirstName != "Liam" || pending[0].LastName != "Perez" {
		t.Fatalf("unexpected joined name: %+v", pending[0])
	}
}

func TestDecideApproveAndReject(t *testing.T) {
	store := newTestStore(t)
	service := NewService(store)
	ctx := context.Background()

	empID := insertEmployee(t, store, "Jane", "Doe")
	reqID, err := service.Apply(ctx, empID, "2024-07-01", "2024-07-05", "rest")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	status, err := service.Decide(ctx, reqID, DecisionApprove)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if status != StatusApproved {
		t.Fatalf("expected Approved, got %s", status)
	}
	if got := requestStatus(t, store, reqID); got != StatusApproved {
		t.Fatalf("stored status %s, expected Approved", got)
	}

	// no terminal-state guard: re-deciding overwrites
	status, err = service.Decide(ctx, reqID, DecisionReject)
	if err != nil {
		t.Fatalf("reject after approve: %v", err)
	}
	if status != StatusRejected {
		t.Fatalf("expected Rejected, got %s", status)
	}
	if got := requestStatus(t, store, reqID); got != StatusRejected {
		t.Fatalf("stored status %s, expected Rejected", got)
	}

	// decided requests leave the pending list
	pending, err := service.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending requests, got %d", len(pending))
	}
}

func TestDecideInvalidDecision(t *testing.T) {
	store := newTestStore(t)
	service := NewService(store)
	ctx := context.Background()

	empID := insertEmployee(t, store, "Jane", "Doe")
	reqID, err := service.Apply(ctx, empID, "2024-07-01", "2024-07-05", "rest")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := service.Decide(ctx, reqID, Decision("X")); !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("expected ErrInvalidDecision, got %v", err)
	}
	if got := requestStatus(t, store, reqID); got != StatusPending {
		t.Fatalf("invalid decision must not mutate, status now %s", got)
	}
}

func TestDecideNotFound(t *testing.T) {
	service := NewService(newTestStore(t))
	if _, err := service.Decide(context.Background(), 123, DecisionApprove); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
