package leave

import "context"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Apply files a leave request. The status is forced to Pending regardless of
// input, and the dates are stored as given.
func (s *Service) Apply(ctx context.Context, employeeID int64, startDate, endDate, reason string) (int64, error) {
	return s.store.Insert(ctx, employeeID, startDate, endDate, reason, StatusPending)
}

func (s *Service) ListPending(ctx context.Context) ([]PendingRequest, error) {
	return s.store.ListByStatus(ctx, StatusPending)
}

// Decide transitions a request to Approved or Rejected. An unrecognized
// decision is rejected without touching the store. There is no terminal-state
// guard: deciding an already-decided request overwrites its status.
func (s *Service) Decide(ctx context.Context, requestID int64, decision Decision) (Status, error) {
	status, ok := decision.Status()
	if !ok {
		return "", ErrInvalidDecision
	}
	if err := s.store.UpdateStatus(ctx, requestID, status); err != nil {
		return "", err
	}
	return status, nil
}
