package leave

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, employeeID int64, startDate, endDate, reason string, status Status) (int64, error)
	ListByStatus(ctx context.Context, status Status) ([]PendingRequest, error)
	UpdateStatus(ctx context.Context, requestID int64, status Status) error
}
