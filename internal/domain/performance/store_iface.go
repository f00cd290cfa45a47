package performance

import "context"

type StoreAPI interface {
	EmployeeName(ctx context.Context, employeeID int64) (first, last string, err error)
	RecordReview(ctx context.Context, employeeID int64, reviewDate string, rating int, comments string) (int64, error)
	ListReviews(ctx context.Context, employeeID int64) ([]Review, error)
}
