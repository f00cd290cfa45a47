package recruitment

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, title string, salaryOffered float64, workHours string, status Status) (int64, error)
	List(ctx context.Context) ([]JobOpening, error)
	Get(ctx context.Context, jobID int64) (*JobOpening, error)
	UpdateFields(ctx context.Context, jobID int64, upd Update) error
}
