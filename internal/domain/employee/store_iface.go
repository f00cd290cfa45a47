package employee

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, emp NewEmployee) (int64, error)
	List(ctx context.Context) ([]Overview, error)
	Get(ctx context.Context, employeeID int64) (*Employee, error)
	Reviews(ctx context.Context, employeeID int64) ([]ReviewEntry, error)
	UpdateFields(ctx context.Context, employeeID int64, upd Update) error
}
