package payroll

import "context"

type StoreAPI interface {
	ListEmployees(ctx context.Context) ([]EmployeeRef, error)
	GetEmployee(ctx context.Context, employeeID int64) (*EmployeeRef, error)
	Insert(ctx context.Context, employeeID int64, b Breakdown, generatedOn string) (int64, error)
	History(ctx context.Context, employeeID int64) ([]Record, error)
}
