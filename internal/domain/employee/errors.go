package employee

import "errors"

var (
	ErrNotFound       = errors.New("employee not found")
	ErrNoChanges      = errors.New("no changes supplied")
	ErrNegativeSalary = errors.New("salary must not be negative")
)
