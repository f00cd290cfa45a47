package recruitment

import "errors"

var (
	ErrNotFound  = errors.New("job opening not found")
	ErrNoChanges = errors.New("no changes supplied")
)
