package performance

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidRating    = errors.New("rating must be an integer between 1 and 5")
)
