package leave

import "errors"

var (
	ErrNotFound        = errors.New("leave request not found")
	ErrInvalidDecision = errors.New("decision must be approve or reject")
)
