package leave

// Status is the closed set of leave request states. Requests are created
// Pending and move to Approved or Rejected by a decision; nothing outside
// this set can be persisted.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Decision is an approve/reject choice on a pending request.
type Decision string

const (
	DecisionApprove Decision = "A"
	DecisionReject  Decision = "R"
)

// Status maps a decision to the request status it produces.
func (d Decision) Status() (Status, bool) {
	switch d {
	case DecisionApprove:
		return StatusApproved, true
	case DecisionReject:
		return StatusRejected, true
	}
	return "", false
}

// Request dates are stored exactly as entered; the workflow does not check
// that they parse or that start precedes end.
type Request struct {
	ID         int64  `db:"id"`
	EmployeeID int64  `db:"employee_id"`
	StartDate  string `db:"start_date"`
	EndDate    string `db:"end_date"`
	Reason     string `db:"reason"`
	Status     Status `db:"status"`
}

// PendingRequest is a pending request joined with the employee's name for
// display.
type PendingRequest struct {
	ID         int64  `db:"id"`
	EmployeeID int64  `db:"employee_id"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	StartDate  string `db:"start_date"`
	EndDate    string `db:"end_date"`
	Reason     string `db:"reason"`
}
