package recruitment

// Status is the closed set of job opening states.
type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

// ParseStatus accepts the two allowed states in the spellings users type
// ("Open", "open", "OPEN" and the Closed equivalents).
func ParseStatus(value string) (Status, bool) {
	switch value {
	case "Open", "open", "OPEN":
		return StatusOpen, true
	case "Closed", "closed", "CLOSED":
		return StatusClosed, true
	}
	return "", false
}

type JobOpening struct {
	ID            int64   `db:"id"`
	Title         string  `db:"title"`
	SalaryOffered float64 `db:"salary_offered"`
	WorkHours     string  `db:"work_hours"`
	Status        Status  `db:"status"`
}

// Update carries a partial field set; nil fields are left unchanged.
type Update struct {
	SalaryOffered *float64
	WorkHours     *string
	Status        *Status
}

func (u Update) Empty() bool {
	return u.SalaryOffered == nil && u.WorkHours == nil && u.Status == nil
}
