package performance

const (
	RatingMin = 1
	RatingMax = 5
)

type Review struct {
	ID         int64  `db:"id"`
	EmployeeID int64  `db:"employee_id"`
	ReviewDate string `db:"review_date"`
	Rating     int    `db:"rating"`
	Comments   string `db:"comments"`
}

// EmployeeReviews is the review history for one employee, newest first. An
// empty Reviews slice means the employee exists but has no reviews yet.
type EmployeeReviews struct {
	EmployeeID int64
	FirstName  string
	LastName   string
	Reviews    []Review
}
