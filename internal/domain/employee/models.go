package employee

type Employee struct {
	ID         int64   `db:"id"`
	FirstName  string  `db:"first_name"`
	LastName   string  `db:"last_name"`
	Email      string  `db:"email"`
	Phone      string  `db:"phone"`
	Department string  `db:"department"`
	JobTitle   string  `db:"job_title"`
	Salary     float64 `db:"salary"`
}

type NewEmployee struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Department string
	JobTitle   string
	Salary     float64
}

// RatingInfo is the most recent performance rating for an employee.
type RatingInfo struct {
	Rating     int
	ReviewDate string
}

// Overview is a directory row: the employee plus its latest rating, nil when
// no review has been recorded yet.
type Overview struct {
	Employee
	LatestRating *RatingInfo
}

type ReviewEntry struct {
	ReviewDate string `db:"review_date"`
	Rating     int    `db:"rating"`
	Comments   string `db:"comments"`
}

// Detail is the full record shown for a single employee: every field plus the
// complete review history, newest first.
type Detail struct {
	Employee
	Reviews []ReviewEntry
}

// Update carries a partial field set; nil fields are left unchanged.
type Update struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	JobTitle   *string
	Department *string
	Salary     *float64
}

func (u Update) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Phone == nil &&
		u.JobTitle == nil && u.Department == nil && u.Salary == nil
}
