package payroll

// EmployeeRef is the slice of the employee record payroll works from.
type EmployeeRef struct {
	ID        int64   `db:"id"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Salary    float64 `db:"salary"`
}

// Result pairs an employee with the breakdown computed from its stored salary.
type Result struct {
	Employee  EmployeeRef
	Breakdown Breakdown
}

// Record is a persisted payroll snapshot. Values are never recomputed in
// place; each save appends a new row.
type Record struct {
	ID          int64   `db:"id"`
	EmployeeID  int64   `db:"employee_id"`
	BasicSalary float64 `db:"basic_salary"`
	HRA         float64 `db:"hra"`
	PF          float64 `db:"pf"`
	Insurance   float64 `db:"insurance"`
	NetSalary   float64 `db:"net_salary"`
	GeneratedOn string  `db:"generated_on"`
}
