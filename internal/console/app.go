package console

import (
	"context"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/domain/performance"
	"hrdesk/internal/domain/recruitment"
)

// App wires the menus to the domain services. One instance serves one
// interactive session.
type App struct {
	io        *IO
	role      string
	employees *employee.Service
	leaves    *leave.Service
	payrolls  *payroll.Service
	reviews   *performance.Service
	jobs      *recruitment.Service
}

func New(io *IO, role string,
	employees *employee.Service,
	leaves *leave.Service,
	payrolls *payroll.Service,
	reviews *performance.Service,
	jobs *recruitment.Service,
) *App {
	return &App{
		io:        io,
		role:      role,
		employees: employees,
		leaves:    leaves,
		payrolls:  payrolls,
		reviews:   reviews,
		jobs:      jobs,
	}
}

// Run drives the main menu until the user exits or input ends. No error from
// a workflow ever escapes this loop; everything is downgraded to a printed
// message.
func (a *App) Run(ctx context.Context) {
	for {
		a.io.Printf("\n=== Main Menu ===\n")
		a.io.Printf("1. Employee Info\n")
		a.io.Printf("2. Leave Management\n")
		a.io.Printf("3. Payroll\n")
		a.io.Printf("4. Performance Management\n")
		a.io.Printf("5. Recruitment\n")
		a.io.Printf("6. Exit\n")

		choice := a.io.Prompt("Enter choice: ")
		if a.io.eof {
			return
		}

		switch choice {
		case "1":
			a.employeeMenu(ctx)
		case "2":
			a.leaveMenu(ctx)
		case "3":
			a.payrollMenu(ctx)
		case "4":
			a.performanceMenu(ctx)
		case "5":
			a.recruitmentMenu(ctx)
		case "6":
			a.io.Printf("Goodbye.\n")
			return
		default:
			a.io.Printf("Invalid choice.\n")
		}

		if a.io.eof {
			return
		}
	}
}
