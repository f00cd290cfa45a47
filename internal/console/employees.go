package console

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"hrdesk/internal/domain/employee"
)

func (a *App) employeeMenu(ctx context.Context) {
	for {
		a.io.Printf("\n### Employee Info Menu ###\n")
		a.io.Printf("1. Add a new employee\n")
		a.io.Printf("2. List all employees and view details\n")
		a.io.Printf("3. Edit an employee's details\n")
		a.io.Printf("4. Return to previous menu\n")

		switch a.io.Prompt("What would you like to do? ") {
		case "1":
			a.addEmployee(ctx)
		case "2":
			a.viewEmployees(ctx)
		case "3":
			a.updateEmployee(ctx)
		case "4":
			return
		default:
			a.io.Printf("Invalid choice.\n")
		}

		if a.io.eof {
			return
		}
	}
}

func (a *App) addEmployee(ctx context.Context) {
	a.io.Printf("\n--- Add a New Employee ---\n")
	emp := employee.NewEmployee{
		FirstName:  a.io.Prompt("First name: "),
		LastName:   a.io.Prompt("Last name: "),
		Email:      a.io.Prompt("Email address: "),
		Phone:      a.io.Prompt("Phone number (e.g. +1-555-555-5555): "),
		Department: a.io.Prompt("Department (e.g. Sales, HR): "),
		JobTitle:   a.io.Prompt("Job title: "),
	}

	salary, ok := a.io.promptFloat("Salary (numbers only, e.g. 45000): ",
		"That doesn't look like a number. Please enter the salary as digits only.")
	if !ok {
		return
	}
	emp.Salary = salary

	id, err := a.employees.Create(ctx, emp)
	if err != nil {
		a.io.Printf("Unable to add employee: %v\n", err)
		slog.Warn("add employee failed", "err", err)
		return
	}
	a.io.Printf("Employee %s %s added - employee ID %d.\n", emp.FirstName, emp.LastName, id)
}

func (a *App) viewEmployees(ctx context.Context) {
	list, err := a.employees.List(ctx)
	if err != nil {
		a.io.Printf("Unable to list employees: %v\n", err)
		slog.Warn("list employees failed", "err", err)
		return
	}
	if len(list) == 0 {
		a.io.Printf("\nNo employees found.\n")
		return
	}

	a.io.Printf("\n--- Employees List ---\n")
	for _, ov := range list {
		a.io.Printf("%d. %s %s | Job: %s | Dept: %s | Salary: %.2f\n",
			ov.ID, ov.FirstName, ov.LastName, ov.JobTitle, ov.Department, ov.Salary)
		if ov.LatestRating != nil {
			a.io.Printf("   Latest Rating: %d (on %s)\n", ov.LatestRating.Rating, ov.LatestRating.ReviewDate)
		} else {
			a.io.Printf("   Rating not added yet\n")
		}
	}

	raw := a.io.Prompt("\nEnter Employee ID to view full details (or press Enter to go back): ")
	if raw == "" {
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		a.io.Printf("Invalid ID.\n")
		return
	}

	detail, err := a.employees.Get(ctx, id)
	if errors.Is(err, employee.ErrNotFound) {
		a.io.Printf("Employee not found.\n")
		return
	}
	if err != nil {
		a.io.Printf("Unable to load employee: %v\n", err)
		slog.Warn("get employee failed", "employeeId", id, "err", err)
		return
	}

	a.io.Printf("\n--- Employee Details ---\n")
	a.io.Printf("ID: %d\n", detail.ID)
	a.io.Printf("Name: %s %s\n", detail.FirstName, detail.LastName)
	a.io.Printf("Email: %s\n", detail.Email)
	a.io.Printf("Phone: %s\n", detail.Phone)
	a.io.Printf("Department: %s\n", detail.Department)
	a.io.Printf("Job Title: %s\n", detail.JobTitle)
	a.io.Printf("Salary: %.2f\n", detail.Salary)

	if len(detail.Reviews) == 0 {
		a.io.Printf("\nPerformance Reviews: Rating not added yet\n")
		return
	}
	a.io.Printf("\nPerformance Reviews:\n")
	for _, r := range detail.Reviews {
		a.io.Printf(" - %s: Rating %d | %s\n", r.ReviewDate, r.Rating, r.Comments)
	}
}

func (a *App) updateEmployee(ctx context.Context) {
	id, ok := a.io.promptID("Enter Employee ID to update: ")
	if !ok {
		return
	}

	detail, err := a.employees.Get(ctx, id)
	if errors.Is(err, employee.ErrNotFound) {
		a.io.Printf("Employee not found.\n")
		return
	}
	if err != nil {
		a.io.Printf("Unable to load employee: %v\n", err)
		slog.Warn("get employee failed", "employeeId", id, "err", err)
		return
	}

	a.io.Printf("\n--- Current Employee Details ---\n")
	a.io.Printf("Name: %s %s\n", detail.FirstName, detail.LastName)
	a.io.Printf("Phone: %s\n", detail.Phone)
	a.io.Printf("Job Title: %s\n", detail.JobTitle)
	a.io.Printf("Department: %s\n", detail.Department)
	a.io.Printf("Salary: %.2f\n", detail.Salary)

	var upd employee.Update
	if v := a.io.Prompt("New First Name (leave blank = no change): "); v != "" {
		upd.FirstName = &v
	}
	if v := a.io.Prompt("New Last Name (leave blank = no change): "); v != "" {
		upd.LastName = &v
	}
	if v := a.io.Prompt("New Phone (leave blank = no change): "); v != "" {
		upd.Phone = &v
	}
	if v := a.io.Prompt("New Job Title (leave blank = no change): "); v != "" {
		upd.JobTitle = &v
	}
	if v := a.io.Prompt("New Department (leave blank = no change): "); v != "" {
		upd.Department = &v
	}
	if v := a.io.Prompt("New Salary (leave blank = no change): "); v != "" {
		salary, err := strconv.ParseFloat(v, 64)
		if err != nil || salary < 0 {
			// invalid salary is dropped from the update, not fatal
			a.io.Printf("Invalid salary entered. Salary not changed.\n")
		} else {
			upd.Salary = &salary
		}
	}

	err = a.employees.Update(ctx, id, upd)
	switch {
	case errors.Is(err, employee.ErrNoChanges):
		a.io.Printf("No changes entered.\n")
	case errors.Is(err, employee.ErrNotFound):
		a.io.Printf("Employee not found.\n")
	case err != nil:
		a.io.Printf("Unable to update employee: %v\n", err)
		slog.Warn("update employee failed", "employeeId", id, "err", err)
	default:
		a.io.Printf("Employee updated successfully.\n")
	}
}
