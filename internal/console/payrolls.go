package console

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"hrdesk/internal/domain/payroll"
)

func (a *App) payrollMenu(ctx context.Context) {
	a.io.Printf("\n### Payroll Calculator ###\n")

	employees, err := a.payrolls.ListEmployees(ctx)
	if err != nil {
		a.io.Printf("Unable to list employees: %v\n", err)
		slog.Warn("payroll employee list failed", "err", err)
		return
	}
	if len(employees) == 0 {
		a.io.Printf("No employees found.\n")
		return
	}

	a.io.Printf("\n--- Employee List ---\n")
	for _, emp := range employees {
		a.io.Printf("%d. %s %s  | Salary: %.2f\n", emp.ID, emp.FirstName, emp.LastName, emp.Salary)
	}

	employeeID, ok := a.io.promptID("\nEnter Employee ID to calculate payroll: ")
	if !ok {
		return
	}

	result, err := a.payrolls.CalculateFor(ctx, employeeID)
	if errors.Is(err, payroll.ErrEmployeeNotFound) {
		a.io.Printf("Employee not found.\n")
		return
	}
	if err != nil {
		a.io.Printf("Unable to calculate payroll: %v\n", err)
		slog.Warn("payroll calculation failed", "employeeId", employeeID, "err", err)
		return
	}

	b := result.Breakdown
	a.io.Printf("\n--- Payroll Summary ---\n")
	a.io.Printf("Employee: %s %s\n", result.Employee.FirstName, result.Employee.LastName)
	a.io.Printf("Basic salary: %.2f\n", b.Basic)
	a.io.Printf("HRA (24%%): %.2f\n", b.HRA)
	a.io.Printf("Provident Fund (12%%): -%.2f\n", b.PF)
	a.io.Printf("Insurance: -%.2f\n", b.Insurance)
	a.io.Printf("Net (take-home): %.2f\n", b.Net)

	save := strings.ToUpper(a.io.Prompt("\nWould you like to save this payroll record? (Y/N): "))
	if save == "Y" {
		if _, err := a.payrolls.Save(ctx, employeeID, b); err != nil {
			a.io.Printf("Could not save payroll: %v\n", err)
			slog.Warn("payroll save failed", "employeeId", employeeID, "err", err)
		} else {
			a.io.Printf("Payroll record saved.\n")
		}
	}

	export := strings.ToUpper(a.io.Prompt("Export payslip as PDF? (Y/N): "))
	if export == "Y" {
		path, err := a.payrolls.ExportPayslip(result)
		if err != nil {
			a.io.Printf("Could not export payslip: %v\n", err)
			slog.Warn("payslip export failed", "employeeId", employeeID, "err", err)
		} else {
			a.io.Printf("Payslip written to %s\n", path)
		}
	}

	history := strings.ToUpper(a.io.Prompt("View saved payroll records for this employee? (Y/N): "))
	if history == "Y" {
		a.showPayrollHistory(ctx, employeeID)
	}
}

func (a *App) showPayrollHistory(ctx context.Context, employeeID int64) {
	records, err := a.payrolls.History(ctx, employeeID)
	if err != nil {
		a.io.Printf("Unable to load payroll history: %v\n", err)
		slog.Warn("payroll history failed", "employeeId", employeeID, "err", err)
		return
	}
	if len(records) == 0 {
		a.io.Printf("No payroll records saved yet.\n")
		return
	}

	a.io.Printf("\n--- Payroll History ---\n")
	for _, rec := range records {
		a.io.Printf("%s | Basic: %.2f | HRA: %.2f | PF: -%.2f | Insurance: -%.2f | Net: %.2f\n",
			rec.GeneratedOn, rec.BasicSalary, rec.HRA, rec.PF, rec.Insurance, rec.NetSalary)
	}
}
