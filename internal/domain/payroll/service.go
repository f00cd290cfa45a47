package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

type Service struct {
	store      StoreAPI
	payslipDir string
}

func NewService(store StoreAPI, payslipDir string) *Service {
	return &Service{store: store, payslipDir: payslipDir}
}

func (s *Service) ListEmployees(ctx context.Context) ([]EmployeeRef, error) {
	return s.store.ListEmployees(ctx)
}

// CalculateFor computes the breakdown from the employee's stored salary. It
// never writes; persisting is a separate opt-in through Save.
func (s *Service) CalculateFor(ctx context.Context, employeeID int64) (*Result, error) {
	emp, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return &Result{Employee: *emp, Breakdown: Calculate(emp.Salary)}, nil
}

// Save appends a dated payroll record. Prior records for the same employee
// are never replaced.
func (s *Service) Save(ctx context.Context, employeeID int64, b Breakdown) (int64, error) {
	return s.store.Insert(ctx, employeeID, b, time.Now().Format("2006-01-02"))
}

func (s *Service) History(ctx context.Context, employeeID int64) ([]Record, error) {
	return s.store.History(ctx, employeeID)
}

// ExportPayslip writes the breakdown as a one-page PDF under the payslip
// directory and returns the file path.
func (s *Service) ExportPayslip(result *Result) (string, error) {
	if err := os.MkdirAll(s.payslipDir, 0o755); err != nil {
		return "", err
	}
	reference := uuid.NewString()
	filePath := filepath.Join(s.payslipDir, reference+".pdf")

	b := result.Breakdown
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s", result.Employee.FirstName, result.Employee.LastName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Reference: %s", reference))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %.2f", b.Basic))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("HRA: %.2f", b.HRA))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Provident fund: -%.2f", b.PF))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Insurance: -%.2f", b.Insurance))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", b.Net))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
