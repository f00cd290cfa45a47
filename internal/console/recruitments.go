package console

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"hrdesk/internal/domain/recruitment"
)

func (a *App) recruitmentMenu(ctx context.Context) {
	for {
		a.io.Printf("\n### Recruitment Management Menu ###\n")
		a.io.Printf("1. Add Job Opening\n")
		a.io.Printf("2. View All Job Openings\n")
		a.io.Printf("3. Update Job Opening\n")
		a.io.Printf("4. Back to Main Menu\n")

		switch a.io.Prompt("Enter choice: ") {
		case "1":
			a.addJobOpening(ctx)
		case "2":
			a.viewJobOpenings(ctx)
		case "3":
			a.updateJobOpening(ctx)
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

func (a *App) addJobOpening(ctx context.Context) {
	a.io.Printf("\n--- Add Job Opening ---\n")
	title := a.io.Prompt("Job Title: ")
	salary, ok := a.io.promptFloat("Salary Offered: ", "Invalid salary. Enter a numeric value.")
	if !ok {
		return
	}
	workHours := a.io.Prompt("Work Hours (e.g., 9 AM - 6 PM): ")

	if _, err := a.jobs.Create(ctx, title, salary, workHours); err != nil {
		a.io.Printf("Unable to add job opening: %v\n", err)
		slog.Warn("add job opening failed", "err", err)
		return
	}
	a.io.Printf("Job opening added successfully.\n")
}

func (a *App) viewJobOpenings(ctx context.Context) {
	jobs, err := a.jobs.List(ctx)
	if err != nil {
		a.io.Printf("Unable to list job openings: %v\n", err)
		slog.Warn("list job openings failed", "err", err)
		return
	}
	if len(jobs) == 0 {
		a.io.Printf("No job openings available.\n")
		return
	}

	a.io.Printf("\n--- Job Openings ---\n")
	for _, job := range jobs {
		a.io.Printf("ID: %d | %s\n", job.ID, job.Title)
		a.io.Printf("Salary: %.2f | Hours: %s\n", job.SalaryOffered, job.WorkHours)
		a.io.Printf("Status: %s\n\n", job.Status)
	}
}

func (a *App) updateJobOpening(ctx context.Context) {
	jobID, ok := a.io.promptID("Enter Job ID to update: ")
	if !ok {
		return
	}

	job, err := a.jobs.Get(ctx, jobID)
	if errors.Is(err, recruitment.ErrNotFound) {
		a.io.Printf("Job opening not found.\n")
		return
	}
	if err != nil {
		a.io.Printf("Unable to load job opening: %v\n", err)
		slog.Warn("get job opening failed", "jobId", jobID, "err", err)
		return
	}

	a.io.Printf("\n--- Current Job Details ---\n")
	a.io.Printf("Title: %s\n", job.Title)
	a.io.Printf("Salary: %.2f\n", job.SalaryOffered)
	a.io.Printf("Work Hours: %s\n", job.WorkHours)
	a.io.Printf("Status: %s\n", job.Status)

	var upd recruitment.Update
	if v := a.io.Prompt("New Salary (leave blank = no change): "); v != "" {
		salary, err := strconv.ParseFloat(v, 64)
		if err != nil || salary < 0 {
			// invalid salary is dropped from the update, not fatal
			a.io.Printf("Invalid salary entered. Salary not changed.\n")
		} else {
			upd.SalaryOffered = &salary
		}
	}
	if v := a.io.Prompt("New Work Hours (leave blank = no change): "); v != "" {
		upd.WorkHours = &v
	}
	if v := a.io.Prompt("New Status (Open/Closed) (leave blank = no change): "); v != "" {
		status, ok := recruitment.ParseStatus(v)
		if !ok {
			a.io.Printf("Invalid status entered. Status not changed.\n")
		} else {
			upd.Status = &status
		}
	}

	err = a.jobs.Update(ctx, jobID, upd)
	switch {
	case errors.Is(err, recruitment.ErrNoChanges):
		a.io.Printf("No changes entered.\n")
	case errors.Is(err, recruitment.ErrNotFound):
		a.io.Printf("Job opening not found.\n")
	case err != nil:
		a.io.Printf("Unable to update job opening: %v\n", err)
		slog.Warn("update job opening failed", "jobId", jobID, "err", err)
	default:
		a.io.Printf("Job updated successfully.\n")
	}
}
