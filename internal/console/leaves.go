package console

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"hrdesk/internal/domain/leave"
)

// leaveMenu is gated on the configured role flag, mirroring the single
// role check this tool carries.
func (a *App) leaveMenu(ctx context.Context) {
	if a.role != "admin" {
		a.io.Printf("Access denied.\n")
		return
	}

	for {
		a.io.Printf("\n### Leave Management Menu ###\n")
		a.io.Printf("1. Apply Leave for Employee\n")
		a.io.Printf("2. Approve/Reject Leave Requests\n")
		a.io.Printf("3. Back to Main Menu\n")

		switch a.io.Prompt("Enter choice: ") {
		case "1":
			a.applyLeave(ctx)
		case "2":
			a.decideLeave(ctx)
		case "3":
			return
		default:
			a.io.Printf("Invalid choice.\n")
		}

		if a.io.eof {
			return
		}
	}
}

func (a *App) applyLeave(ctx context.Context) {
	employeeID, ok := a.io.promptID("Enter Employee ID: ")
	if !ok {
		return
	}

	a.io.Printf("\n--- Leave Request ---\n")
	startDate := a.io.Prompt("Start date (YYYY-MM-DD): ")
	endDate := a.io.Prompt("End date (YYYY-MM-DD): ")
	reason := a.io.Prompt("Reason for leave (short explanation): ")

	if _, err := a.leaves.Apply(ctx, employeeID, startDate, endDate, reason); err != nil {
		a.io.Printf("Could not submit leave: %v\n", err)
		slog.Warn("apply leave failed", "employeeId", employeeID, "err", err)
		return
	}
	a.io.Printf("Leave request submitted - status: Pending. Your manager will review it shortly.\n")
}

func (a *App) decideLeave(ctx context.Context) {
	pending, err := a.leaves.ListPending(ctx)
	if err != nil {
		a.io.Printf("Unable to list leave requests: %v\n", err)
		slog.Warn("list pending leaves failed", "err", err)
		return
	}
	if len(pending) == 0 {
		a.io.Printf("No pending leave requests.\n")
		return
	}

	a.io.Printf("\n--- Pending Leave Requests ---\n")
	for _, req := range pending {
		a.io.Printf("ID %d | %s %s\n", req.ID, req.FirstName, req.LastName)
		a.io.Printf("   %s -> %s | %s\n\n", req.StartDate, req.EndDate, req.Reason)
	}

	raw := a.io.Prompt("Enter Leave ID to process (0 to cancel): ")
	if raw == "0" || raw == "" {
		return
	}
	leaveID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || leaveID <= 0 {
		a.io.Printf("Invalid ID.\n")
		return
	}

	decision := leave.Decision(strings.ToUpper(a.io.Prompt("Approve or Reject? (A/R): ")))

	status, err := a.leaves.Decide(ctx, leaveID, decision)
	switch {
	case errors.Is(err, leave.ErrInvalidDecision):
		a.io.Printf("Invalid choice.\n")
	case errors.Is(err, leave.ErrNotFound):
		a.io.Printf("Leave request not found.\n")
	case err != nil:
		a.io.Printf("Unable to update leave request: %v\n", err)
		slog.Warn("decide leave failed", "leaveId", leaveID, "err", err)
	default:
		a.io.Printf("Leave %d marked as %s.\n", leaveID, status)
	}
}
