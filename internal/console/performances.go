package console

import (
	"context"
	"errors"
	"log/slog"

	"hrdesk/internal/domain/performance"
)

func (a *App) performanceMenu(ctx context.Context) {
	for {
		a.io.Printf("\n### Performance Management ###\n")
		a.io.Printf("1. Add a performance review for an employee\n")
		a.io.Printf("2. See reviews for an employee\n")
		a.io.Printf("3. Return to previous menu\n")

		switch a.io.Prompt("Choose an action: ") {
		case "1":
			a.recordReview(ctx)
		case "2":
			a.viewReviews(ctx)
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

func (a *App) recordReview(ctx context.Context) {
	employeeID, ok := a.io.promptID("Employee ID: ")
	if !ok {
		return
	}

	rating, ok := a.io.promptRating("Rating (1-5): ")
	if !ok {
		return
	}
	comments := a.io.Prompt("Comments: ")

	_, err := a.reviews.Record(ctx, employeeID, rating, comments)
	switch {
	case errors.Is(err, performance.ErrEmployeeNotFound):
		a.io.Printf("Employee not found.\n")
	case errors.Is(err, performance.ErrInvalidRating):
		a.io.Printf("Rating must be between 1 and 5.\n")
	case err != nil:
		a.io.Printf("Unable to record review: %v\n", err)
		slog.Warn("record review failed", "employeeId", employeeID, "err", err)
	default:
		a.io.Printf("Review recorded.\n")
	}
}

func (a *App) viewReviews(ctx context.Context) {
	employeeID, ok := a.io.promptID("Employee ID to view reviews: ")
	if !ok {
		return
	}

	history, err := a.reviews.ListFor(ctx, employeeID)
	if errors.Is(err, performance.ErrEmployeeNotFound) {
		a.io.Printf("Employee not found.\n")
		return
	}
	if err != nil {
		a.io.Printf("Unable to load reviews: %v\n", err)
		slog.Warn("list reviews failed", "employeeId", employeeID, "err", err)
		return
	}

	a.io.Printf("\nReviews for %s %s:\n", history.FirstName, history.LastName)
	if len(history.Reviews) == 0 {
		a.io.Printf("Rating not added yet.\n")
		return
	}
	for _, r := range history.Reviews {
		a.io.Printf(" - %s: Rating %d | %s\n", r.ReviewDate, r.Rating, r.Comments)
	}
}
