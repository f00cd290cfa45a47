package performance

import (
	"context"
	"time"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Record validates the rating, then stores the review dated today. Employee
// existence is checked inside the store transaction.
func (s *Service) Record(ctx context.Context, employeeID int64, rating int, comments string) (int64, error) {
	if rating < RatingMin || rating > RatingMax {
		return 0, ErrInvalidRating
	}
	today := time.Now().Format("2006-01-02")
	return s.store.RecordReview(ctx, employeeID, today, rating, comments)
}

// ListFor returns the employee's review history newest-first. A missing
// employee is ErrEmployeeNotFound; an employee without reviews comes back
// with an empty slice.
func (s *Service) ListFor(ctx context.Context, employeeID int64) (*EmployeeReviews, error) {
	first, last, err := s.store.EmployeeName(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.store.ListReviews(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return &EmployeeReviews{EmployeeID: employeeID, FirstName: first, LastName: last, Reviews: reviews}, nil
}
