package recruitment

import "context"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Create adds a job opening. New openings always start Open.
func (s *Service) Create(ctx context.Context, title string, salaryOffered float64, workHours string) (int64, error) {
	return s.store.Insert(ctx, title, salaryOffered, workHours, StatusOpen)
}

func (s *Service) List(ctx context.Context) ([]JobOpening, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, jobID int64) (*JobOpening, error) {
	return s.store.Get(ctx, jobID)
}

// Update applies a partial field set; an empty set is ErrNoChanges.
func (s *Service) Update(ctx context.Context, jobID int64, upd Update) error {
	if upd.Empty() {
		return ErrNoChanges
	}
	return s.store.UpdateFields(ctx, jobID, upd)
}
