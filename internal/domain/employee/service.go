package employee

import "context"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, emp NewEmployee) (int64, error) {
	if emp.Salary < 0 {
		return 0, ErrNegativeSalary
	}
	return s.store.Insert(ctx, emp)
}

func (s *Service) List(ctx context.Context) ([]Overview, error) {
	return s.store.List(ctx)
}

// Get returns the full employee record together with its review history,
// newest review first.
func (s *Service) Get(ctx context.Context, employeeID int64) (*Detail, error) {
	emp, err := s.store.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.store.Reviews(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return &Detail{Employee: *emp, Reviews: reviews}, nil
}

// Update applies a partial field set. An empty set is reported as
// ErrNoChanges rather than touching the store.
func (s *Service) Update(ctx context.Context, employeeID int64, upd Update) error {
	if upd.Empty() {
		return ErrNoChanges
	}
	if upd.Salary != nil && *upd.Salary < 0 {
		return ErrNegativeSalary
	}
	return s.store.UpdateFields(ctx, employeeID, upd)
}
