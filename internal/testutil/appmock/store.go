package appmock

import (
	"context"

	domain "loanintake-backend/internal/domain/application"
)

// Store is a function-backed mock satisfying application.Store. Only wire
// the methods a test needs; unwired reads report not-found and unwired
// writes succeed.
type Store struct {
	InitFn          func(ctx context.Context) error
	CreateFn        func(ctx context.Context, a *domain.LoanApplication) error
	ListFn          func(ctx context.Context) ([]domain.LoanApplication, error)
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.LoanApplication, error)
	FindByEmailFn   func(ctx context.Context, email string) (*domain.LoanApplication, error)
	UpdateFn        func(ctx context.Context, id uint64, p domain.Patch) (*domain.LoanApplication, error)
	DeleteByIDFn    func(ctx context.Context, id uint64) error
	ClearPaysheetFn func(ctx context.Context, id uint64) error
	DeleteAllFn     func(ctx context.Context) error
}

func (m *Store) Init(ctx context.Context) error {
	if m.InitFn != nil {
		return m.InitFn(ctx)
	}
	return nil
}

func (m *Store) Create(ctx context.Context, a *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Store) List(ctx context.Context) ([]domain.LoanApplication, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.LoanApplication{}, nil
}

func (m *Store) GetByID(ctx context.Context, id uint64) (*domain.LoanApplication, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Store) FindByEmail(ctx context.Context, email string) (*domain.LoanApplication, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Store) Update(ctx context.Context, id uint64, p domain.Patch) (*domain.LoanApplication, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, p)
	}
	return nil, domain.ErrNotFound
}

func (m *Store) DeleteByID(ctx context.Context, id uint64) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return nil
}

func (m *Store) ClearPaysheet(ctx context.Context, id uint64) error {
	if m.ClearPaysheetFn != nil {
		return m.ClearPaysheetFn(ctx, id)
	}
	return nil
}

func (m *Store) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return nil
}
