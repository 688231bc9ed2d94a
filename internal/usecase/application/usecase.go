package application

import (
	"context"
	"errors"
	"strings"

	domain "loanintake-backend/internal/domain/application"
)

type Usecase struct{ store domain.Store }

func NewUsecase(s domain.Store) *Usecase { return &Usecase{store: s} }

// Submit persists a new intake. Field-level validation happens at the HTTP
// boundary; this only guards against structurally unusable input.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Salary <= 0 {
		return nil, errors.New("invalid input")
	}

	a := &domain.LoanApplication{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Tel:         strings.TrimSpace(in.Tel),
		Occupation:  strings.TrimSpace(in.Occupation),
		Salary:      in.Salary,
		PaysheetURI: in.PaysheetURI,
		Status:      domain.StatusPending,
	}
	if err := u.store.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) List(ctx context.Context) ([]ApplicationDTO, error) {
	list, err := u.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ApplicationDTO, error) {
	a, err := u.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) SearchByEmail(ctx context.Context, email string) (*ApplicationDTO, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("invalid input")
	}
	a, err := u.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput) (*ApplicationDTO, error) {
	p := domain.Patch{
		Name:        in.Name,
		Email:       in.Email,
		Tel:         in.Tel,
		Occupation:  in.Occupation,
		Salary:      in.Salary,
		PaysheetURI: in.PaysheetURI,
	}
	if in.Status != nil {
		st := domain.Status(*in.Status)
		switch st {
		case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
			p.Status = &st
		default:
			return nil, errors.New("invalid status")
		}
	}
	a, err := u.store.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// Approve and Reject are the manager's review actions: status-only patches.
func (u *Usecase) Approve(ctx context.Context, id uint64) (*ApplicationDTO, error) {
	return u.setStatus(ctx, id, domain.StatusApproved)
}

func (u *Usecase) Reject(ctx context.Context, id uint64) (*ApplicationDTO, error) {
	return u.setStatus(ctx, id, domain.StatusRejected)
}

func (u *Usecase) setStatus(ctx context.Context, id uint64, st domain.Status) (*ApplicationDTO, error) {
	a, err := u.store.Update(ctx, id, domain.Patch{Status: &st})
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// RemovePaysheet detaches the document while keeping the record.
func (u *Usecase) RemovePaysheet(ctx context.Context, id uint64) error {
	return u.store.ClearPaysheet(ctx, id)
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.store.DeleteByID(ctx, id)
}

func (u *Usecase) DeleteAll(ctx context.Context) error {
	return u.store.DeleteAll(ctx)
}
