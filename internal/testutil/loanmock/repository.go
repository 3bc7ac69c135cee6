package loanmock

import (
	"context"

	domain "loans-service/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset finders return context.Canceled; unset writers succeed.
type Repo struct {
	GetByMobileNumberFn func(ctx context.Context, mobileNumber string) (*domain.Loan, error)
	GetByLoanNumberFn   func(ctx context.Context, loanNumber string) (*domain.Loan, error)
	CreateFn            func(ctx context.Context, l *domain.Loan) error
	SaveFn              func(ctx context.Context, l *domain.Loan) error
	DeleteByIDFn        func(ctx context.Context, id uint64) (int64, error)
}

func (m *Repo) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Loan, error) {
	if m.GetByMobileNumberFn != nil {
		return m.GetByMobileNumberFn(ctx, mobileNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanNumber(ctx context.Context, loanNumber string) (*domain.Loan, error) {
	if m.GetByLoanNumberFn != nil {
		return m.GetByLoanNumberFn(ctx, loanNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) DeleteByID(ctx context.Context, id uint64) (int64, error) {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return 1, nil
}
