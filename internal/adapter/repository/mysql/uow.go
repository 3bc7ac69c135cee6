package mysql

import (
	"context"

	"loans-service/internal/domain/loan"
	"loans-service/internal/domain/uow"

	"gorm.io/gorm"
)

// GormUoW binds every repository of one unit of work to the same transaction.
type GormUoW struct{ loans *LoanRepository }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{loans: NewLoanRepository(db)} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.loans.Tx(ctx, func(tx loan.Repository) error {
		return fn(uow.Repos{Loans: tx})
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanNumber string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanNumber(ctx, loanNumber)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
