package loan

import (
	"context"
	"errors"
	"fmt"

	"loans-service/internal/domain/loan"
	"loans-service/internal/domain/uow"
	"loans-service/internal/infrastructure/logging"
	"loans-service/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	repo    loan.Repository
	uow     uow.UnitOfWork
	auditor string

	newLoanNumber func() string
}

// NewUsecase: reads go through repo, check-then-write flows through tx.
// auditor is stamped into created_by / updated_by.
func NewUsecase(r loan.Repository, tx uow.UnitOfWork, auditor string) *Usecase {
	return &Usecase{repo: r, uow: tx, auditor: auditor, newLoanNumber: id.NewLoanNumber}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) error {
	if err := u.ensureMobileFree(ctx, in.MobileNumber); err != nil {
		return err
	}

	for attempt := 1; attempt <= loan.MaxLoanNumberAttempts; attempt++ {
		l := u.buildNewLoan(in.MobileNumber)
		err := u.repo.Create(ctx, l)
		if err == nil {
			logging.FromContext(ctx).Info("loan created", zap.String("loan_number", l.LoanNumber))
			return nil
		}
		if !errors.Is(err, loan.ErrDuplicateKey) {
			return err
		}
		// Either a concurrent create took the mobile number or the loan number collided.
		if err := u.ensureMobileFree(ctx, in.MobileNumber); err != nil {
			return err
		}
		logging.FromContext(ctx).Warn("loan number collision, drawing again",
			zap.String("loan_number", l.LoanNumber), zap.Int("attempt", attempt))
	}
	return loan.ErrLoanNumberExhausted
}

func (u *Usecase) ensureMobileFree(ctx context.Context, mobileNumber string) error {
	_, err := u.repo.GetByMobileNumber(ctx, mobileNumber)
	switch {
	case err == nil:
		return alreadyExists(mobileNumber)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}

func (u *Usecase) buildNewLoan(mobileNumber string) *loan.Loan {
	return &loan.Loan{
		MobileNumber:      mobileNumber,
		LoanNumber:        u.newLoanNumber(),
		LoanType:          loan.HomeLoan,
		TotalLoan:         loan.NewLoanLimit,
		AmountPaid:        0,
		OutstandingAmount: loan.NewLoanLimit,
		CreatedBy:         u.auditor,
	}
}

func (u *Usecase) Fetch(ctx context.Context, mobileNumber string) (*LoanDTO, error) {
	l, err := u.repo.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("mobile number", mobileNumber)
		}
		return nil, err
	}
	return toDTO(l), nil
}

// Update keys on the loan number; the loan number and id are never rewritten.
func (u *Usecase) Update(ctx context.Context, in LoanDTO) (bool, error) {
	err := u.uow.WithinLoanTx(ctx, in.LoanNumber, func(r uow.Repos, l *loan.Loan) error {
		l.MobileNumber = in.MobileNumber
		l.LoanType = in.LoanType
		l.TotalLoan = in.TotalLoan
		l.AmountPaid = in.AmountPaid
		l.OutstandingAmount = in.OutstandingAmount
		l.UpdatedBy = u.auditor
		return r.Loans.Save(ctx, l)
	})
	switch {
	case err == nil:
		logging.FromContext(ctx).Info("loan updated", zap.String("loan_number", in.LoanNumber))
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, notFound("loan number", in.LoanNumber)
	case errors.Is(err, loan.ErrDuplicateKey):
		return false, alreadyExists(in.MobileNumber)
	default:
		return false, err
	}
}

func (u *Usecase) Delete(ctx context.Context, mobileNumber string) (bool, error) {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByMobileNumber(ctx, mobileNumber)
		if err != nil {
			return err
		}
		n, err := r.Loans.DeleteByID(ctx, l.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			// removed by a concurrent request between lookup and delete
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	switch {
	case err == nil:
		logging.FromContext(ctx).Info("loan deleted")
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, notFound("mobile number", mobileNumber)
	default:
		return false, err
	}
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		MobileNumber:      l.MobileNumber,
		LoanNumber:        l.LoanNumber,
		LoanType:          l.LoanType,
		TotalLoan:         l.TotalLoan,
		AmountPaid:        l.AmountPaid,
		OutstandingAmount: l.OutstandingAmount,
	}
}

func notFound(field, value string) error {
	return fmt.Errorf("%w with the given input data %s: '%s'", loan.ErrNotFound, field, value)
}

func alreadyExists(mobileNumber string) error {
	return fmt.Errorf("%w for mobile number: %s", loan.ErrAlreadyExists, mobileNumber)
}
