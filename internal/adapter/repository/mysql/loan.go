package mysql

import (
	"context"

	loanDomain "loans-service/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *LoanRepository) Tx(ctx context.Context, fn func(repo loanDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LoanRepository{db: tx})
	})
}

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return translateErr(r.db.WithContext(ctx).Create(l).Error)
}

// Save overwrites every business and audit column except the creation ones.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	if l.ID == 0 {
		return r.Create(ctx, l)
	}
	res := r.db.WithContext(ctx).
		Model(l).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(l)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// MySQL reports 0 affected rows for a no-op update, so confirm the row is gone.
	var n int64
	if err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("id = ?", l.ID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LoanRepository) GetByMobileNumber(ctx context.Context, mobileNumber string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("mobile_number = ?", mobileNumber).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanNumber(ctx context.Context, loanNumber string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_number = ?", loanNumber).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) DeleteByID(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&loanDomain.Loan{})
	return res.RowsAffected, res.Error
}
