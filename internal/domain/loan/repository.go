package loan

import "context"

type Repository interface {
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*Loan, error)
	GetByLoanNumber(ctx context.Context, loanNumber string) (*Loan, error)

	// Create inserts l and sets l.ID. A unique index hit yields ErrDuplicateKey.
	Create(ctx context.Context, l *Loan) error
	// Save inserts when l.ID is zero, otherwise overwrites the row with that ID.
	Save(ctx context.Context, l *Loan) error
	// DeleteByID reports the number of rows removed; a missing id is not an error.
	DeleteByID(ctx context.Context, id uint64) (int64, error)
}
