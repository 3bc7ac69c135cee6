package loan

import "errors"

var (
	ErrNotFound      = errors.New("loan not found")
	ErrAlreadyExists = errors.New("loan already exists")

	// ErrDuplicateKey is returned by the store when a write hits a unique index.
	ErrDuplicateKey = errors.New("loan: duplicate key")

	ErrLoanNumberExhausted = errors.New("loan: could not allocate a unique loan number")
)
