package loan

// Defaults applied to every new loan.
const (
	HomeLoan     = "Home Loan"
	NewLoanLimit = 999_999
)

// MaxLoanNumberAttempts bounds how many loan numbers Create draws before
// giving up on a run of collisions.
const MaxLoanNumberAttempts = 3
