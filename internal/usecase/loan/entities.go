package loan

type CreateLoanInput struct {
	MobileNumber string `json:"mobileNumber"`
}

// LoanDTO is the external view of a loan: every column except the surrogate id
// and audit fields.
type LoanDTO struct {
	MobileNumber      string `json:"mobileNumber"`
	LoanNumber        string `json:"loanNumber"`
	LoanType          string `json:"loanType"`
	TotalLoan         int    `json:"totalLoan"`
	AmountPaid        int    `json:"amountPaid"`
	OutstandingAmount int    `json:"outstandingAmount"`
}
