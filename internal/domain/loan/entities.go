package loan

import (
	"time"
)

// Table: loans. One row per customer mobile number.
type Loan struct {
	ID                uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"-"`
	MobileNumber      string    `gorm:"column:mobile_number;size:16;not null;uniqueIndex:ux_loans_mobile_number" json:"mobileNumber"`
	LoanNumber        string    `gorm:"column:loan_number;size:12;not null;uniqueIndex:ux_loans_loan_number" json:"loanNumber"`
	LoanType          string    `gorm:"column:loan_type;size:100;not null" json:"loanType"`
	TotalLoan         int       `gorm:"column:total_loan;not null" json:"totalLoan"`
	AmountPaid        int       `gorm:"column:amount_paid;not null" json:"amountPaid"`
	OutstandingAmount int       `gorm:"column:outstanding_amount;not null" json:"outstandingAmount"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	CreatedBy         string    `gorm:"column:created_by;size:20" json:"-"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	UpdatedBy         string    `gorm:"column:updated_by;size:20" json:"-"`
}

func (Loan) TableName() string { return "loans" }
