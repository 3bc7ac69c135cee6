package http

import (
	"errors"
	"strings"
	"testing"
)

func TestMobileValidation(t *testing.T) {
	type P struct {
		Mobile string `json:"mobileNumber" validate:"required,mobile"`
	}
	cv := NewValidator()

	for _, s := range []string{"+122234567890", "+1234", "+999999999999999"} {
		if err := cv.Validate(P{Mobile: s}); err != nil {
			t.Fatalf("expected valid mobile %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{
		"122234567890",      // no plus
		"+022234567890",     // leading zero
		"+123",              // too short
		"+1234567890123456", // 16 digits
		"+1222345678a0",     // letter
		" +122234567890",    // padding
	} {
		err := cv.Validate(P{Mobile: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "mobileNumber", "international format") {
			t.Fatalf("expected mobile message for %q, got: %+v", s, fe)
		}
	}
}

func TestLoanNumberValidation(t *testing.T) {
	type P struct {
		LoanNumber string `json:"loanNumber" validate:"loannumber"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{LoanNumber: "100646930341"}); err != nil {
		t.Fatalf("expected valid loan number, got %v", err)
	}
	for _, s := range []string{"", "10064693034", "1006469303411", "10064693034x"} {
		err := cv.Validate(P{LoanNumber: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "loanNumber", "12 digits") {
			t.Fatalf("expected loan number message for %q, got %+v", s, fe)
		}
	}
}

func TestViolations_ReportsEveryField(t *testing.T) {
	in := updateLoanReq{
		MobileNumber:      "+122234567890",
		LoanNumber:        "100646930341",
		LoanType:          "",
		TotalLoan:         -33333,
		AmountPaid:        -22222,
		OutstandingAmount: -11111,
	}
	fe := Violations(in)
	if len(fe) != 4 {
		t.Fatalf("want 4 violations, got %d: %+v", len(fe), fe)
	}
	for _, c := range []struct{ field, msg string }{
		{"loanType", "must not be empty"},
		{"totalLoan", "greater than 0"},
		{"amountPaid", "greater than or equal to 0"},
		{"outstandingAmount", "greater than or equal to 0"},
	} {
		if !containsFieldMsg(fe, c.field, c.msg) {
			t.Fatalf("missing %s/%q in %+v", c.field, c.msg, fe)
		}
	}
}

func TestViolations_Valid(t *testing.T) {
	in := updateLoanReq{
		MobileNumber:      "+122234567890",
		LoanNumber:        "100646930341",
		LoanType:          "Home Loan",
		TotalLoan:         1,
		AmountPaid:        0,
		OutstandingAmount: 0,
	}
	if fe := Violations(in); len(fe) != 0 {
		t.Fatalf("expected no violations, got %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name  string `validate:"required"`
		Min   int    `json:"min" validate:"gte=10"`
		Max   int    `json:"max,omitempty" validate:"lte=5"`
		Other string `json:"other" validate:"email"`
	}
	fe := ToFieldErrors(NewValidator().Validate(P{Min: 9, Max: 6, Other: "x"}))

	if !containsFieldMsg(fe, "Name", "must not be empty") {
		t.Fatalf("missing required message for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for min: %+v", fe)
	}
	if !containsFieldMsg(fe, "max", "less than or equal to 5") {
		t.Fatalf("missing lte message for max: %+v", fe)
	}
	if !containsFieldMsg(fe, "other", "email validation failed") {
		t.Fatalf("missing fallback message for other: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || !strings.Contains(fe[0].Message, "boom") {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}

func TestViolations_AmountsAboveColumnRange(t *testing.T) {
	in := updateLoanReq{
		MobileNumber:      "+122234567890",
		LoanNumber:        "100646930341",
		LoanType:          "Home Loan",
		TotalLoan:         3_000_000_000,
		AmountPaid:        2_147_483_648,
		OutstandingAmount: 3_000_000_000,
	}
	fe := Violations(in)
	if len(fe) != 3 {
		t.Fatalf("want 3 violations, got %d: %+v", len(fe), fe)
	}
	for _, f := range []string{"totalLoan", "amountPaid", "outstandingAmount"} {
		if !containsFieldMsg(fe, f, "less than or equal to 2147483647") {
			t.Fatalf("missing upper bound for %s: %+v", f, fe)
		}
	}

	in.TotalLoan, in.AmountPaid, in.OutstandingAmount = 2_147_483_647, 2_147_483_647, 0
	if fe := Violations(in); len(fe) != 0 {
		t.Fatalf("max INT must pass, got %+v", fe)
	}
}
