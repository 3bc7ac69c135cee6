package id

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	loanNumberMin = 100_000_000_000 // smallest 12-digit value
	loanNumberMax = 999_999_999_999
)

var loanNumberSpan = big.NewInt(loanNumberMax - loanNumberMin + 1)

// NewLoanNumber returns a random string of exactly 12 decimal digits.
func NewLoanNumber() string {
	n, err := rand.Int(rand.Reader, loanNumberSpan)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic("id: reading random source: " + err.Error())
	}
	return strconv.FormatInt(loanNumberMin+n.Int64(), 10)
}
