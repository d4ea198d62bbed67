package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL = 1_000_000_000

// ErrInvalidSOLAmount is returned when a SOL amount cannot be represented as
// a whole number of lamports.
var ErrInvalidSOLAmount = errors.New("invalid SOL amount")

var lamportsPerSOL = decimal.NewFromInt(LamportsPerSOL)

// Lamports is an amount in the smallest unit of the native currency. Every
// amount that reaches a transaction is expressed in Lamports.
type Lamports uint64

// SOL returns the amount in SOL. It is meant for display only.
func (l Lamports) SOL() decimal.Decimal {
	return decimal.NewFromUint64(uint64(l)).Div(lamportsPerSOL)
}

// String formats the amount in SOL with nine decimal places.
func (l Lamports) String() string {
	return l.SOL().StringFixed(9) + " SOL"
}

// ParseSOL converts a decimal SOL string (e.g. "0.1") into lamports.
// Amounts that are negative, exceed the uint64 range, or carry more
// precision than one lamport are rejected.
func ParseSOL(s string) (Lamports, error) {
	sol, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSOLAmount, err)
	}

	if sol.IsNegative() {
		return 0, fmt.Errorf("%w: %s is negative", ErrInvalidSOLAmount, s)
	}

	lamports := sol.Mul(lamportsPerSOL)
	if !lamports.Equal(lamports.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s is more precise than one lamport", ErrInvalidSOLAmount, s)
	}

	n := lamports.BigInt()
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: %s overflows", ErrInvalidSOLAmount, s)
	}

	return Lamports(n.Uint64()), nil
}

// AbsDiff returns |a - b| without wrapping around.
func AbsDiff(a, b Lamports) Lamports {
	if a > b {
		return a - b
	}

	return b - a
}
