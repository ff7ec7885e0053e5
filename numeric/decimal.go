// Package numeric provides ready-made Arithmetic implementations for common
// amount types. All of them are exact: balances accumulated through them are
// reproducible regardless of accumulation order.
package numeric

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/bookkeep"
)

// decimalArithmetic keeps sums and balances in shopspring decimals, which
// are arbitrary-precision and need no widening.
type decimalArithmetic struct{}

// Decimal returns the arithmetic for decimal.Decimal amounts on both the sum
// and the balance side.
func Decimal() bookkeep.Arithmetic[decimal.Decimal, decimal.Decimal] {
	return decimalArithmetic{}
}

func (decimalArithmetic) Zero() decimal.Decimal {
	return decimal.Zero
}

func (decimalArithmetic) Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

func (decimalArithmetic) Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

func (decimalArithmetic) Widen(amount decimal.Decimal) (decimal.Decimal, error) {
	return amount, nil
}
