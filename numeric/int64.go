package numeric

import (
	"math/big"

	"github.com/simaogato/bookkeep"
)

// int64Arithmetic moves fixed-width integer sums and accumulates them into
// big.Int balances, so no amount of accumulation can overflow.
type int64Arithmetic struct{}

// Int64 returns the arithmetic for int64 sum amounts widened into *big.Int
// balances.
func Int64() bookkeep.Arithmetic[int64, *big.Int] {
	return int64Arithmetic{}
}

func (int64Arithmetic) Zero() *big.Int {
	return new(big.Int)
}

func (int64Arithmetic) Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

func (int64Arithmetic) Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

func (int64Arithmetic) Widen(amount int64) (*big.Int, error) {
	return big.NewInt(amount), nil
}
