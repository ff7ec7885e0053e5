package bookkeep

import (
	"iter"
	"maps"
)

// Sum is the value transferred by a single move: an amount per unit. Units
// absent from a sum count as zero, and entries may hold zero explicitly; two
// sums describe the same value when their entries agree after treating
// missing units as zero.
type Sum[S any] map[UnitKey]S

// NewSum returns an empty sum.
func NewSum[S any]() Sum[S] {
	return Sum[S]{}
}

// SumOf returns a sum holding a single amount of a single unit.
func SumOf[S any](unit UnitKey, amount S) Sum[S] {
	return Sum[S]{unit: amount}
}

// SetAmountForUnit sets the amount of one unit, overwriting any previous
// amount for that unit.
func (s Sum[S]) SetAmountForUnit(unit UnitKey, amount S) {
	s[unit] = amount
}

// UnitAmount returns the amount stored for a unit. The second return value
// is false when the sum holds no entry for the unit, which consumers treat
// as zero.
func (s Sum[S]) UnitAmount(unit UnitKey) (S, bool) {
	amount, ok := s[unit]
	return amount, ok
}

// Amounts yields every (unit, amount) entry of the sum, each unit at most
// once, in no particular order.
func (s Sum[S]) Amounts() iter.Seq2[UnitKey, S] {
	return func(yield func(UnitKey, S) bool) {
		for unit, amount := range s {
			if !yield(unit, amount) {
				return
			}
		}
	}
}

// clone returns an independent copy so that book-owned sums never alias
// caller-owned maps.
func (s Sum[S]) clone() Sum[S] {
	if s == nil {
		return Sum[S]{}
	}
	return maps.Clone(s)
}
