package bookkeep

import (
	"fmt"
	"iter"
	"maps"
)

// Balance is the aggregated position of one account at one point in the
// transaction sequence: an amount per unit, in the book's balance amount
// type. Balances are computed per query and owned by the caller; they are
// never stored in the book. As with sums, absent units count as zero and
// explicit zero entries are legal.
type Balance[W any] map[UnitKey]W

// UnitAmount returns the amount accumulated for a unit. The second return
// value is false when the balance holds no entry for the unit, which
// consumers treat as zero.
func (b Balance[W]) UnitAmount(unit UnitKey) (W, bool) {
	amount, ok := b[unit]
	return amount, ok
}

// Amounts yields every (unit, amount) entry of the balance, each unit at
// most once, in no particular order.
func (b Balance[W]) Amounts() iter.Seq2[UnitKey, W] {
	return func(yield func(UnitKey, W) bool) {
		for unit, amount := range b {
			if !yield(unit, amount) {
				return
			}
		}
	}
}

// AccountBalanceAtTransaction computes the balance of an account after the
// transaction at transactionIndex, folding every move of transactions 0
// through transactionIndex in ascending order: a move subtracts its sum
// where the account is on the debit side and adds it where the account is on
// the credit side, so a move with the account on both sides applies both
// legs and nets to zero.
//
// Unlike insertion indices, the query range excludes the count itself: with
// n transactions the valid indices are 0 through n-1, and anything else
// fails with ErrOutOfRange. An unknown account key fails with
// ErrUnknownHandle, and errors from the arithmetic's Widen are returned
// as they occur.
//
// Every query walks the sequence from the beginning; the cost is the number
// of moves up to transactionIndex, with no caching between queries.
func (b *Book[A, U, T, M, B, S, W]) AccountBalanceAtTransaction(account AccountKey, transactionIndex int) (Balance[W], error) {
	if err := b.resolveAccount(account); err != nil {
		return nil, err
	}
	if _, err := b.transactionAt(transactionIndex); err != nil {
		return nil, err
	}
	balance := make(Balance[W])
	for _, transaction := range b.transactions[:transactionIndex+1] {
		for _, move := range transaction.moves {
			if err := b.applyMove(balance, move, account); err != nil {
				return nil, err
			}
		}
	}
	return balance, nil
}

// AccountRunningBalance computes the account's balance after every
// transaction in one ascending walk. The result holds one balance per
// transaction, index-aligned with the sequence, each equal to what
// AccountBalanceAtTransaction would return for that index. For an account
// unknown to the book it fails with ErrUnknownHandle; for an empty book it
// returns an empty slice.
func (b *Book[A, U, T, M, B, S, W]) AccountRunningBalance(account AccountKey) ([]Balance[W], error) {
	if err := b.resolveAccount(account); err != nil {
		return nil, err
	}
	running := make([]Balance[W], 0, len(b.transactions))
	balance := make(Balance[W])
	for _, transaction := range b.transactions {
		for _, move := range transaction.moves {
			if err := b.applyMove(balance, move, account); err != nil {
				return nil, err
			}
		}
		running = append(running, maps.Clone(balance))
	}
	return running, nil
}

// applyMove folds one move into a running balance. Debit and credit are
// checked independently: a self-move applies both legs.
func (b *Book[A, U, T, M, B, S, W]) applyMove(balance Balance[W], move *Move[M, S], account AccountKey) error {
	if move.debit == account {
		if err := b.accumulate(balance, move.sum, b.arith.Sub); err != nil {
			return err
		}
	}
	if move.credit == account {
		if err := b.accumulate(balance, move.sum, b.arith.Add); err != nil {
			return err
		}
	}
	return nil
}

func (b *Book[A, U, T, M, B, S, W]) accumulate(balance Balance[W], sum Sum[S], op func(W, W) W) error {
	for unit, amount := range sum {
		wide, err := b.arith.Widen(amount)
		if err != nil {
			return fmt.Errorf("widen amount of unit (index %d): %w", unit.index, err)
		}
		current, ok := balance[unit]
		if !ok {
			current = b.arith.Zero()
		}
		balance[unit] = op(current, wide)
	}
	return nil
}
