package bookkeep

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Book is a double-entry ledger: it owns accounts, units and an ordered
// sequence of transactions, and answers balance queries against that
// sequence. The seven type parameters are fixed for the lifetime of the
// instance:
//
//	A, U, T, M, B   metadata types of accounts, units, transactions, moves
//	                and the book itself
//	S, W            sum amount type and balance amount type, tied together
//	                by the Arithmetic supplied to New
//
// All entities live until the book is dropped; there is no removal, and
// nothing structural changes after insertion. A Book must be used through
// the pointer returned by New.
type Book[A, U, T, M, B, S, W any] struct {
	id           uuid.UUID
	meta         B
	arith        Arithmetic[S, W]
	accounts     []*Account[A]
	units        []*Unit[U]
	transactions []*Transaction[T, M, S]
}

// New creates an empty book carrying the given metadata. The arithmetic
// determines the book's amount types and must not be nil. The metadata
// types of accounts, units, transactions and moves cannot be inferred from
// the arguments, so callers name them explicitly:
//
//	book := bookkeep.New[string, string, string, string]("ledger", numeric.Decimal())
func New[A, U, T, M, B, S, W any](meta B, arith Arithmetic[S, W]) *Book[A, U, T, M, B, S, W] {
	return &Book[A, U, T, M, B, S, W]{
		id:    uuid.New(),
		meta:  meta,
		arith: arith,
	}
}

// Metadata returns the book's metadata.
func (b *Book[A, U, T, M, B, S, W]) Metadata() B {
	return b.meta
}

// SetBookMetadata replaces the book's metadata.
func (b *Book[A, U, T, M, B, S, W]) SetBookMetadata(meta B) {
	b.meta = meta
}

// NewAccount adds an account holding the given metadata and returns its
// freshly minted key. It always succeeds.
func (b *Book[A, U, T, M, B, S, W]) NewAccount(meta A) AccountKey {
	b.accounts = append(b.accounts, &Account[A]{meta: meta})
	return AccountKey{book: b.id, index: len(b.accounts) - 1}
}

// GetAccount returns the account identified by key. It fails with
// ErrUnknownHandle when the key was not minted by this book.
func (b *Book[A, U, T, M, B, S, W]) GetAccount(key AccountKey) (*Account[A], error) {
	if err := b.resolveAccount(key); err != nil {
		return nil, err
	}
	return b.accounts[key.index], nil
}

// SetAccountMetadata replaces the metadata of the account identified by key.
func (b *Book[A, U, T, M, B, S, W]) SetAccountMetadata(key AccountKey, meta A) error {
	if err := b.resolveAccount(key); err != nil {
		return err
	}
	b.accounts[key.index].meta = meta
	return nil
}

// Accounts yields every account of the book as (key, account) pairs, in no
// particular order.
func (b *Book[A, U, T, M, B, S, W]) Accounts() iter.Seq2[AccountKey, *Account[A]] {
	return func(yield func(AccountKey, *Account[A]) bool) {
		for i, account := range b.accounts {
			if !yield(AccountKey{book: b.id, index: i}, account) {
				return
			}
		}
	}
}

// NewUnit adds a unit holding the given metadata and returns its freshly
// minted key. It always succeeds.
func (b *Book[A, U, T, M, B, S, W]) NewUnit(meta U) UnitKey {
	b.units = append(b.units, &Unit[U]{meta: meta})
	return UnitKey{book: b.id, index: len(b.units) - 1}
}

// GetUnit returns the unit identified by key. It fails with ErrUnknownHandle
// when the key was not minted by this book.
func (b *Book[A, U, T, M, B, S, W]) GetUnit(key UnitKey) (*Unit[U], error) {
	if err := b.resolveUnit(key); err != nil {
		return nil, err
	}
	return b.units[key.index], nil
}

// SetUnitMetadata replaces the metadata of the unit identified by key.
func (b *Book[A, U, T, M, B, S, W]) SetUnitMetadata(key UnitKey, meta U) error {
	if err := b.resolveUnit(key); err != nil {
		return err
	}
	b.units[key.index].meta = meta
	return nil
}

// Units yields every unit of the book as (key, unit) pairs, in no particular
// order.
func (b *Book[A, U, T, M, B, S, W]) Units() iter.Seq2[UnitKey, *Unit[U]] {
	return func(yield func(UnitKey, *Unit[U]) bool) {
		for i, unit := range b.units {
			if !yield(UnitKey{book: b.id, index: i}, unit) {
				return
			}
		}
	}
}

// InsertTransaction splices an empty transaction into the sequence at index.
// Valid indices run from 0 through the current transaction count, where the
// count itself appends. Transactions at or after index are renumbered one
// higher, so transaction indices obtained before the call are stale after
// it; callers re-query instead of holding on to them. Any other index fails
// with ErrOutOfRange and leaves the book unchanged.
func (b *Book[A, U, T, M, B, S, W]) InsertTransaction(index int, meta T) error {
	if index < 0 || index > len(b.transactions) {
		return fmt.Errorf("cannot insert transaction at index %d (valid range 0 to %d): %w",
			index, len(b.transactions), ErrOutOfRange)
	}
	b.transactions = slices.Insert(b.transactions, index, &Transaction[T, M, S]{meta: meta})
	return nil
}

// Transactions yields the book's transactions as (index, transaction) pairs
// in ascending index order.
func (b *Book[A, U, T, M, B, S, W]) Transactions() iter.Seq2[int, *Transaction[T, M, S]] {
	return func(yield func(int, *Transaction[T, M, S]) bool) {
		for i, transaction := range b.transactions {
			if !yield(i, transaction) {
				return
			}
		}
	}
}

// SetTransactionMetadata replaces the metadata of the transaction at index.
func (b *Book[A, U, T, M, B, S, W]) SetTransactionMetadata(index int, meta T) error {
	transaction, err := b.transactionAt(index)
	if err != nil {
		return err
	}
	transaction.meta = meta
	return nil
}

// InsertMove splices a move into the transaction at transactionIndex. The
// debit and credit keys and every unit in the sum must have been minted by
// this book, and moveIndex runs from 0 through the transaction's current
// move count. Moves at or after moveIndex are renumbered one higher, with
// the same staleness contract as InsertTransaction. The book keeps its own
// copy of the sum. On any validation failure nothing is inserted: the book
// is exactly as it was.
func (b *Book[A, U, T, M, B, S, W]) InsertMove(transactionIndex, moveIndex int,
	debit, credit AccountKey, sum Sum[S], meta M) error {
	transaction, err := b.transactionAt(transactionIndex)
	if err != nil {
		return err
	}
	if err := b.resolveAccount(debit); err != nil {
		return fmt.Errorf("debit account: %w", err)
	}
	if err := b.resolveAccount(credit); err != nil {
		return fmt.Errorf("credit account: %w", err)
	}
	if moveIndex < 0 || moveIndex > len(transaction.moves) {
		return fmt.Errorf("cannot insert move at index %d (valid range 0 to %d): %w",
			moveIndex, len(transaction.moves), ErrOutOfRange)
	}
	for unit := range sum {
		if err := b.resolveUnit(unit); err != nil {
			return fmt.Errorf("sum unit: %w", err)
		}
	}
	transaction.moves = slices.Insert(transaction.moves, moveIndex, &Move[M, S]{
		meta:   meta,
		debit:  debit,
		credit: credit,
		sum:    sum.clone(),
	})
	return nil
}

// SetMoveMetadata replaces the metadata of the move at moveIndex within the
// transaction at transactionIndex.
func (b *Book[A, U, T, M, B, S, W]) SetMoveMetadata(transactionIndex, moveIndex int, meta M) error {
	transaction, err := b.transactionAt(transactionIndex)
	if err != nil {
		return err
	}
	if moveIndex < 0 || moveIndex >= len(transaction.moves) {
		return fmt.Errorf("no move at index %d in transaction %d (transaction has %d): %w",
			moveIndex, transactionIndex, len(transaction.moves), ErrOutOfRange)
	}
	transaction.moves[moveIndex].meta = meta
	return nil
}

func (b *Book[A, U, T, M, B, S, W]) resolveAccount(key AccountKey) error {
	if key.book != b.id || key.index < 0 || key.index >= len(b.accounts) {
		return fmt.Errorf("account key (index %d) does not belong to this book: %w",
			key.index, ErrUnknownHandle)
	}
	return nil
}

func (b *Book[A, U, T, M, B, S, W]) resolveUnit(key UnitKey) error {
	if key.book != b.id || key.index < 0 || key.index >= len(b.units) {
		return fmt.Errorf("unit key (index %d) does not belong to this book: %w",
			key.index, ErrUnknownHandle)
	}
	return nil
}

func (b *Book[A, U, T, M, B, S, W]) transactionAt(index int) (*Transaction[T, M, S], error) {
	if index < 0 || index >= len(b.transactions) {
		return nil, fmt.Errorf("no transaction at index %d (book has %d): %w",
			index, len(b.transactions), ErrOutOfRange)
	}
	return b.transactions[index], nil
}
