// Package bookkeep implements an in-memory double-entry ledger.
//
// A Book owns accounts, units of value (most commonly currencies) and an
// ordered sequence of transactions. A transaction groups moves, and a move
// transfers a Sum (per-unit amounts) from a debit account to a credit
// account. Because every move always carries both a debit and a credit side,
// the ledger balances by construction: summed over all accounts, the effect
// of every move is exactly zero in every unit.
//
// Accounts and units are referenced through opaque handles minted by the book
// that created them. A handle from one book never resolves in another.
// Transactions and moves are addressed by contiguous position; inserting at a
// position shifts later entries up by one, and previously obtained positions
// are stale after the insertion.
//
// The book never interprets metadata. Each entity kind carries its own
// caller-chosen metadata type, fixed when the book is created:
//
//	type Payment struct {
//		ID   uuid.UUID
//		Memo string
//	}
//
//	book := bookkeep.New[string, string, time.Time, Payment]("2026 ledger", numeric.Decimal())
//	bank := book.NewAccount("bank")
//	wallet := book.NewAccount("wallet")
//	usd := book.NewUnit("USD")
//
//	_ = book.InsertTransaction(0, time.Now())
//	_ = book.InsertMove(0, 0, bank, wallet, bookkeep.SumOf(usd, decimal.NewFromInt(500)),
//		Payment{ID: uuid.New(), Memo: "withdrawal"})
//
//	balance, _ := book.AccountBalanceAtTransaction(wallet, 0)
//
// Amount types are equally caller-chosen. An Arithmetic supplied to New fixes
// the sum amount type, the wider balance amount type and the conversion
// between them; the numeric subpackage provides ready-made implementations
// backed by shopspring/decimal and math/big. Exact arithmetic is required for
// balances to be reproducible, so floating-point amount types are not
// suitable.
//
// A Book is a single mutable structure with no internal locking. Every
// operation is synchronous and runs to completion; mutations are
// all-or-nothing. Callers that share a book across goroutines must supply
// their own synchronization.
package bookkeep
