package bookkeep

import "github.com/google/uuid"

// AccountKey identifies one account of one book. Keys are minted by
// Book.NewAccount, stay valid for the lifetime of that book, and are opaque:
// the only useful operations are copying, comparing and passing them back to
// the book that issued them. The zero value is valid in no book.
type AccountKey struct {
	book  uuid.UUID
	index int
}

// Account stores the caller-supplied metadata of a ledger account. Accounts
// are owned by their book and reached through an AccountKey.
type Account[A any] struct {
	meta A
}

// Metadata returns the account's metadata.
func (a *Account[A]) Metadata() A {
	return a.meta
}
