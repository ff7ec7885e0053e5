package bookkeep

// Move is a directed transfer of a sum from a debit account to a credit
// account. The two sides make every move balance by construction: the debit
// account's balance decreases by the sum, the credit account's increases by
// it, and the net effect across all accounts is zero in every unit. A move
// whose debit and credit accounts coincide is legal; it records both flows
// and nets to zero.
//
// Once inserted, a move's accounts and sum never change. Only its metadata
// can be replaced, through Book.SetMoveMetadata.
type Move[M, S any] struct {
	meta   M
	debit  AccountKey
	credit AccountKey
	sum    Sum[S]
}

// DebitAccountKey returns the key of the account the sum moves out of.
func (m *Move[M, S]) DebitAccountKey() AccountKey {
	return m.debit
}

// CreditAccountKey returns the key of the account the sum moves into.
func (m *Move[M, S]) CreditAccountKey() AccountKey {
	return m.credit
}

// Sum returns a copy of the moved sum. Modifying the copy does not affect
// the book.
func (m *Move[M, S]) Sum() Sum[S] {
	return m.sum.clone()
}

// Metadata returns the move's metadata.
func (m *Move[M, S]) Metadata() M {
	return m.meta
}
