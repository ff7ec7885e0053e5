package bookkeep

import "iter"

// Transaction is an ordered group of moves. Transactions own their moves;
// both are addressed by contiguous position within their parent.
type Transaction[T, M, S any] struct {
	meta  T
	moves []*Move[M, S]
}

// Moves yields the transaction's moves as (index, move) pairs in ascending
// index order.
func (t *Transaction[T, M, S]) Moves() iter.Seq2[int, *Move[M, S]] {
	return func(yield func(int, *Move[M, S]) bool) {
		for i, move := range t.moves {
			if !yield(i, move) {
				return
			}
		}
	}
}

// Metadata returns the transaction's metadata.
func (t *Transaction[T, M, S]) Metadata() T {
	return t.meta
}
