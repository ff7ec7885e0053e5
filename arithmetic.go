package bookkeep

// Arithmetic fixes the numeric behavior of a book: the sum amount type S
// moved by individual moves, the balance amount type W accumulated by
// queries, and the conversion from one to the other.
//
// Balances must be exactly reproducible, so Add and Sub are required to be
// exact, commutative and associative over W. Wide integers and decimals
// qualify; floating-point types do not. W is usually wider than S so that
// accumulating many sums cannot overflow.
type Arithmetic[S, W any] interface {
	// Zero returns the additive identity of the balance amount type.
	Zero() W

	// Add returns a + b. It must not modify its operands.
	Add(a, b W) W

	// Sub returns a - b. It must not modify its operands.
	Sub(a, b W) W

	// Widen converts a sum amount to a balance amount. The conversion must
	// be value-preserving: implementations either widen exactly or report an
	// error, never truncate silently.
	Widen(amount S) (W, error)
}
