package bookkeep

import "github.com/google/uuid"

// UnitKey identifies one unit of one book. It behaves exactly like an
// AccountKey: minted on insertion, opaque, never valid in another book.
type UnitKey struct {
	book  uuid.UUID
	index int
}

// Unit stores the caller-supplied metadata of a unit of value, most commonly
// the minor unit of a currency.
type Unit[U any] struct {
	meta U
}

// Metadata returns the unit's metadata.
func (u *Unit[U]) Metadata() U {
	return u.meta
}
