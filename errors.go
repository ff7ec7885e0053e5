package bookkeep

import "errors"

var (
	// ErrOutOfRange reports a transaction or move index outside the valid
	// contiguous range of the operation.
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnknownHandle reports an account or unit handle that does not belong
	// to the book it was presented to.
	ErrUnknownHandle = errors.New("unknown handle")
)
