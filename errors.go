package match

import "errors"

var (
	// ErrPoolExhausted is raised when Pool.Acquire is called with no
	// free slots left. Fatal: the caller sized the pool too small for
	// its workload.
	ErrPoolExhausted = errors.New("match: pool exhausted")

	// ErrAlienPointer is raised when Pool.Release is given a handle
	// that does not belong to this pool, or a slot that is already
	// free. Fatal: indicates a bug in the caller or in the book
	// itself.
	ErrAlienPointer = errors.New("match: alien or already-released handle")

	// errFillExceedsRemaining is raised when a fill quantity larger
	// than an order's remaining quantity is applied. The matching
	// loop never computes such a quantity; reaching this is a bug.
	errFillExceedsRemaining = errors.New("match: fill exceeds remaining quantity")
)

// errFatal panics after logging err at Error level. Used for the three
// invariant violations the core treats as unrecoverable: a fill
// exceeding remaining quantity, and the two pool conditions above.
func errFatal(err error, args ...any) error {
	logger.Error(err.Error(), args...)
	panic(err)
}
