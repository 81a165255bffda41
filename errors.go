package heapsim

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by Heap operations. Callers distinguish kinds
// with errors.Is; the wrapped context (address, size, strategy) is only
// for humans.
var (
	// ErrInvalidFree is returned by Free when the address is not the start
	// of a currently-allocated block: never allocated, already freed, or
	// not a valid block start.
	ErrInvalidFree error = errors.New("invalid free: address is not a currently-allocated block start")

	// ErrInvalidAccess is returned by Read and Write when the address does
	// not lie within any currently-allocated block.
	ErrInvalidAccess error = errors.New("invalid access: address is not within an allocated block")

	// ErrUnknownStrategy is returned by Allocate when the heap's strategy
	// does not match one of the declared Strategy constants. This is a
	// programmer error, not a data condition.
	ErrUnknownStrategy error = errors.New("unknown allocation strategy")
)
