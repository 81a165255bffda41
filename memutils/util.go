package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

// Validatable is implemented by anything that can re-check its own
// invariants on demand. Heap implements it so DebugValidate can run its
// self-check after every mutating call in debug builds.
type Validatable interface {
	Validate() error
}

type Number interface {
	~int | ~uint
}

// CheckPow2 returns a wrapped PowerOfTwoError if number is not a power of
// two. Used to enforce that a Heap's configured alignment is valid before
// any address arithmetic depends on it.
func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the nearest multiple of alignment. Used both
// to compute the padded start address Allocate returns and, in Validate,
// to confirm an already-allocated block's start is still a multiple of the
// heap's alignment.
func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

