package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error CheckPow2 wraps when a heap's alignment (or
// any other value that must divide evenly into aligned addresses) is not a
// power of two.
var PowerOfTwoError error = errors.New("alignment must be a power of two bytes")
