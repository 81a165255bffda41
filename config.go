package heapsim

import "log/slog"

// DefaultAlignment is the alignment, in bytes, applied to every address
// Allocate returns when a Config does not override it.
const DefaultAlignment uint = 8

// Config bundles the parameters used to construct a Heap, following the
// options-struct convention used elsewhere in this lineage for objects with
// more than a couple of constructor parameters.
type Config struct {
	// Size is the number of bytes in the heap's backing buffer. Must be
	// positive.
	Size int
	// Strategy is the placement policy used by Allocate. Defaults to
	// FirstFit when left at the zero value.
	Strategy Strategy
	// Alignment is the byte alignment enforced on addresses returned by
	// Allocate. Defaults to DefaultAlignment when zero. Must be a power of
	// two.
	Alignment uint
	// Logger receives debug/warn-level observability events (allocation
	// failures, invalid frees/accesses, collection summaries). Defaults to
	// slog.Default() when nil. Never consulted for control flow.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Alignment == 0 {
		c.Alignment = DefaultAlignment
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
