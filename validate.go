package heapsim

import (
	stderrors "errors"

	"github.com/cockroachdb/errors"
	"github.com/kernelsim/heapsim/memutils"
)

var _ memutils.Validatable = (*Heap)(nil)

// Validate re-checks every invariant a Heap is expected to hold after any
// public operation returns. It returns nil when the heap is consistent, or
// a combined error naming every violation found otherwise. Validate is
// expensive (it walks the full block list and allocation map) and is meant
// for tests and diagnostics, not the allocation hot path.
func (h *Heap) Validate() error {
	var errs []error

	offset := 0
	for i, b := range h.blocks {
		if b.Size() <= 0 {
			errs = append(errs, errors.Newf("block %d at %d has non-positive size %d", i, b.Start(), b.Size()))
		}
		if b.Start() != offset {
			errs = append(errs, errors.Newf("block %d starts at %d, expected %d", i, b.Start(), offset))
		}
		if i > 0 && b.IsFree() && h.blocks[i-1].IsFree() {
			errs = append(errs, errors.Newf("blocks %d and %d are both free and adjacent", i-1, i))
		}
		if b.IsMarked() {
			errs = append(errs, errors.Newf("block %d at %d is marked outside of a collection cycle", i, b.Start()))
		}
		if !b.IsFree() && b.Start() != memutils.AlignUp(b.Start(), h.alignment) {
			errs = append(errs, errors.Newf("allocated block %d at %d is not aligned to %d", i, b.Start(), h.alignment))
		}
		offset += b.Size()
	}
	if offset != h.HeapSize() {
		errs = append(errs, errors.Newf("blocks cover %d bytes, expected %d", offset, h.HeapSize()))
	}

	seen := make(map[int]bool, h.alloc.Count())
	h.alloc.Iter(func(addr int, b *Block) bool {
		seen[addr] = true
		if b.IsFree() {
			errs = append(errs, errors.Newf("allocation map entry %d refers to a free block", addr))
		}
		if b.Start() != addr {
			errs = append(errs, errors.Newf("allocation map entry %d refers to a block whose start is %d", addr, b.Start()))
		}
		return false
	})
	for _, b := range h.blocks {
		if !b.IsFree() && !seen[b.Start()] {
			errs = append(errs, errors.Newf("allocated block at %d is missing from the allocation map", b.Start()))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	// stderrors.Join keeps every violation in Error(); CombineErrors would
	// show only the first and hide the rest as secondary errors.
	return stderrors.Join(errs...)
}
