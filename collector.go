package heapsim

import "github.com/kernelsim/heapsim/memutils"

// Collector implements a classical mark-and-sweep garbage collector over a
// Heap, driven by an externally-supplied RootSet.
type Collector struct {
	heap  *Heap
	roots *RootSet
}

// NewCollector returns a Collector that will trace heap starting from
// roots.
func NewCollector(heap *Heap, roots *RootSet) *Collector {
	return &Collector{heap: heap, roots: roots}
}

// Collect runs one mark-and-sweep cycle: every block reachable from the
// root set through reference chains remains allocated and unmarked when
// Collect returns; every other previously-allocated block is freed and
// coalesced with its free neighbours.
func (c *Collector) Collect() {
	memutils.DebugValidate(c.heap)

	for _, addr := range c.roots.Iterate() {
		c.mark(addr)
	}

	before := c.heap.HeapSize() - sumFreeBytes(c.heap.blocks)
	c.sweep()
	after := c.heap.HeapSize() - sumFreeBytes(c.heap.blocks)

	c.heap.logger.Debug("collection complete", "reclaimed_bytes", before-after)

	memutils.DebugValidate(c.heap)
}

// mark recursively marks the block at address and everything reachable from
// it. Absent, already-marked, and free blocks are the base cases that
// guarantee termination even in the presence of reference cycles.
func (c *Collector) mark(address int) {
	block, ok := c.heap.FindBlock(address)
	if !ok || block.IsMarked() || block.IsFree() {
		return
	}

	block.Mark()

	for _, ref := range block.References() {
		c.mark(ref)
	}
}

// sweep frees every allocated-but-unmarked block and resets the mark flag
// on every surviving block. Blocks to free are snapshotted before any Free
// call runs, since Free mutates the block list (via coalescing) and this
// loop must not observe those mutations mid-pass. Marks are cleared before
// any Free call too: Free runs its own debug self-check, which rejects any
// block still marked outside of a collection cycle, and survivors would
// still carry last cycle's mark if this ran after the free loop instead.
func (c *Collector) sweep() {
	var garbage []int
	for _, b := range c.heap.blocks {
		if !b.IsFree() && !b.IsMarked() {
			garbage = append(garbage, b.Start())
		}
	}

	for _, b := range c.heap.blocks {
		b.Unmark()
	}

	for _, addr := range garbage {
		// Free cannot fail here: addr was read from the allocations map's
		// own backing block list moments ago and nothing else in this
		// single-threaded pass could have freed it in between.
		_ = c.heap.Free(addr)
	}
}

func sumFreeBytes(blocks []*Block) int {
	total := 0
	for _, b := range blocks {
		if b.IsFree() {
			total += b.Size()
		}
	}
	return total
}
