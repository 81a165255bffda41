package heapsim

// Block describes one contiguous region of a Heap's backing buffer: either
// a free region available for allocation, or a live allocation. Blocks are
// owned exclusively by the Heap that created them; the only supported
// mutations are the methods below.
type Block struct {
	start      int
	size       int
	free       bool
	marked     bool
	references []int
}

// newBlock creates a free block covering [start, start+size).
func newBlock(start, size int) *Block {
	return &Block{
		start: start,
		size:  size,
		free:  true,
	}
}

// Start returns the byte offset of this block within the heap's buffer.
func (b *Block) Start() int { return b.start }

// Size returns the number of bytes this block covers.
func (b *Block) Size() int { return b.size }

// IsFree reports whether the block is free, that is, holds no live allocation.
func (b *Block) IsFree() bool { return b.free }

// SetSize resizes the block in place. Used by the heap when splitting or
// coalescing; callers outside this package should not need it.
func (b *Block) SetSize(size int) { b.size = size }

// SetFree flips the block's allocation status.
func (b *Block) SetFree(free bool) { b.free = free }

// SetStart moves the block's origin. Used by the heap when carving an
// aligned-padding prefix off the front of a block into a separate free block.
func (b *Block) SetStart(start int) { b.start = start }

// Mark flags the block as reachable during a collection cycle.
func (b *Block) Mark() { b.marked = true }

// Unmark clears the reachability flag. Called by the collector's sweep on
// every surviving block once a cycle completes.
func (b *Block) Unmark() { b.marked = false }

// IsMarked reports the block's reachability flag. Only meaningful while a
// collection cycle is in progress; false at all other times.
func (b *Block) IsMarked() bool { return b.marked }

// AddReference appends addr to this block's outgoing reference list. The
// list is not deduplicated: adding the same address twice records it twice,
// and the mark phase must tolerate that.
func (b *Block) AddReference(addr int) {
	b.references = append(b.references, addr)
}

// RemoveReference removes the first occurrence of addr from the reference
// list, if present. A no-op if addr does not occur.
func (b *Block) RemoveReference(addr int) {
	for i, ref := range b.references {
		if ref == addr {
			b.references = append(b.references[:i], b.references[i+1:]...)
			return
		}
	}
}

// References returns the block's outgoing reference addresses. The returned
// slice aliases internal state and must not be mutated by the caller.
func (b *Block) References() []int {
	return b.references
}
