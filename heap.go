package heapsim

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/kernelsim/heapsim/memutils"
)

// Heap simulates a low-level heap manager over a fixed-size backing buffer
// of bytes. It is not safe for concurrent use: every operation is a
// straight-line synchronous procedure, and callers that need concurrent
// access must confine a Heap to one goroutine or wrap it in their own
// mutex.
type Heap struct {
	buffer    []byte
	blocks    []*Block
	alloc     *swiss.Map[int, *Block]
	strategy  Strategy
	alignment uint
	cursor    int
	roots     *RootSet
	logger    *slog.Logger
}

// NewHeap constructs a Heap whose backing buffer is cfg.Size bytes, covered
// initially by a single free block.
func NewHeap(cfg Config) *Heap {
	cfg = cfg.withDefaults()
	if cfg.Size <= 0 {
		panic("heapsim: heap size must be positive")
	}
	if err := memutils.CheckPow2(cfg.Alignment, "Alignment"); err != nil {
		panic(err)
	}

	h := &Heap{
		buffer:    make([]byte, cfg.Size),
		blocks:    []*Block{newBlock(0, cfg.Size)},
		alloc:     swiss.NewMap[int, *Block](16),
		strategy:  cfg.Strategy,
		alignment: cfg.Alignment,
		roots:     NewRootSet(),
		logger:    cfg.Logger,
	}
	return h
}

// SetStrategy changes the placement policy used by future Allocate calls.
func (h *Heap) SetStrategy(s Strategy) {
	h.strategy = s
}

// HeapSize returns the total number of bytes in the backing buffer.
func (h *Heap) HeapSize() int {
	return len(h.buffer)
}

// RootSet returns the heap's owned root set.
func (h *Heap) RootSet() *RootSet {
	return h.roots
}

// Blocks returns the current block list covering [0, HeapSize()). The
// returned slice is a defensive copy of the slice header, but the *Block
// elements alias live state: callers get read access to the same objects
// the heap mutates.
func (h *Heap) Blocks() []*Block {
	out := make([]*Block, len(h.blocks))
	copy(out, h.blocks)
	return out
}

// Allocations returns a fresh snapshot map from block start address to the
// Block currently allocated there.
func (h *Heap) Allocations() map[int]*Block {
	out := make(map[int]*Block, h.alloc.Count())
	h.alloc.Iter(func(addr int, b *Block) bool {
		out[addr] = b
		return false
	})
	return out
}

// FindBlock returns the block whose currently-allocated start equals start,
// if any. It does not find free or padding blocks.
func (h *Heap) FindBlock(start int) (*Block, bool) {
	return h.alloc.Get(start)
}

// indexOf returns the position of block in h.blocks, or -1 if not present.
// blocks are compared by identity.
func (h *Heap) indexOf(block *Block) int {
	for i, b := range h.blocks {
		if b == block {
			return i
		}
	}
	return -1
}

// alignUp rounds addr up to the next multiple of the heap's alignment.
func (h *Heap) alignUp(addr int) int {
	return memutils.AlignUp(addr, h.alignment)
}

// Allocate reserves size bytes and returns the aligned start address of the
// new allocation. It returns ok=false (not an error) when no free block can
// accommodate the request after alignment padding.
func (h *Heap) Allocate(size int) (int, bool, error) {
	if size < 0 {
		return 0, false, errors.Newf("heapsim: negative allocation size %d", size)
	}

	idx, ok, err := h.strategy.choose(h.blocks, size, h.cursor)
	if err != nil {
		return 0, false, errors.Wrapf(err, "strategy %s", h.strategy)
	}
	if !ok {
		h.logger.Debug("allocate failed: no free block large enough", "size", size, "strategy", h.strategy.String())
		return 0, false, nil
	}

	block := h.blocks[idx]
	alignedStart := h.alignUp(block.Start())
	padding := alignedStart - block.Start()

	if block.Size() < padding+size {
		// The chosen block cannot hold the request once alignment padding
		// is accounted for. Fails outright rather than retrying another
		// candidate block.
		h.logger.Debug("allocate failed: chosen block insufficient after padding", "size", size, "padding", padding)
		return 0, false, nil
	}
	if size == 0 && block.Size() == padding {
		// The padding needed to align this block consumes it exactly:
		// carving off the padding prefix here would leave a zero-length
		// block behind to finalise as the allocation, which the split-skip
		// below does not protect against on its own.
		h.logger.Debug("allocate failed: chosen block has no bytes left after padding", "size", size, "padding", padding)
		return 0, false, nil
	}

	if padding > 0 {
		paddingBlock := newBlock(block.Start(), padding)
		h.blocks = append(h.blocks, nil)
		copy(h.blocks[idx+1:], h.blocks[idx:])
		h.blocks[idx] = paddingBlock
		idx++

		block.SetStart(alignedStart)
		block.SetSize(block.Size() - padding)
	}

	// A zero-size request consumes the whole chosen block rather than
	// splitting off a remainder of the same size, which would leave a
	// zero-length block behind at block.Start().
	if size > 0 && block.Size() > size {
		remainder := newBlock(block.Start()+size, block.Size()-size)
		h.blocks = append(h.blocks, nil)
		copy(h.blocks[idx+2:], h.blocks[idx+1:])
		h.blocks[idx+1] = remainder
		block.SetSize(size)
	}

	block.SetFree(false)
	h.alloc.Put(block.Start(), block)
	h.cursor = idx

	memutils.DebugValidate(h)

	return block.Start(), true, nil
}

// Free releases the allocation starting at address, then coalesces it with
// any free neighbours. It returns ErrInvalidFree if address is not the
// start of a currently-allocated block.
func (h *Heap) Free(address int) error {
	block, ok := h.alloc.Get(address)
	if !ok {
		h.logger.Warn("invalid free", "address", address)
		return errors.Wrapf(ErrInvalidFree, "address %d", address)
	}

	block.SetFree(true)
	h.alloc.Delete(address)

	idx := h.indexOf(block)
	if idx == -1 {
		// Cannot happen if the allocation map and block list are kept in
		// sync, which every mutating path in this file preserves.
		return errors.Newf("heapsim: allocation map referenced a block not present in the block list (address %d)", address)
	}

	if idx+1 < len(h.blocks) && h.blocks[idx+1].IsFree() {
		next := h.blocks[idx+1]
		block.SetSize(block.Size() + next.Size())
		h.blocks = append(h.blocks[:idx+1], h.blocks[idx+2:]...)
	}

	if idx > 0 && h.blocks[idx-1].IsFree() {
		prev := h.blocks[idx-1]
		prev.SetSize(prev.Size() + block.Size())
		h.blocks = append(h.blocks[:idx], h.blocks[idx+1:]...)
	}

	memutils.DebugValidate(h)

	return nil
}

// findBlockContaining returns the allocated block that contains address, or
// nil if address does not lie within any currently-allocated block.
func (h *Heap) findBlockContaining(address int) *Block {
	for _, b := range h.blocks {
		if !b.IsFree() && address >= b.Start() && address < b.Start()+b.Size() {
			return b
		}
	}
	return nil
}

// Write stores value at address. It returns ErrInvalidAccess if address
// does not lie within an allocated block.
func (h *Heap) Write(address int, value byte) error {
	block := h.findBlockContaining(address)
	if block == nil {
		h.logger.Warn("invalid write", "address", address)
		return errors.Wrapf(ErrInvalidAccess, "address %d", address)
	}
	h.buffer[address] = value
	return nil
}

// Read returns the byte stored at address. It returns ErrInvalidAccess if
// address does not lie within an allocated block.
func (h *Heap) Read(address int) (byte, error) {
	block := h.findBlockContaining(address)
	if block == nil {
		h.logger.Warn("invalid read", "address", address)
		return 0, errors.Wrapf(ErrInvalidAccess, "address %d", address)
	}
	return h.buffer[address], nil
}
