package heapsim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDetectsMisalignedAllocation(t *testing.T) {
	h := NewHeap(Config{Size: 64, Alignment: 16})

	// Bypass Allocate to corrupt the block list directly: an allocated
	// block whose start is not a multiple of the heap's alignment.
	block := newBlock(1, 15)
	block.SetFree(false)
	h.blocks = []*Block{block, newBlock(16, 48)}
	h.alloc.Put(1, block)

	err := h.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not aligned")
}
