package heapsim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kernelsim/heapsim"
)

func TestBlockAccessorsAndMutators(t *testing.T) {
	h := heapsim.NewHeap(heapsim.Config{Size: 64})
	addr, ok, err := h.Allocate(16)
	require.NoError(t, err)
	require.True(t, ok)

	b, ok := h.FindBlock(addr)
	require.True(t, ok)
	require.Equal(t, addr, b.Start())
	require.Equal(t, 16, b.Size())
	require.False(t, b.IsFree())
	require.False(t, b.IsMarked())

	b.Mark()
	require.True(t, b.IsMarked())
	b.Unmark()
	require.False(t, b.IsMarked())
}

func TestBlockReferencesAllowDuplicatesAndOrderedRemoval(t *testing.T) {
	h := heapsim.NewHeap(heapsim.Config{Size: 64})
	a, _, _ := h.Allocate(8)
	b, _ := h.FindBlock(a)

	b.AddReference(40)
	b.AddReference(48)
	b.AddReference(40)
	require.Equal(t, []int{40, 48, 40}, b.References())

	b.RemoveReference(40)
	require.Equal(t, []int{48, 40}, b.References())

	b.RemoveReference(999)
	require.Equal(t, []int{48, 40}, b.References())
}
