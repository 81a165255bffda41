package heapsim_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kernelsim/heapsim"
)

func TestRootSetAddRemoveContains(t *testing.T) {
	rs := heapsim.NewRootSet()
	require.False(t, rs.Contains(8))

	rs.Add(8)
	require.True(t, rs.Contains(8))

	rs.Remove(8)
	require.False(t, rs.Contains(8))
}

func TestRootSetIterateIsUnordered(t *testing.T) {
	rs := heapsim.NewRootSet()
	rs.Add(24)
	rs.Add(8)
	rs.Add(16)

	got := rs.Iterate()
	sort.Ints(got)
	require.Equal(t, []int{8, 16, 24}, got)
}

func TestRootSetClear(t *testing.T) {
	rs := heapsim.NewRootSet()
	rs.Add(8)
	rs.Add(16)

	rs.Clear()
	require.Empty(t, rs.Iterate())
	require.False(t, rs.Contains(8))
}

func TestRootSetToleratesRemovingAbsentAddress(t *testing.T) {
	rs := heapsim.NewRootSet()
	require.NotPanics(t, func() { rs.Remove(999) })
}
