package heapsim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func blocksOfSizes(sizes ...int) []*Block {
	start := 0
	out := make([]*Block, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, newBlock(start, s))
		start += s
	}
	return out
}

func TestChooseFirstFit(t *testing.T) {
	blocks := blocksOfSizes(8, 32, 16)
	idx, ok, err := chooseFirstFit(blocks, 10)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestChooseBestFitPicksSmallestSufficient(t *testing.T) {
	blocks := blocksOfSizes(8, 32, 16)
	idx, ok, err := chooseBestFit(blocks, 10)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, idx)
}

func TestChooseWorstFitPicksLargest(t *testing.T) {
	blocks := blocksOfSizes(8, 32, 16)
	idx, ok, err := chooseWorstFit(blocks, 10)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestWorstFitTieBreakIsFirstInListOrder(t *testing.T) {
	blocks := blocksOfSizes(16, 16, 8)
	idx, ok, err := chooseWorstFit(blocks, 10)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestBestFitTieBreakIsFirstInListOrder(t *testing.T) {
	blocks := blocksOfSizes(16, 16, 8)
	idx, ok, err := chooseBestFit(blocks, 10)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestChooseNextFitWrapsFromCursor(t *testing.T) {
	blocks := blocksOfSizes(16, 16, 16)
	blocks[1].SetFree(false)
	blocks[2].SetFree(false)

	idx, ok, err := chooseNextFit(blocks, 8, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestChooseNoneFitsReturnsFalse(t *testing.T) {
	blocks := blocksOfSizes(4, 4)
	_, ok, err := chooseFirstFit(blocks, 10)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStrategyChooseRejectsUnknownStrategy(t *testing.T) {
	blocks := blocksOfSizes(16)
	_, _, err := Strategy(99).choose(blocks, 8, 0)
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestStrategyString(t *testing.T) {
	require.Equal(t, "FirstFit", FirstFit.String())
	require.Equal(t, "BestFit", BestFit.String())
	require.Equal(t, "WorstFit", WorstFit.String())
	require.Equal(t, "NextFit", NextFit.String())
	require.Equal(t, "Unknown", Strategy(99).String())
}
