// Package stats computes read-only usage snapshots of a heapsim.Heap, kept
// as a thin presentation layer separate from the core allocator, following
// memutils.Statistics's split between the core allocator and its reporting
// utilities.
package stats

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"github.com/kernelsim/heapsim"
	"github.com/kernelsim/heapsim/memutils"
)

// Statistics summarizes the current byte accounting of a Heap. It embeds
// memutils.DetailedStatistics: BlockCount/BlockBytes describe the single
// backing buffer, AllocationCount/AllocationBytes/AllocationSize{Min,Max}
// describe live blocks, and UnusedRange* describe free blocks.
// GarbageBytes is added here for the reachability preview in
// SnapshotWithRoots.
type Statistics struct {
	memutils.DetailedStatistics
	GarbageBytes int
}

// Snapshot walks h.Blocks() once and reports total/live/free byte
// accounting. GarbageBytes is always 0; use SnapshotWithRoots for a
// reachability-aware preview of what the next Collect() would reclaim.
func Snapshot(h *heapsim.Heap) Statistics {
	var s Statistics
	s.Clear()

	s.BlockCount = 1
	s.BlockBytes = h.HeapSize()

	for _, b := range h.Blocks() {
		if b.IsFree() {
			s.AddUnusedRange(b.Size())
		} else {
			s.AddAllocation(b.Size())
		}
	}

	return s
}

// SnapshotWithRoots performs a non-mutating reachability walk against roots
// (a copy of the collector's mark phase, without the sweep) and reports how
// many currently-allocated bytes are unreachable and would be reclaimed by
// the next Collect call.
func SnapshotWithRoots(h *heapsim.Heap, roots *heapsim.RootSet) Statistics {
	s := Snapshot(h)

	reachable := make(map[int]bool)
	var walk func(addr int)
	walk = func(addr int) {
		block, ok := h.FindBlock(addr)
		if !ok || block.IsFree() || reachable[addr] {
			return
		}
		reachable[addr] = true
		for _, ref := range block.References() {
			walk(ref)
		}
	}
	for _, addr := range roots.Iterate() {
		walk(addr)
	}

	for addr, block := range h.Allocations() {
		if !reachable[addr] {
			s.GarbageBytes += block.Size()
		}
	}

	return s
}

// WriteJSON serializes s into writer as a JSON object, following
// BlockMetadataBase.BlockJsonData's field-by-field Name(...).Int(...) style.
func WriteJSON(writer *jwriter.Writer, s Statistics) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("TotalBytes").Int(s.BlockBytes)
	obj.Name("LiveBytes").Int(s.AllocationBytes)
	obj.Name("GarbageBytes").Int(s.GarbageBytes)
	obj.Name("FreeBytes").Int(s.BlockBytes - s.AllocationBytes)
	obj.Name("AllocationCount").Int(s.AllocationCount)
	obj.Name("FreeRegionCount").Int(s.UnusedRangeCount)
	obj.Name("FragmentationPermille").Int(int(s.ExternalFragmentation() * 1000))
}

// JSON returns s serialized as a JSON document.
func JSON(s Statistics) ([]byte, error) {
	w := jwriter.NewWriter()
	WriteJSON(&w, s)
	return w.Bytes(), w.Error()
}
