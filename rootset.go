package heapsim

import "github.com/dolthub/swiss"

// RootSet is an unordered collection of block start addresses treated as
// garbage-collection roots. It is owned by a Heap but the Collector also
// holds a non-owning handle to it during a collection cycle.
type RootSet struct {
	roots *swiss.Map[int, struct{}]
}

// NewRootSet returns an empty RootSet.
func NewRootSet() *RootSet {
	return &RootSet{
		roots: swiss.NewMap[int, struct{}](8),
	}
}

// Add records addr as a root. A root whose block no longer exists by the
// time a collection runs is tolerated and simply ignored during marking.
func (r *RootSet) Add(addr int) {
	r.roots.Put(addr, struct{}{})
}

// Remove drops addr from the root set, if present.
func (r *RootSet) Remove(addr int) {
	r.roots.Delete(addr)
}

// Contains reports whether addr is currently a root.
func (r *RootSet) Contains(addr int) bool {
	return r.roots.Has(addr)
}

// Clear removes every root.
func (r *RootSet) Clear() {
	r.roots = swiss.NewMap[int, struct{}](8)
}

// Iterate returns a snapshot slice of every root address currently in the
// set. Iteration order is not stable across calls.
func (r *RootSet) Iterate() []int {
	addrs := make([]int, 0, r.roots.Count())
	r.roots.Iter(func(addr int, _ struct{}) bool {
		addrs = append(addrs, addr)
		return false
	})
	return addrs
}
