// Package heapsim models a low-level heap manager over a fixed-size
// simulated byte buffer: allocation under a choice of placement policies,
// alignment padding, split/coalesce on free, and a mark-and-sweep collector
// driven by an external root set and per-block reference lists.
//
// The core is single-threaded and non-suspending; see Heap for the
// concurrency precondition.
package heapsim
