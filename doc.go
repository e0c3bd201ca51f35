// Package o1heap implements a constant-time, bounded-fragmentation dynamic
// memory allocator over a single caller-supplied contiguous byte arena.
//
// Every successful Allocate and every Free completes in O(1) time,
// independent of arena size, live allocation count or request size. This
// makes the allocator suitable for hard real-time and safety-critical
// contexts where a general-purpose malloc's unbounded worst case is not
// acceptable.
//
// The allocator keeps two intertwined structures over the arena: a
// doubly-linked, address-ordered chain threading every fragment (free or
// used), which makes coalescing adjacent free neighbors an O(1) operation;
// and a bitmap-indexed set of size-class free lists, which makes finding
// the smallest free fragment large enough to satisfy a request an O(1)
// operation using only bit tricks. Request sizes are rounded up to the next
// power of two, which bounds worst-case external fragmentation to a
// logarithmic factor (the Half-Fit policy; Ogasawara 1995, Herter 2014).
//
// IMPORTANT: This package is NOT goroutine-safe. The allocator performs no
// internal locking; it is the caller's responsibility to serialize calls,
// for example via the critical-section hooks accepted by New.
package o1heap
