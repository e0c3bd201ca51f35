package o1heap

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Alignment is the guaranteed alignment of every pointer Allocate returns,
// and of the arena's usable region after New adjusts it: 4*sizeof(pointer)
// (32 bytes on 64-bit platforms, 16 bytes on 32-bit platforms).
const Alignment = alignment

// Heap is a single allocator instance bound to one caller-supplied arena.
// A Heap is not goroutine-safe; see the package doc comment.
//
// The Heap value itself is an ordinary Go value and is not placed inside
// the arena bytes it manages: the arena's entire capacity, after
// alignment, is available to callers instead of having a metadata block
// carved out of it.
type Heap struct {
	bins            [numBins]*fragmentHeader
	nonemptyBinMask uint

	base uintptr // address of the first byte of the usable arena

	onEnter func()
	onLeave func()
	logger  *slog.Logger

	diagnostics Diagnostics

	// arena keeps the backing slice reachable for as long as the Heap is;
	// its contents are otherwise accessed exclusively through fragment
	// headers recovered via unsafe pointer arithmetic.
	arena []byte
}

// New initializes a Heap over arena, the caller-supplied contiguous byte
// region the allocator will serve Allocate/Free requests from for its
// entire lifetime. arena is aligned and truncated as needed: New consumes
// up to Alignment-1 bytes at the front to align the first fragment header,
// and rounds the remaining length down to a multiple of the smallest
// fragment size. New fails if what remains is smaller than the smallest
// fragment.
//
// New does not invoke either critical-section hook configured via
// WithCriticalSection.
func New(arena []byte, opts ...Option) (*Heap, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(arena) == 0 {
		return nil, fmt.Errorf("o1heap.New: %w: arena is empty", ErrInvalidArena)
	}

	base := uintptr(unsafe.Pointer(&arena[0]))
	skip := uintptr(0)
	for (base+skip)%alignment != 0 {
		skip++
		if skip >= uintptr(len(arena)) {
			return nil, fmt.Errorf("o1heap.New: %w: arena too small to align", ErrInvalidArena)
		}
	}
	usable := arena[skip:]

	size := uint(len(usable))
	if size > sizeMax {
		size = sizeMax
	}
	size -= size % sizeMin
	if size < sizeMin {
		return nil, fmt.Errorf("o1heap.New: %w: only %d usable bytes after alignment, need %d", ErrInvalidArena, len(usable), sizeMin)
	}
	usable = usable[:size]

	h := &Heap{
		base:    uintptr(unsafe.Pointer(&usable[0])),
		arena:   usable,
		onEnter: cfg.onEnter,
		onLeave: cfg.onLeave,
		logger:  cfg.logger,
	}

	root := (*fragmentHeader)(unsafe.Pointer(&usable[0]))
	root.next = nil
	root.prev = nil
	root.size = size
	root.used = false
	fl := root.freeLinks()
	fl.nextFree = nil
	fl.prevFree = nil
	h.rebin(root)

	h.diagnostics.Capacity = size

	return h, nil
}
