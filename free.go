package o1heap

import "unsafe"

// Free releases the memory pointed to by ptr, previously returned by
// Allocate on the same Heap. ptr may be nil, in which case Free is a
// no-op and invokes neither critical-section hook.
// A pointer the audit heuristics reject triggers an assertion failure when
// Debug is set and is otherwise a silent no-op; Free never mutates heap
// state on a rejected pointer. Free runs in O(1).
func (h *Heap) Free(ptr unsafe.Pointer) {
	if h == nil {
		panic("o1heap: Free called on a nil Heap")
	}
	if ptr == nil {
		return
	}

	f, ok := h.auditPointer(ptr)
	if !ok {
		if h.logger != nil {
			h.logger.Warn("o1heap: rejected pointer passed to Free", "pointer", ptr)
		}
		assert(false, "o1heap: Free called with a pointer that could not have come from this allocator")
		return
	}

	h.enterCritical()
	defer h.leaveCritical()

	// Mark the fragment free before any further mutation: this invalidates
	// the pointer against a concurrent double-free as early as possible.
	f.used = false

	assert(h.diagnostics.Allocated >= f.size, "o1heap: Allocated underflow on Free — heap corruption")
	h.diagnostics.Allocated -= f.size

	left, right := f.prev, f.next
	joinLeft := left != nil && !left.used
	joinRight := right != nil && !right.used

	switch {
	case joinLeft && joinRight:
		h.unbin(left)
		h.unbin(right)
		left.size += f.size + right.size
		f.size = 0
		right.size = 0
		interlink(left, right.next)
		h.rebin(left)
	case joinLeft:
		h.unbin(left)
		left.size += f.size
		f.size = 0
		interlink(left, right)
		h.rebin(left)
	case joinRight:
		h.unbin(right)
		f.size += right.size
		right.size = 0
		interlink(f, right.next)
		h.rebin(f)
	default:
		h.rebin(f)
	}
}
