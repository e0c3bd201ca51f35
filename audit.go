package o1heap

import "unsafe"

// auditPointer inspects an alleged user pointer and its fragment header,
// rejecting anything that demonstrably cannot have come from this
// allocator. It has no false positives: any pointer returned by a prior
// successful Allocate and not yet freed is guaranteed to pass. False
// negatives are possible in principle (a pointer could coincidentally
// satisfy every heuristic) but are not a correctness concern here, only a
// best-effort guard against misuse.
func (h *Heap) auditPointer(ptr unsafe.Pointer) (*fragmentHeader, bool) {
	if uintptr(ptr)%alignment != 0 {
		return nil, false
	}

	f := headerFromPayload(ptr)
	headerAddr := uintptr(unsafe.Pointer(f))
	if headerAddr < h.base || headerAddr >= h.base+uintptr(h.diagnostics.Capacity) {
		return nil, false
	}

	if !f.used {
		return nil, false
	}
	if f.size < sizeMin || f.size > h.diagnostics.Capacity || f.size%sizeMin != 0 {
		return nil, false
	}

	if f.next != nil && f.next.prev != f {
		return nil, false
	}
	if f.prev != nil && f.prev.next != f {
		return nil, false
	}

	return f, true
}
