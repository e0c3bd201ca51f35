package o1heap

// Diagnostics is a snapshot of the allocator's bookkeeping counters.
// Fields never decrease except Allocated, which tracks current usage;
// Capacity is fixed at construction and never changes afterward.
type Diagnostics struct {
	// Capacity is the usable arena size in bytes, fixed by New.
	Capacity uint

	// Allocated is the current sum of fragment sizes across used
	// fragments.
	Allocated uint

	// PeakAllocated is the maximum Allocated has ever reached.
	PeakAllocated uint

	// PeakRequestSize is the largest amount ever passed to Allocate,
	// regardless of whether that call succeeded.
	PeakRequestSize uint

	// OOMCount is the number of non-zero Allocate calls that returned an
	// error because no fragment large enough was available.
	OOMCount uint
}

// Diagnostics returns a copy of the allocator's current counters, taken
// under the critical-section pair.
func (h *Heap) Diagnostics() Diagnostics {
	h.enterCritical()
	out := h.diagnostics
	h.leaveCritical()
	return out
}

func (h *Heap) enterCritical() {
	if h.onEnter != nil {
		h.onEnter()
	}
}

func (h *Heap) leaveCritical() {
	if h.onLeave != nil {
		h.onLeave()
	}
}
