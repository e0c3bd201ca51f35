package o1heap

import (
	"fmt"
	"unsafe"
)

// Allocate returns a pointer to at least amount bytes of memory aligned to
// Alignment, or an error if the request cannot be satisfied. Returned
// memory is not zeroed. Allocate runs in O(1) and invokes the
// critical-section pair configured via WithCriticalSection exactly once,
// in order, regardless of outcome.
func (h *Heap) Allocate(amount uint) (unsafe.Pointer, error) {
	if h == nil {
		panic("o1heap: Allocate called on a nil Heap")
	}

	h.enterCritical()
	defer h.leaveCritical()

	zero := amount == 0
	oversized := amount > h.diagnostics.Capacity-uint(alignment)

	if zero || oversized {
		h.updatePeakRequest(amount)
		if zero {
			return nil, fmt.Errorf("o1heap.Allocate: %w", ErrZeroSize)
		}
		h.diagnostics.OOMCount++
		if h.logger != nil {
			h.logger.Debug("o1heap: request exceeds arena capacity", "amount", amount, "oom_count", h.diagnostics.OOMCount)
		}
		return nil, fmt.Errorf("o1heap.Allocate: %w: requested %d bytes", ErrRequestTooLarge, amount)
	}

	// Rounding up to the next power of two bounds worst-case external
	// fragmentation to a logarithmic factor (Half-Fit, Ogasawara 1995;
	// bound per Herter 2014, "Timing-Predictable Memory Allocation In Hard
	// Real-Time Systems").
	fragmentSize := pow2(log2Ceil(amount + uint(alignment)))
	h.updatePeakRequest(amount)

	optimalBin := binIndexForRequest(fragmentSize)
	candidateMask := ^(pow2(optimalBin) - 1)
	suitable := h.nonemptyBinMask & candidateMask
	if suitable == 0 {
		h.diagnostics.OOMCount++
		if h.logger != nil {
			h.logger.Debug("o1heap: no free fragment large enough", "amount", amount, "fragment_size", fragmentSize, "oom_count", h.diagnostics.OOMCount)
		}
		return nil, fmt.Errorf("o1heap.Allocate: %w: no fragment large enough for %d bytes", ErrOutOfMemory, fragmentSize)
	}
	smallestBit := suitable & -suitable
	binIndex := log2Floor(smallestBit)

	f := h.bins[binIndex]
	assert(f != nil && f.size >= fragmentSize, "o1heap: bin index/size invariant violated — heap corruption")
	h.unbin(f)

	// Split off the remainder if it is large enough to stand on its own.
	// The returned fragment occupies the low addresses [f, f+fragmentSize);
	// the split remainder, if any, occupies the high addresses
	// [f+fragmentSize, f+originalSize).
	leftover := f.size - fragmentSize
	f.size = fragmentSize
	if leftover >= sizeMin {
		g := fragmentAt(f, fragmentSize)
		g.size = leftover
		g.used = false
		gl := g.freeLinks()
		gl.nextFree = nil
		gl.prevFree = nil

		interlink(g, f.next)
		interlink(f, g)

		h.rebin(g)
	}

	f.used = true
	fl := f.freeLinks()
	fl.nextFree = nil
	fl.prevFree = nil

	h.diagnostics.Allocated += fragmentSize
	if h.diagnostics.Allocated > h.diagnostics.PeakAllocated {
		h.diagnostics.PeakAllocated = h.diagnostics.Allocated
	}

	return f.payload(), nil
}

func (h *Heap) updatePeakRequest(amount uint) {
	if amount > h.diagnostics.PeakRequestSize {
		h.diagnostics.PeakRequestSize = amount
	}
}
