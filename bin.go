package o1heap

// numBins is one bin per bit of the word, so the nonempty-bin bitmap fits
// in a single word.
const numBins = wordBits

// binIndexForSize computes the bin a *free* fragment of the given size
// belongs in: idx = floor(log2(size/sizeMin)). Bin i holds fragments of
// size in [sizeMin*2^i, sizeMin*2^(i+1)); using FLOOR here is what makes
// that range guarantee hold.
func binIndexForSize(size uint) uint {
	idx := log2Floor(size / sizeMin)
	assert(idx < numBins, "o1heap: fragment size maps outside the bin table")
	return idx
}

// binIndexForRequest computes the smallest bin whose minimum size is
// guaranteed to satisfy a request for sizeClass bytes: idx =
// ceil(log2(sizeClass/sizeMin)). CEIL here, paired with FLOOR in
// binIndexForSize, is essential: since every fragment size is a multiple
// of sizeMin, a bin found at or above this index is guaranteed to hold
// fragments of at least sizeClass bytes.
func binIndexForRequest(sizeClass uint) uint {
	return log2Ceil((sizeClass + sizeMin - 1) / sizeMin)
}

// rebin inserts f at the head of its size class's free list and marks the
// bin nonempty. O(1): touches at most four pointers plus the mask word.
func (h *Heap) rebin(f *fragmentHeader) {
	idx := binIndexForSize(f.size)
	fl := f.freeLinks()

	fl.prevFree = nil
	fl.nextFree = h.bins[idx]
	if h.bins[idx] != nil {
		h.bins[idx].freeLinks().prevFree = f
	}
	h.bins[idx] = f

	h.nonemptyBinMask |= pow2(idx)
}

// unbin splices f out of its size class's free list, clearing the bin's
// bit in the mask if the list becomes empty. O(1).
func (h *Heap) unbin(f *fragmentHeader) {
	idx := binIndexForSize(f.size)
	fl := f.freeLinks()

	if fl.prevFree != nil {
		fl.prevFree.freeLinks().nextFree = fl.nextFree
	}
	if fl.nextFree != nil {
		fl.nextFree.freeLinks().prevFree = fl.prevFree
	}
	if h.bins[idx] == f {
		h.bins[idx] = fl.nextFree
		if h.bins[idx] == nil {
			h.nonemptyBinMask &^= pow2(idx)
		}
	}

	fl.prevFree = nil
	fl.nextFree = nil
}
