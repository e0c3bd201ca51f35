package o1heap

import "unsafe"

// alignment is A in spec terms: 4*sizeof(pointer). It is a power of two
// and at least as large as every fragmentHeader field's alignment
// requirement, which is exactly what makes fragmentHeader's own size equal
// to alignment on every platform Go targets.
const alignment = uintptr(4 * unsafe.Sizeof(uintptr(0)))

// sizeMin is the smallest legal fragment size, 2*alignment.
const sizeMin = uint(2 * alignment)

// sizeMax is the largest legal fragment size, 2^(wordBits-1). Chosen so
// that pow2(log2Ceil(request+alignment)) can never overflow a word.
const sizeMax = uint(1) << (wordBits - 1)

// fragmentHeader is the fixed-layout metadata every fragment (free or
// used) carries in its first alignment bytes. Headers never move once
// placed: a split reuses the parent header for the low half and installs
// a fresh header at the start of the high half; a merge discards the
// absorbed neighbor's header by zeroing its size (the sentinel for
// "dropped").
type fragmentHeader struct {
	next *fragmentHeader // physical-chain neighbor at the next higher address, nil at the arena's end
	prev *fragmentHeader // physical-chain neighbor at the next lower address, nil at the arena's start
	size uint            // bytes, includes this header
	used bool
}

// freeLinks is the free-list overlay living in the payload region
// immediately after a free fragment's header. It is meaningless once the
// fragment is marked used; the same bytes become the caller's memory.
type freeLinks struct {
	nextFree *fragmentHeader
	prevFree *fragmentHeader
}

func init() {
	if unsafe.Sizeof(fragmentHeader{}) != alignment {
		panic("o1heap: fragmentHeader size does not match alignment on this platform")
	}
	if unsafe.Sizeof(freeLinks{}) > alignment {
		panic("o1heap: freeLinks does not fit in the smallest fragment's payload")
	}
}

// payload returns a pointer to the byte immediately past f's header: the
// address returned to the caller when f is used, and the address of f's
// freeLinks overlay when f is free.
func (f *fragmentHeader) payload() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(f), alignment)
}

func (f *fragmentHeader) freeLinks() *freeLinks {
	return (*freeLinks)(f.payload())
}

// headerFromPayload recovers a fragment's header from a pointer previously
// returned by payload/Allocate.
func headerFromPayload(p unsafe.Pointer) *fragmentHeader {
	return (*fragmentHeader)(unsafe.Add(p, -int(alignment)))
}

// fragmentAt returns the header located offset bytes after f's start. The
// caller must ensure the resulting address still falls inside the arena.
func fragmentAt(f *fragmentHeader, offset uint) *fragmentHeader {
	return (*fragmentHeader)(unsafe.Add(unsafe.Pointer(f), offset))
}

// interlink sets a.next = b and b.prev = a, skipping either side that is
// nil. It is the only place the physical chain's mutual-link invariant is
// established.
func interlink(a, b *fragmentHeader) {
	if a != nil {
		a.next = b
	}
	if b != nil {
		b.prev = a
	}
}
