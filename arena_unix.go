//go:build unix

package o1heap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// NewAnonymousArena obtains size bytes of anonymous, page-backed memory via
// mmap and returns it ready to pass to New, along with a release function
// that unmaps it. This is a convenience for callers who want the arena's
// backing store to live outside the Go garbage collector's reach, which
// mirrors the pattern hivekit's internal/dirty package uses around
// golang.org/x/sys/unix for its own memory-mapped regions. It is entirely
// optional: New works just as well over a plain make([]byte, n) slice.
func NewAnonymousArena(size int) (arena []byte, release func() error, err error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("o1heap.NewAnonymousArena: size must be positive, got %d", size)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("o1heap.NewAnonymousArena: mmap: %w", err)
	}

	released := false
	release = func() error {
		if released {
			return nil
		}
		released = true
		return unix.Munmap(data)
	}

	return data, release, nil
}
