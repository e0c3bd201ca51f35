//go:build !unix

package o1heap

import "fmt"

// NewAnonymousArena obtains size bytes of memory and returns it ready to
// pass to New, along with a no-op release function. On this platform it is
// backed by a plain Go allocation rather than an OS mapping; see the unix
// build's arena_unix.go for the mmap-backed variant.
func NewAnonymousArena(size int) (arena []byte, release func() error, err error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("o1heap.NewAnonymousArena: size must be positive, got %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
