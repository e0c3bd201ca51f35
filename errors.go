package o1heap

import "errors"

// Sentinel errors returned by New and Allocate. All are checkable with
// errors.Is; New and Allocate also wrap them with a short, call-specific
// message via fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidArena is returned by New when the supplied arena is nil,
	// empty, or too small to hold even the smallest fragment after
	// alignment.
	ErrInvalidArena = errors.New("o1heap: invalid arena")

	// ErrZeroSize is returned by Allocate for a zero-byte request. It does
	// not increment Diagnostics.OOMCount: a zero-size request is not a
	// genuinely unsatisfiable one.
	ErrZeroSize = errors.New("o1heap: zero-size request")

	// ErrRequestTooLarge is returned by Allocate when amount exceeds the
	// largest request the arena could ever satisfy. Unlike ErrZeroSize,
	// this does increment Diagnostics.OOMCount.
	ErrRequestTooLarge = errors.New("o1heap: request exceeds arena capacity")

	// ErrOutOfMemory is returned by Allocate when every bin large enough
	// for the request is empty. It increments Diagnostics.OOMCount.
	ErrOutOfMemory = errors.New("o1heap: no free fragment large enough")
)
