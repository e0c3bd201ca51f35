package o1heap

// Debug gates whether detected invalid pointers and internal invariant
// violations panic (true) or are silently ignored (false, the default).
// Library consumers should leave it false in production; the test suite
// sets it true so corruption and misuse are caught as failures rather
// than silently tolerated.
var Debug = false

// assert panics with msg if cond is false and Debug is enabled. It is the
// allocator's sole error-reporting mechanism for programmer errors (an
// invalid pointer passed to Free, or internal state that has diverged from
// the invariants) as opposed to genuine, recoverable conditions like OOM,
// which are reported through ordinary error returns instead.
func assert(cond bool, msg string) {
	if !cond && Debug {
		panic(msg)
	}
}
