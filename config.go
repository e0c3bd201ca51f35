package o1heap

import "log/slog"

// Option configures a Heap at construction time. Options are applied once,
// in New; the allocator has no mutable configuration afterward.
type Option func(*config)

type config struct {
	onEnter func()
	onLeave func()
	logger  *slog.Logger
}

// WithCriticalSection installs the pair of callbacks the allocator invokes
// to bracket each atomic transaction: exactly one call to enter followed by
// exactly one call to leave, per Allocate, per Free of a non-nil pointer,
// and per Diagnostics call. Either callback may be nil, in which case the
// allocator simply skips it. Neither is invoked by New, and neither is
// ever invoked recursively by the allocator itself.
func WithCriticalSection(enter, leave func()) Option {
	return func(c *config) {
		c.onEnter = enter
		c.onLeave = leave
	}
}

// WithLogger installs a logger used to report out-of-memory events and
// rejected pointers passed to Free. No call is ever on the success path:
// a nil logger (the default) makes both events silent, at no extra cost.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func defaultConfig() config {
	return config{}
}
