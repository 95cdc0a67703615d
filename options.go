package uiraster

import "log/slog"

// Option configures a Context during creation.
//
// Example:
//
//	ctx, err := uiraster.New(640, 480, mem,
//	    uiraster.WithClearColor(uiraster.White),
//	    uiraster.WithLogger(logger))
type Option func(*options)

type options struct {
	clear   Color
	ordered bool
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{clear: Transparent}
}

// WithClearColor sets the initial background colour. The default is
// transparent black.
func WithClearColor(c Color) Option {
	return func(o *options) {
		o.clear = c
	}
}

// WithOrderedHash makes tile hashes depend on command order.
//
// By default a tile's hash combines command hashes with XOR, so reordering
// commands that overlap a tile does not dirty it, and two identical commands
// on the same tile cancel each other out. With ordered hashing each command
// hash is first mixed with its list index. A reorder then redraws the
// affected tiles, at the cost of redrawing every tile whose commands shifted
// position when an earlier command is inserted or removed.
func WithOrderedHash() Option {
	return func(o *options) {
		o.ordered = true
	}
}

// WithLogger sets a logger for this Context instead of the package-wide one.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
