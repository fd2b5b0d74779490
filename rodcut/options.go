package rodcut

import "github.com/rs/zerolog"

// Options configures Partition.
//
//	Engine — BottomUp (default) or TopDown.
//	Logger — receives a debug event per solved instance; zerolog.Nop() by default.
type Options struct {
	Engine Engine
	Logger zerolog.Logger
}

// Option represents a functional option for configuring Partition.
type Option func(*Options)

// DefaultOptions returns the BottomUp engine and a silent logger.
func DefaultOptions() Options {
	return Options{
		Engine: BottomUp,
		Logger: zerolog.Nop(),
	}
}

// WithEngine selects the evaluation strategy.
// Panics on an unknown Engine value to surface programmer error early.
func WithEngine(e Engine) Option {
	if e != BottomUp && e != TopDown {
		panic("rodcut: WithEngine(" + e.String() + ")")
	}

	return func(o *Options) {
		o.Engine = e
	}
}

// WithLogger routes solver traces to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
