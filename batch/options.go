package batch

import "github.com/rs/zerolog"

// Options configures Optimize.
//
//   - Logger — receives one debug event per formed batch and a summary event.
//     Defaults to zerolog.Nop(); the package never writes on its own.
type Options struct {
	Logger zerolog.Logger
}

// Option mutates Options before a run.
type Option func(*Options)

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger routes scheduling traces to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
