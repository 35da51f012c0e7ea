package lookup

import (
	"time"

	"go.uber.org/zap"
)

// Options configures a Resolver.
type Options struct {
	// QuietPeriod is how long the input must stay unchanged before a lookup
	// fires. The reference behavior is 500ms.
	QuietPeriod time.Duration

	// MinLength is the shortest input worth asking the catalog about.
	// Shorter values settle to Unresolved without a network call.
	MinLength int

	// Notify, when set, receives every applied result.
	Notify func(Result)

	// Logger records lookup faults. Defaults to a nop logger.
	Logger *zap.Logger
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		QuietPeriod: 500 * time.Millisecond,
		MinLength:   3,
	}
}

// NewOptions folds option functions over the defaults.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.QuietPeriod <= 0 {
		opts.QuietPeriod = 500 * time.Millisecond
	}
	if opts.MinLength <= 0 {
		opts.MinLength = 3
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

// WithQuietPeriod overrides the debounce window.
func WithQuietPeriod(d time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.QuietPeriod = d
	}
}

// WithMinLength overrides the minimum input length.
func WithMinLength(n int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MinLength = n
	}
}

// WithNotify registers a callback invoked with every applied result.
func WithNotify(fn func(Result)) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Notify = fn
	}
}

// WithLogger supplies a structured logger.
func WithLogger(log *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = log
	}
}
