package submit

import "go.uber.org/zap"

// Options configures a Submitter.
type Options struct {
	// Logger records saga progress and partial-failure state. Defaults to a
	// nop logger.
	Logger *zap.Logger
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// NewOptions folds option functions over the defaults.
func NewOptions(fns ...OptionFn) Options {
	opts := Options{}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
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
