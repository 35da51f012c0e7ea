package catalog

import (
	"net/http"
	"strings"
	"time"
)

// Options configures the catalog client.
type Options struct {
	// BaseURL points at the backend root, e.g. "http://localhost:8080".
	BaseURL string

	// Timeout bounds each request when no HTTPClient is supplied.
	Timeout time.Duration

	// HTTPClient overrides the default client entirely.
	HTTPClient *http.Client
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		BaseURL: "http://localhost:8080",
		Timeout: 10 * time.Second,
	}
}

// NewOptions folds option functions over the defaults and normalizes the
// result.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.BaseURL == "" {
		opts.BaseURL = "http://localhost:8080"
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return opts
}

// WithBaseURL points the client at a different backend root.
func WithBaseURL(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BaseURL = url
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Timeout = d
	}
}

// WithHTTPClient supplies a custom *http.Client.
func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}
