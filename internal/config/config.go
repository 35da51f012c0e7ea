// Package config defines process configuration for the CLI front-end.
//
// Values layer in order of precedence: built-in defaults, then an optional
// YAML file named by STAGEVAL_CONFIG, then STAGEVAL_-prefixed environment
// variables.
package config

// Config carries the knobs the wizard front-end needs.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080".
	BaseURL string `koanf:"base_url"`

	// TimeoutMS bounds each backend request in milliseconds.
	TimeoutMS int `koanf:"timeout_ms"`

	// DebounceMS is the identity-lookup quiet period in milliseconds.
	DebounceMS int `koanf:"debounce_ms"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New returns the reference defaults.
func New() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		TimeoutMS:  10_000,
		DebounceMS: 500,
		LogLevel:   "info",
	}
}
