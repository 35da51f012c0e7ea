package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if STAGEVAL_CONFIG is set
//  3. env (prefix STAGEVAL_), e.g. STAGEVAL_BASE_URL -> base_url
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("STAGEVAL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("STAGEVAL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "stageval_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base_url must not be empty")
	}
	if cfg.TimeoutMS <= 0 {
		cfg.TimeoutMS = 10_000
	}
	if cfg.DebounceMS <= 0 {
		cfg.DebounceMS = 500
	}
	return &cfg, nil
}
