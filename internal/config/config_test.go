package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, 10_000, cfg.TimeoutMS)
	require.Equal(t, 500, cfg.DebounceMS)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("STAGEVAL_BASE_URL", "http://backend.internal:9090")
	t.Setenv("STAGEVAL_DEBOUNCE_MS", "250")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://backend.internal:9090", cfg.BaseURL)
	require.Equal(t, 250, cfg.DebounceMS)
	require.Equal(t, 10_000, cfg.TimeoutMS, "untouched fields keep defaults")
}

func TestLoadFileThenEnvPrecedence(t *testing.T) {
	doc, err := yaml.Marshal(map[string]any{
		"base_url":  "http://from-file:8080",
		"log_level": "debug",
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stageval.yaml")
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	t.Setenv("STAGEVAL_CONFIG", path)
	t.Setenv("STAGEVAL_BASE_URL", "http://from-env:8080")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://from-env:8080", cfg.BaseURL, "env wins over file")
	require.Equal(t, "debug", cfg.LogLevel, "file wins over defaults")
}

func TestLoadRejectsEmptyBaseURL(t *testing.T) {
	t.Setenv("STAGEVAL_BASE_URL", "")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadClampsNonPositiveDurations(t *testing.T) {
	t.Setenv("STAGEVAL_TIMEOUT_MS", "-5")
	t.Setenv("STAGEVAL_DEBOUNCE_MS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10_000, cfg.TimeoutMS)
	require.Equal(t, 500, cfg.DebounceMS)
}

func TestLoadRejectsUnreadableFile(t *testing.T) {
	t.Setenv("STAGEVAL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.Error(t, err)
}
