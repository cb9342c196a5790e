package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parley.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
max_attempts: 3
format: json
banner: false
metrics_addr: ":2112"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:    "debug",
		MaxAttempts: 3,
		Format:      FormatJSON,
		Banner:      false,
		MetricsAddr: ":2112",
	}, cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "max_attempts: 3\n")
	t.Setenv("PARLEY_MAX_ATTEMPTS", "5")
	t.Setenv("PARLEY_BANNER", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.False(t, cfg.Banner)
}

func TestLoad_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "colour: blue\n",
		"bad level":      "log_level: loud\n",
		"negative":       "max_attempts: -1\n",
		"bad format":     "format: xml\n",
		"bad address":    "metrics_addr: nowhere\n",
		"malformed yaml": "log_level: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
