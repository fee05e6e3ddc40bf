package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
theme: dark
content: /tmp/cats.yaml
tick_interval: 20ms
watch: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, "/tmp/cats.yaml", cfg.ContentPath)
	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, DefaultAckDelay, cfg.AckDelay)
	assert.True(t, cfg.Watch)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"unknown theme":  "theme: sepia\n",
		"zero tick":      "tick_interval: 0s\n",
		"negative ack":   "ack_delay: -1s\n",
		"unknown field":  "purr: loud\n",
		"malformed yaml": "theme: [dark\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, body))
			require.Error(t, err)
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestValidationErrorsAreTyped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickInterval = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "cv", "config.yaml"), DefaultPath())
}
