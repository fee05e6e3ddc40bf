// Package config loads user preferences for the cats viewer.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Theme names accepted in the config file and on the command line
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	DefaultTickInterval = 50 * time.Millisecond
	DefaultAckDelay     = 3 * time.Second
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds user preferences
type Config struct {
	Theme        string        `yaml:"theme"`         // "auto", "light" or "dark"
	ContentPath  string        `yaml:"content"`       // empty means built-in content
	TickInterval time.Duration `yaml:"tick_interval"` // fact progress period
	AckDelay     time.Duration `yaml:"ack_delay"`     // like banner lifetime
	Watch        bool          `yaml:"watch"`         // reload content on change
	LogFile      string        `yaml:"log_file"`      // empty disables logging
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Theme:        ThemeAuto,
		TickInterval: DefaultTickInterval,
		AckDelay:     DefaultAckDelay,
	}
}

// DefaultPath returns the path of the user config file. Uses
// $XDG_CONFIG_HOME when set, ~/.config otherwise.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cv", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cv", "config.yaml")
}

// Load reads the configuration at path. A missing file is not an error and
// yields the defaults; fields the file omits keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Theme)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.AckDelay <= 0 {
		return fmt.Errorf("%w: ack_delay must be positive, got %s", ErrInvalidConfig, c.AckDelay)
	}
	return nil
}
