// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/minuteadder/internal/clock"
)

// Config holds the application configuration.
type Config struct {
	Output  OutputConfig `toml:"output"`
	Debug   DebugConfig  `toml:"debug"`
	Samples []Sample     `toml:"samples"`
}

// OutputConfig holds terminal output settings.
type OutputConfig struct {
	Color bool `toml:"color"`
}

// DebugConfig holds debug logging settings.
type DebugConfig struct {
	LogPath string `toml:"log_path"` // written only with --debug
}

// Sample is one invocation printed by the examples command.
type Sample struct {
	Time    string `toml:"time"`    // e.g., "9:13 AM"
	Minutes int    `toml:"minutes"` // may be negative
}

// DefaultSamples returns the built-in sample invocations.
func DefaultSamples() []Sample {
	return []Sample{
		{Time: "1:00 AM", Minutes: -60},
		{Time: "1:00 AM", Minutes: -61},
		{Time: "11:00 PM", Minutes: 59},
		{Time: "11:00 PM", Minutes: 60},
		{Time: "9:13 AM", Minutes: 200},
		{Time: "9:13 AM", Minutes: -200},
		{Time: "9:00 AM", Minutes: 1440},
		{Time: "9:00 AM", Minutes: -1440},
		{Time: "9:00 AM", Minutes: 720},
		{Time: "9:00 AM", Minutes: -720},
		{Time: "9:00 AM", Minutes: 0},
	}
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Color: true,
		},
		Debug: DebugConfig{
			LogPath: "minuteadder-debug.log",
		},
		Samples: DefaultSamples(),
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "minuteadder", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Debug.LogPath = expandPath(cfg.Debug.LogPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
// A file that lists samples replaces the default samples entirely.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	defaults := cfg.Samples
	cfg.Samples = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Samples == nil {
		cfg.Samples = defaults
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MINUTEADDER_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MINUTEADDER_COLOR: %w", err)
		}
		cfg.Output.Color = b
	}
	if v := os.Getenv("MINUTEADDER_DEBUG_LOG"); v != "" {
		cfg.Debug.LogPath = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Samples) == 0 {
		return errors.New("at least one sample must be configured")
	}
	for i, s := range c.Samples {
		if !clock.Valid(s.Time) {
			return fmt.Errorf("samples[%d]: %w, got %q", i, clock.ErrInvalidFormat, s.Time)
		}
	}
	if c.Debug.LogPath == "" {
		return errors.New("debug log_path must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
