// Package config handles configuration file loading and per-call
// resource resolution for notification delivery.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Built-in resolution targets on macOS.
const (
	SystemSoundsDir      = "/System/Library/Sounds"
	DefaultStartSound    = "Glass.aiff"
	DefaultCompleteSound = "Hero.aiff"

	// BundledIconName is the icon file shipped alongside the binary.
	BundledIconName = "taskping-icon.png"

	// AppIconPath is the installed application bundle icon.
	AppIconPath = "/Applications/TaskPing.app/Contents/Resources/AppIcon.icns"

	// AlertIconPath is the generic system alert icon, used as a last
	// resort by delivery methods that require an icon argument.
	AlertIconPath = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources/AlertNoteIcon.icns"
)

// Config represents the optional taskping configuration file.
// Environment variables always take precedence over file values.
type Config struct {
	Sounds SoundsConfig `toml:"sounds"`
	Visual VisualConfig `toml:"visual"`
	Hook   HookConfig   `toml:"hook"`
}

// SoundsConfig holds sound file overrides.
type SoundsConfig struct {
	Start    string `toml:"start"`    // Path played for start notifications
	Complete string `toml:"complete"` // Path played for completion notifications
}

// VisualConfig holds visual notification settings.
type VisualConfig struct {
	// Enabled toggles desktop banners. Nil means "not set" so the
	// default (enabled) and the environment can take effect.
	Enabled *bool  `toml:"enabled"`
	Icon    string `toml:"icon"`
}

// HookConfig holds pre-delivery hook settings.
type HookConfig struct {
	// Script overrides the default hook script location
	// (taskping-hook.sh next to the binary).
	Script string `toml:"script"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskping", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
