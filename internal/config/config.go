// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete legisbot client configuration.
type Config struct {
	// Server holds the connection settings for the LegisBot service.
	Server ServerConfig `toml:"server"`

	// Log holds the diagnostic log settings.
	Log LogConfig `toml:"log"`
}

// ServerConfig contains the LegisBot service connection settings.
type ServerConfig struct {
	// URL is the base URL of the LegisBot API.
	URL string `toml:"url"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// LogConfig contains diagnostic log settings. The TUI owns stdout, so all
// diagnostics go to a rotating file instead.
type LogConfig struct {
	// Path is the log file location (empty = ~/.legisbot/legisbot.log).
	Path string `toml:"path"`
	// Level is the minimum level to record: "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:         "http://localhost:8000",
			TimeoutSecs: 60,
		},
		Log: LogConfig{
			Path:  defaultLogPath(),
			Level: "info",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// ConfigDir returns the legisbot data directory (~/.legisbot). It holds the
// config file, the stored credential, the log, and the CLI input history.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".legisbot"), nil
}

// EnsureConfigDir creates the data directory when missing.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// ConfigPath returns the path of the TOML config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".legisbot", "config.toml"), nil
}

// Load reads configuration from the config file, applies environment
// overrides, and validates the result. A missing config file is not an
// error; defaults are used.
func Load() (*Config, error) {
	// Development convenience: a .env in the working directory feeds the
	// LEGISBOT_* overrides below. Absence is fine.
	_ = godotenv.Load()

	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file over the current values.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// ApplyEnvOverrides applies LEGISBOT_* environment variables over the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("LEGISBOT_SERVER_URL"); u != "" {
		c.Server.URL = u
	}
	if t := os.Getenv("LEGISBOT_TIMEOUT_SECS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			c.Server.TimeoutSecs = secs
		}
	}
	if p := os.Getenv("LEGISBOT_LOG_PATH"); p != "" {
		c.Log.Path = p
	}
	if l := os.Getenv("LEGISBOT_LOG_LEVEL"); l != "" {
		c.Log.Level = l
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.url %q is not a valid URL", c.Server.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.url scheme %q must be http or https", u.Scheme)
	}
	if c.Server.TimeoutSecs <= 0 {
		return fmt.Errorf("server.timeout_secs must be positive, got %d", c.Server.TimeoutSecs)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be debug, info, warn, or error", c.Log.Level)
	}
	return nil
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".legisbot", "legisbot.log")
	}
	return filepath.Join(home, ".legisbot", "legisbot.log")
}
