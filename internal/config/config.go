// Package config provides configuration management for go-respawn.
package config

import "time"

// Config holds all configuration options for the respawn shell.
type Config struct {
	// Launch
	Count    int           `toml:"count"`
	Interval time.Duration `toml:"-"` // flag-only; TOML has no duration type

	// Observability
	LogFormat      string `toml:"log_format"` // text, json
	Verbose        bool   `toml:"verbose"`
	MetricsEnabled bool   `toml:"metrics_enabled"`
	MetricsAddr    string `toml:"metrics_addr"`

	// Dashboard
	TUIEnabled bool `toml:"tui"`

	// Diagnostic modes
	PrintCmd bool `toml:"-"`

	// ConfigFile is the TOML file values were loaded from, if any.
	ConfigFile string `toml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Count:    1,
		Interval: 0,

		LogFormat:      "text",
		Verbose:        false,
		MetricsEnabled: false,
		MetricsAddr:    "127.0.0.1:17092",

		TUIEnabled: false,
	}
}
