package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// Tests: DefaultConfig
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"Count", cfg.Count, 1},
		{"Interval", cfg.Interval, time.Duration(0)},
		{"LogFormat", cfg.LogFormat, "text"},
		{"Verbose", cfg.Verbose, false},
		{"MetricsEnabled", cfg.MetricsEnabled, false},
		{"MetricsAddr", cfg.MetricsAddr, "127.0.0.1:17092"},
		{"TUIEnabled", cfg.TUIEnabled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

// =============================================================================
// Tests: ParseFlags
// =============================================================================

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if cfg.Count != 1 {
		t.Errorf("Count = %d, want 1", cfg.Count)
	}
}

func TestParseFlags_Overrides(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-count", "3",
		"-interval", "500ms",
		"-log-format", "json",
		"-v",
		"-metrics",
		"-metrics-addr", "0.0.0.0:9999",
	})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	if cfg.Count != 3 {
		t.Errorf("Count = %d, want 3", cfg.Count)
	}
	if cfg.Interval != 500*time.Millisecond {
		t.Errorf("Interval = %v, want 500ms", cfg.Interval)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled = false, want true")
	}
	if cfg.MetricsAddr != "0.0.0.0:9999" {
		t.Errorf("MetricsAddr = %q, want 0.0.0.0:9999", cfg.MetricsAddr)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	if _, err := ParseFlags([]string{"-definitely-not-a-flag"}); err == nil {
		t.Error("ParseFlags() accepted an unknown flag")
	}
}

// =============================================================================
// Tests: Config file
// =============================================================================

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "respawn.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFlags_ConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
count = 5
log_format = "json"
metrics_enabled = true
metrics_addr = "127.0.0.1:9100"
`)

	cfg, err := ParseFlags([]string{"-config", path})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	if cfg.Count != 5 {
		t.Errorf("Count = %d, want 5", cfg.Count)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled = false, want true")
	}
	if cfg.MetricsAddr != "127.0.0.1:9100" {
		t.Errorf("MetricsAddr = %q, want 127.0.0.1:9100", cfg.MetricsAddr)
	}
}

func TestParseFlags_FlagsOverrideFile(t *testing.T) {
	path := writeConfigFile(t, `count = 5`)

	cfg, err := ParseFlags([]string{"-config", path, "-count", "2"})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if cfg.Count != 2 {
		t.Errorf("Count = %d, want 2 (flag must override file)", cfg.Count)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeConfigFile(t, `clients = 10`)

	err := LoadFile(path, DefaultConfig())
	if err == nil {
		t.Fatal("LoadFile() accepted an unknown key")
	}
	if !strings.Contains(err.Error(), "clients") {
		t.Errorf("error %q does not name the offending key", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"), DefaultConfig())
	if err == nil {
		t.Error("LoadFile() succeeded on a missing file")
	}
}

// =============================================================================
// Tests: Validate
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string // empty = valid
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "zero count",
			mutate:  func(cfg *Config) { cfg.Count = 0 },
			wantErr: "count",
		},
		{
			name:    "negative interval",
			mutate:  func(cfg *Config) { cfg.Interval = -time.Second },
			wantErr: "interval",
		},
		{
			name:    "bad log format",
			mutate:  func(cfg *Config) { cfg.LogFormat = "xml" },
			wantErr: "log_format",
		},
		{
			name: "bad metrics addr",
			mutate: func(cfg *Config) {
				cfg.MetricsEnabled = true
				cfg.MetricsAddr = "not-an-addr"
			},
			wantErr: "metrics_addr",
		},
		{
			name:   "bad metrics addr ignored when metrics disabled",
			mutate: func(cfg *Config) { cfg.MetricsAddr = "not-an-addr" },
		},
		{
			name: "tui with print-cmd",
			mutate: func(cfg *Config) {
				cfg.TUIEnabled = true
				cfg.PrintCmd = true
			},
			wantErr: "tui",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error mentioning %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
