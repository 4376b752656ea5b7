package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses command-line flags (plus an optional TOML config
// file) and returns a Config. Flags always override file values.
func ParseFlags(args []string) (*Config, error) {
	cfg := DefaultConfig()
	fs := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Config file: load it over the defaults, then re-apply the flags so
	// anything given on the command line wins.
	if cfg.ConfigFile != "" {
		path := cfg.ConfigFile
		cfg = DefaultConfig()
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.ConfigFile = path
		fs = newFlagSet(cfg)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("go-respawn", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs.Output()) }

	// Launch
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of new instances to launch")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Pause between launches")

	// Observability
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, `Log format: "text" or "json"`)
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose (debug) logging")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "Serve Prometheus metrics")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Metrics listen address")

	// Dashboard
	fs.BoolVar(&cfg.TUIEnabled, "tui", cfg.TUIEnabled, "Interactive dashboard")

	// Diagnostics
	fs.BoolVar(&cfg.PrintCmd, "print-cmd", cfg.PrintCmd, "Print the launch command and exit")

	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "TOML config file")

	return fs
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `go-respawn - launch a new independent instance of this binary

Usage:
  go-respawn [flags]
  go-respawn greet NAME

Launch Flags:
  -count N          Number of new instances to launch (default 1)
  -interval D       Pause between launches (e.g. 500ms)

Observability:
  -log-format F     "text" or "json" (default text)
  -v                Verbose (debug) logging
  -metrics          Serve Prometheus metrics
  -metrics-addr A   Metrics listen address (default 127.0.0.1:17092)

Dashboard:
  -tui              Interactive dashboard (press s to spawn, q to quit)

Diagnostics:
  -print-cmd        Print the launch command that would run, then exit

Other:
  -config PATH      TOML config file (flags override file values)
  -version          Print version and exit

Examples:
  # Launch one new instance
  go-respawn

  # Launch three instances, half a second apart
  go-respawn -count 3 -interval 500ms

  # Drive launches interactively with live metrics
  go-respawn -tui -metrics
`)
}
