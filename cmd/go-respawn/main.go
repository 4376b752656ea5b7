// Package main provides the go-respawn CLI entry point.
//
// go-respawn launches a new, fully independent instance of its own
// binary and reports the outcome. It exists for applications that need a
// second copy of themselves running, e.g. to open a fresh window or to
// hand off after an update.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitclone-dev/go-respawn/internal/config"
	"github.com/bitclone-dev/go-respawn/internal/greeting"
	"github.com/bitclone-dev/go-respawn/internal/launcher"
	"github.com/bitclone-dev/go-respawn/internal/logging"
	"github.com/bitclone-dev/go-respawn/internal/metrics"
	"github.com/bitclone-dev/go-respawn/internal/tui"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/go-respawn
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Handle version flag and the greet subcommand before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-version", "--version", "version":
			fmt.Printf("go-respawn %s\n", version)
			return 0
		case "greet":
			return runGreet(os.Args[2:])
		}
	}

	cfg, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		return 1
	}

	// When the TUI owns the terminal, logs are discarded rather than
	// fighting it for the screen.
	var logger *slog.Logger
	if cfg.TUIEnabled {
		logger = logging.NewWithWriter(io.Discard, "json", slog.LevelInfo)
	} else {
		logger = logging.New(cfg.LogFormat, "info", cfg.Verbose)
	}
	logging.SetDefault(logger)

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	l := launcher.New(launcher.Config{Logger: logger})

	if cfg.PrintCmd {
		return printLaunchCommand(l)
	}

	// Metrics are opt-in; the collector exists only when serving them.
	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		collector = metrics.NewCollectorWithRegistry(
			metrics.CollectorConfig{Version: version}, registry)
		server := metrics.NewServer(cfg.MetricsAddr, registry, logger)
		server.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		}()
	}

	if cfg.TUIEnabled {
		return runTUI(cfg, l, collector)
	}

	return runLaunches(cfg, l, collector, logger)
}

// runLaunches performs cfg.Count independent launch attempts, printing
// each outcome message. Every attempt is unconditional; a failure does
// not stop the remaining ones.
func runLaunches(cfg *config.Config, l *launcher.Launcher, collector *metrics.Collector, logger *slog.Logger) int {
	failed := 0
	for i := 0; i < cfg.Count; i++ {
		if i > 0 && cfg.Interval > 0 {
			time.Sleep(cfg.Interval)
		}

		start := time.Now()
		if collector != nil {
			collector.RecordAttempt()
		}
		out := l.LaunchNewInstance()
		took := time.Since(start)

		fmt.Println(out.Message)
		if out.OK() {
			if collector != nil {
				collector.RecordSuccess(took)
			}
		} else {
			failed++
			if collector != nil {
				collector.RecordFailure(out.Err.Kind.String(), took)
			}
		}
	}

	if failed > 0 {
		logger.Error("launches_failed", "failed", failed, "total", cfg.Count)
		return 1
	}
	return 0
}

// runTUI hands the terminal to the interactive dashboard.
func runTUI(cfg *config.Config, l *launcher.Launcher, collector *metrics.Collector) int {
	exePath, err := os.Executable()
	if err != nil {
		exePath = "(unresolved)"
	}

	tuiCfg := tui.Config{
		Version:      version,
		StrategyName: l.StrategyName(),
		ExePath:      exePath,
		Spawner:      l,
		Collector:    collector,
	}
	if cfg.MetricsEnabled {
		tuiCfg.MetricsAddr = cfg.MetricsAddr
	}

	if err := tui.Run(tuiCfg); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return 1
	}
	return 0
}

// printLaunchCommand shows what the platform strategy would run.
func printLaunchCommand(l *launcher.Launcher) int {
	desc, err := l.Describe()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("# Launch command for strategy %q:\n%s\n", l.StrategyName(), desc)
	return 0
}

// runGreet implements the greet subcommand.
func runGreet(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: go-respawn greet NAME")
		return 1
	}
	fmt.Println(greeting.Greet(strings.Join(args, " ")))
	return 0
}
