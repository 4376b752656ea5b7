// Package launcher spawns a new, fully independent instance of the
// currently running binary and reports a normalized outcome.
package launcher

import (
	"errors"
	"log/slog"
	"os"
)

// Config holds configuration for creating a Launcher. All fields are
// optional; zero values select the compiled-in platform strategy,
// os.Executable, and slog.Default.
type Config struct {
	// Strategy overrides the platform launch strategy. Used by tests.
	Strategy Strategy

	// ResolveExecutable overrides how the running binary's path is
	// resolved. Used by tests.
	ResolveExecutable func() (string, error)

	// Logger receives debug/error records for each attempt.
	Logger *slog.Logger
}

// Launcher launches new instances of the current executable. It holds no
// mutable state: every call resolves its own path and makes its own
// spawn attempt, so concurrent use needs no coordination.
type Launcher struct {
	strategy Strategy
	resolve  func() (string, error)
	logger   *slog.Logger
}

// New creates a Launcher from cfg.
func New(cfg Config) *Launcher {
	l := &Launcher{
		strategy: cfg.Strategy,
		resolve:  cfg.ResolveExecutable,
		logger:   cfg.Logger,
	}
	if l.strategy == nil {
		l.strategy = platformStrategy()
	}
	if l.resolve == nil {
		l.resolve = os.Executable
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// StrategyName returns the name of the launch strategy in use.
func (l *Launcher) StrategyName() string {
	return l.strategy.Name()
}

// LaunchNewInstance resolves the path of the running executable and
// starts a new independent copy of it via the platform strategy. It
// makes a single attempt, never blocks on the child, and always returns
// an Outcome; every failure is converted to data rather than propagated.
//
// The executable path is resolved fresh on every call: the binary's
// location may change between calls, e.g. after an update.
func (l *Launcher) LaunchNewInstance() Outcome {
	exePath, err := l.resolve()
	if err != nil {
		lerr := &Error{Kind: KindPathResolution, Err: err}
		l.logger.Error("executable_path_resolution_failed", "error", err)
		return failureOutcome(lerr)
	}

	l.logger.Debug("launching_new_instance",
		"exe_path", exePath,
		"strategy", l.strategy.Name(),
	)

	pid, err := l.strategy.Launch(exePath)
	if err != nil {
		var lerr *Error
		if !errors.As(err, &lerr) {
			lerr = &Error{Kind: KindProcessCreation, Err: err}
		}
		l.logger.Error("launch_failed",
			"exe_path", exePath,
			"strategy", l.strategy.Name(),
			"kind", lerr.Kind.String(),
			"error", err,
		)
		return failureOutcome(lerr)
	}

	l.logger.Info("instance_launched", "pid", pid, "exe_path", exePath)
	return successOutcome(pid)
}

// Describe returns the command the strategy would run, without running
// it. The path resolution step still applies.
func (l *Launcher) Describe() (string, error) {
	exePath, err := l.resolve()
	if err != nil {
		return "", &Error{Kind: KindPathResolution, Err: err}
	}
	return l.strategy.Describe(exePath), nil
}
