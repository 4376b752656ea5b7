package config

import (
	"errors"
	"fmt"
	"net"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors and inconsistencies.
// Returns nil if valid, or an error describing the problem.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Count < 1 {
		errs = append(errs, ValidationError{
			Field:   "count",
			Message: "must be at least 1",
		})
	}

	if cfg.Interval < 0 {
		errs = append(errs, ValidationError{
			Field:   "interval",
			Message: "must not be negative",
		})
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "log_format",
			Message: fmt.Sprintf(`must be "text" or "json" (got %q)`, cfg.LogFormat),
		})
	}

	if cfg.MetricsEnabled {
		if _, _, err := net.SplitHostPort(cfg.MetricsAddr); err != nil {
			errs = append(errs, ValidationError{
				Field:   "metrics_addr",
				Message: fmt.Sprintf("must be host:port (got %q)", cfg.MetricsAddr),
			})
		}
	}

	if cfg.TUIEnabled && cfg.PrintCmd {
		errs = append(errs, ValidationError{
			Field:   "tui",
			Message: "-tui and -print-cmd are mutually exclusive",
		})
	}

	return errors.Join(errs...)
}
