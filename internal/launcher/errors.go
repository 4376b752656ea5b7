package launcher

import "fmt"

// Kind discriminates launch failures. Callers that only display the
// failure can format the Error; callers that need to branch inspect Kind.
type Kind int

const (
	// KindPathResolution means the running executable's own location
	// could not be determined.
	KindPathResolution Kind = iota

	// KindProcessCreation means the OS refused or failed to create the
	// new process.
	KindProcessCreation

	// KindUnsupportedPlatform means the compiled platform has no launch
	// strategy.
	KindUnsupportedPlatform
)

// String returns the metrics/log label for the kind.
func (k Kind) String() string {
	switch k {
	case KindPathResolution:
		return "path_resolution"
	case KindProcessCreation:
		return "process_creation"
	case KindUnsupportedPlatform:
		return "unsupported_platform"
	default:
		return "unknown"
	}
}

// Error is a launch failure. The human-readable text is produced only
// here, at the formatting boundary; Kind and the wrapped cause stay
// machine-inspectable.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindPathResolution:
		return fmt.Sprintf("Failed to get current executable path: %v", e.Err)
	case KindProcessCreation:
		return fmt.Sprintf("Failed to spawn new process: %v", e.Err)
	case KindUnsupportedPlatform:
		return "Unsupported platform"
	default:
		return fmt.Sprintf("launch failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
