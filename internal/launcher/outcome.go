package launcher

import "fmt"

// Outcome is the result of one launch attempt. Exactly one of the two
// arms holds: Err is nil and Message names the new PID, or Err is set
// and Message carries its formatted text. Message is never empty.
type Outcome struct {
	PID     int
	Message string
	Err     *Error
}

// OK reports whether the launch succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

func successOutcome(pid int) Outcome {
	return Outcome{
		PID:     pid,
		Message: fmt.Sprintf("New process spawned with PID: %d", pid),
	}
}

func failureOutcome(err *Error) Outcome {
	return Outcome{
		Message: err.Error(),
		Err:     err,
	}
}
