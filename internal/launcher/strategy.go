package launcher

import (
	"os/exec"
	"runtime"
)

// Strategy is the platform-specific sequence of OS calls that creates a
// new, independent instance of the given executable. One implementation
// exists per platform family; the compiled-in one is returned by
// platformStrategy().
type Strategy interface {
	// Name returns a short identifier for the strategy ("windows-console",
	// "mac-open", "posix").
	Name() string

	// Describe returns the command line the strategy would run for the
	// given executable path.
	Describe(exePath string) string

	// Launch starts exePath as a new detached process and returns its
	// OS-assigned PID. It returns as soon as the OS accepts or rejects
	// process creation; the child is never waited on.
	Launch(exePath string) (int, error)
}

// startDetached starts cmd, captures the child PID, and releases the
// process handle so the child shares no lifecycle with the caller.
func startDetached(cmd *exec.Cmd) (int, error) {
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// Drop the handle instead of waiting; the child outlives us.
	_ = cmd.Process.Release()
	return pid, nil
}

// unsupportedStrategy is the compile-time fallback for platforms outside
// the windows/darwin/linux families. It fails without touching the OS.
// The type is declared unconditionally so its behavior can be exercised
// on any platform.
type unsupportedStrategy struct{}

func (unsupportedStrategy) Name() string { return "unsupported" }

func (unsupportedStrategy) Describe(string) string {
	return "no launch strategy for " + runtime.GOOS
}

func (unsupportedStrategy) Launch(string) (int, error) {
	return 0, &Error{Kind: KindUnsupportedPlatform}
}
