//go:build darwin

package launcher

import "os/exec"

// openBinary is the system launcher utility. Indirection through it is
// required on macOS: re-executing an app bundle's inner binary directly
// does not produce a properly registered, independent app instance.
const openBinary = "open"

// macStrategy launches through `open -n -a <exe>`. -n forces a new
// instance even if one is already running; -a targets the application at
// the resolved path. The reported PID is the PID of the open helper, not
// of the new app instance; the helper exits once launch is dispatched.
type macStrategy struct{}

func (macStrategy) Name() string { return "mac-open" }

func (macStrategy) Describe(exePath string) string {
	return openBinary + " -n -a " + exePath
}

func (macStrategy) Launch(exePath string) (int, error) {
	cmd := exec.Command(openBinary, "-n", "-a", exePath)
	return startDetached(cmd)
}

func platformStrategy() Strategy {
	return macStrategy{}
}
