//go:build linux

package launcher

import "os/exec"

// posixStrategy starts the executable directly. No detachment flags are
// needed: once spawned and released, the child has an independent
// lifetime under the default process model.
type posixStrategy struct{}

func (posixStrategy) Name() string { return "posix" }

func (posixStrategy) Describe(exePath string) string {
	return exePath
}

func (posixStrategy) Launch(exePath string) (int, error) {
	return startDetached(exec.Command(exePath))
}

func platformStrategy() Strategy {
	return posixStrategy{}
}
