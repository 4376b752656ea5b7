//go:build windows

package launcher

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// consoleStrategy starts the executable in its own new console. Without
// CREATE_NEW_CONSOLE the child would inherit the parent's console and
// closing the parent's console could take the child down with it.
type consoleStrategy struct{}

func (consoleStrategy) Name() string { return "windows-console" }

func (consoleStrategy) Describe(exePath string) string {
	return exePath + " (CREATE_NEW_CONSOLE)"
}

func (consoleStrategy) Launch(exePath string) (int, error) {
	cmd := exec.Command(exePath)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_CONSOLE,
	}
	return startDetached(cmd)
}

func platformStrategy() Strategy {
	return consoleStrategy{}
}
