// Package greeting implements the greet echo command.
package greeting

import "fmt"

// Greet returns the greeting message for name.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}
