// Package debug provides opt-in stderr diagnostics.
package debug

import (
	"log"
	"os"
)

// Enabled returns true if debug mode is active (SHELLHIST_DEBUG=1).
func Enabled() bool {
	return os.Getenv("SHELLHIST_DEBUG") == "1"
}

var logger = log.New(os.Stderr, "", log.LstdFlags)

// Logf logs a formatted message when debug mode is enabled. The TUI
// owns the terminal, so output only makes sense with stderr redirected
// to a file.
func Logf(format string, args ...any) {
	if !Enabled() {
		return
	}
	logger.Printf(format, args...)
}
