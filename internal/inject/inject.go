// Package inject writes the selected command into the controlling
// terminal's input buffer so the shell presents it as pending input.
package inject

import (
	"errors"
	"fmt"
)

// ErrUnsupported indicates the platform has no terminal input
// injection facility.
var ErrUnsupported = errors.New("terminal input injection not supported on this platform")

// Fill places cmd into the terminal input buffer of stdin, one byte at
// a time. The caller decides how to recover on failure; the selection
// itself is already final.
func Fill(cmd string) error {
	if err := fill(cmd); err != nil {
		return fmt.Errorf("fill terminal input: %w", err)
	}
	return nil
}
