// Package terminal provides utilities for terminal operations such as clearing text.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines clears text that was previously printed, such as a
// credential prompt the user has already answered. It calculates how many
// terminal lines the text occupied at the current width, then moves up and
// clears each one with ANSI escape sequences. One extra line is cleared to
// account for the newline produced when the user presses Enter.
func ClearPreviousLines(textLength int) {
	termWidth := 80 // fallback when not attached to a terminal
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K") // move to start and clear the entire line
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A") // move up one line
		}
	}
}
