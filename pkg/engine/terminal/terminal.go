package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FitMapSize fills in a zero width or height from the terminal size,
// leaving reserved rows free below the map.
func FitMapSize(width, height, reserved int) (int, int) {
	termWidth, termHeight := GetSize()
	if width == 0 {
		width = termWidth
	}
	if height == 0 {
		height = termHeight - reserved
	}
	return width, height
}
