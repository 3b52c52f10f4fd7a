// Package terminal answers the few questions the renderers need about the
// output terminal: how big it is and whether it can be cleared.
package terminal

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	// DefaultCols and DefaultRows are used when no size can be found.
	DefaultCols = 80
	DefaultRows = 24

	clearSequence = "\u001b[H\u001b[2J"
)

// Size returns the column and row count of the terminal attached to
// stdout. When stdout is not a terminal it falls back to the COLUMNS and
// LINES environment variables, then to DefaultCols x DefaultRows.
func Size() (cols, rows int) {
	if c, r, err := SizeOf(os.Stdout); err == nil {
		return c, r
	}
	return envInt("COLUMNS", DefaultCols), envInt("LINES", DefaultRows)
}

// SizeOf queries the window size of f.
func SizeOf(f *os.File) (cols, rows int, err error) {
	return term.GetSize(int(f.Fd()))
}

// IsTerminal reports whether w is an *os.File connected to a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Clear homes the cursor and erases the screen. Writers that are not
// terminals (pipes, files, buffers) are left untouched.
func Clear(w io.Writer) error {
	if !IsTerminal(w) {
		return nil
	}
	_, err := io.WriteString(w, clearSequence)
	return err
}

func envInt(name string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
