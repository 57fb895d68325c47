package logging

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTTY reports whether w is a terminal. Writers without a file
// descriptor, such as buffers and log files, never are.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether log lines written to w get ANSI colors.
func SupportsColor(w io.Writer) bool {
	return colorAllowed() && IsTTY(w)
}

// colorAllowed applies the process-wide switches: NO_COLOR, TERM=dumb and
// color.NoColor, which the report writer shares.
func colorAllowed() bool {
	if color.NoColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
