package ui

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"golang.org/x/term"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI drops color escapes, leaving the visible text.
func StripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// OK prints a success line in the current theme.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymDone+" "+msg))
}

// Fail prints an error line in the current theme.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymFail+" "+msg))
}
