package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// OK prints a success line.
func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.style(t.Success).Render(t.SymOK+" "+msg))
}

// Fail prints an error line; callers pass stderr.
func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.style(t.Error).Bold(true).Render(t.SymFail+" "+msg))
}

// Notice prints a neutral status line such as a cancellation.
func Notice(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.style(t.Muted).Render(msg))
}

// IsTerminal reports whether w is a terminal device.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
