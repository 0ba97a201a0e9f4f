// Package term holds the print helpers every command writes through. They
// ignore (n, err) so callers and linters need not.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdout and Stderr are the default destinations; tests swap them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Printf(format string, a ...any)  { _, _ = fmt.Fprintf(Stdout, format, a...) }
func Println(a ...any)                { _, _ = fmt.Fprintln(Stdout, a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(Stderr, a...) }

// Wprintf and Bprintf write to an arbitrary writer or builder.
func Wprintf(w io.Writer, format string, a ...any)        { _, _ = fmt.Fprintf(w, format, a...) }
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }

// Verbose gates Tracef output; commands set it from --verbose.
var Verbose bool

// Tracef prints a "[phase] ..." progress line to Stderr when Verbose is set.
func Tracef(phase, format string, a ...any) {
	if !Verbose {
		return
	}
	_, _ = fmt.Fprintf(Stderr, "[%s] %s\n", phase, fmt.Sprintf(format, a...))
}
