// Package bufwriter provides the small indentation-aware line writer shared
// by the artifact renderers.
package bufwriter

import (
	"fmt"
	"strings"
)

// Writer accumulates rendered output line by line with indentation tracking.
// The zero value is ready to use.
type Writer struct {
	sb     strings.Builder
	indent int
}

// Indent increases the indentation level for subsequent lines.
func (w *Writer) Indent() {
	w.indent++
}

// Dedent decreases the indentation level; it never goes below zero.
func (w *Writer) Dedent() {
	if w.indent > 0 {
		w.indent--
	}
}

// WriteLine writes one line at the current indentation level. Empty lines are
// written without trailing indentation.
func (w *Writer) WriteLine(line string) {
	if line != "" {
		w.sb.WriteString(strings.Repeat("    ", w.indent))
		w.sb.WriteString(line)
	}
	w.sb.WriteString("\n")
}

// WriteLinef formats and writes one line at the current indentation level.
func (w *Writer) WriteLinef(format string, args ...any) {
	w.WriteLine(fmt.Sprintf(format, args...))
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.sb.String()
}

// Reset discards all written output and resets indentation.
func (w *Writer) Reset() {
	w.sb.Reset()
	w.indent = 0
}
