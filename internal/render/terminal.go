package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pylens-dev/pylens/internal/annotation"
)

// Terminal renders annotations as colorized bubbles under the offending
// source lines, one block per annotated line.
type Terminal struct {
	out  io.Writer
	file string
	// lines holds the file content for inline source excerpts; may be nil
	// when the source could not be read.
	lines []string

	warnColor  *color.Color
	errorColor *color.Color
	lineColor  *color.Color
}

// NewTerminal creates a terminal renderer for one file. src may be empty.
func NewTerminal(out io.Writer, file, src string) *Terminal {
	var lines []string
	if src != "" {
		lines = strings.Split(src, "\n")
	}
	return &Terminal{
		out:        out,
		file:       file,
		lines:      lines,
		warnColor:  color.New(color.FgYellow),
		errorColor: color.New(color.FgRed),
		lineColor:  color.New(color.FgCyan),
	}
}

// Clear is a no-op on a terminal; each pass writes a fresh report.
func (t *Terminal) Clear() {}

// Annotate prints one annotation bubble:
//
//	app.py:12
//	    import os
//	    ▎ Col 1: 'os' imported but unused
func (t *Terminal) Annotate(line int, text string, style annotation.Style, scroll bool) {
	c := t.warnColor
	if style == annotation.StyleError {
		c = t.errorColor
	}

	t.lineColor.Fprintf(t.out, "%s:%d\n", t.file, line)
	if src := t.sourceLine(line); src != "" {
		fmt.Fprintf(t.out, "    %s\n", src)
	}
	for _, msg := range strings.Split(text, ",\n") {
		c.Fprintf(t.out, "    ▎ %s\n", msg)
	}
}

// Notify prints the status line for a clean pass.
func (t *Terminal) Notify(message string) {
	color.New(color.FgGreen).Fprintf(t.out, "✓ %s: %s\n", t.file, message)
}

func (t *Terminal) sourceLine(line int) string {
	if line < 1 || line > len(t.lines) {
		return ""
	}
	return strings.TrimRight(t.lines[line-1], " \t")
}
