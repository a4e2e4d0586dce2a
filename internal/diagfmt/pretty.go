package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ember/internal/diag"
	"ember/internal/source"
)

// Pretty renders every diagnostic in the bag in a human-readable form:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  ^~~~ underline over the primary span
//
// Callers are expected to Sort the bag beforehand.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Bold).Sprint(code)
	}

	file := fs.Get(d.Primary.File)
	if file == nil {
		fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)
		return
	}

	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file.Path, opts.PathMode), start.Line, start.Col, sev, code, d.Message)

	writeContext(w, file, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  note: %s\n", note.Msg)
		}
	}
}

// writeContext prints the source line the span starts on with a caret
// underline beneath it. Tabs and wide runes shift the underline by their
// display width, not their byte count.
func writeContext(w io.Writer, file *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" && span.Empty() {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := displayWidth(line[:col])

	spanLen := int(span.Len())
	if spanLen < 1 {
		spanLen = 1
	}
	if col+spanLen > len(line) {
		spanLen = len(line) - col
		if spanLen < 1 {
			spanLen = 1
		}
	}
	width := displayWidth(line[col:min(col+spanLen, len(line))])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = color.New(color.FgHiRed, color.Bold).Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}

func displayWidth(s string) int {
	width := 0
	for _, r := range s {
		if r == '\t' {
			width += 8 - width%8
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgHiRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgHiYellow, color.Bold)
	default:
		return color.New(color.FgHiBlue)
	}
}
