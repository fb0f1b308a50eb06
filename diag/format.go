package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders Diagnostics as Rust/Zig-style annotated source
// snippets, grounded in the teacher's errors/format.go but targeting
// fatih/color (the dependency actually declared in go.mod) instead of an
// ad hoc color helper.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter returns a Formatter; pass UseColor false for non-terminal
// output (files, CI logs).
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

var (
	colorErrorBold = color.New(color.FgRed, color.Bold)
	colorCodeTag   = color.New(color.FgHiBlack)
	colorLocation  = color.New(color.FgCyan)
	colorLineNum   = color.New(color.FgHiBlack)
	colorSource    = color.New(color.FgWhite)
	colorCaret     = color.New(color.FgHiRed)
	colorHint      = color.New(color.FgHiYellow)
)

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}

// FormattedError is a Diagnostic paired with everything needed to render
// it: its message text, source location, and the line(s) of source it
// points at.
type FormattedError struct {
	Code     Code
	Message  string
	Location SourceLocation
	EndCol   int    // for multi-character underlines; 0 means single caret
	Hint     string // "did you mean" suggestion
}

// Format renders a single FormattedError.
func (f *Formatter) Format(err *FormattedError) string {
	return f.FormatWithPrefix(err, "")
}

// FormatWithPrefix renders err, using prefix (e.g. "2/5") instead of err.Code
// when prefix is non-empty — used by FormatMultiple to number a batch of
// diagnostics from the same parse.
func (f *Formatter) FormatWithPrefix(err *FormattedError, prefix string) string {
	var b strings.Builder

	lineNumWidth := 2
	if err.Location.Line >= 100 {
		lineNumWidth = len(fmt.Sprintf("%d", err.Location.Line))
	}
	padding := strings.Repeat(" ", lineNumWidth)

	b.WriteString(f.paint(colorErrorBold, "error"))
	tag := prefix
	if tag == "" {
		tag = string(err.Code)
	}
	if tag != "" {
		b.WriteString(f.paint(colorCodeTag, fmt.Sprintf("[%s]", tag)))
	}
	b.WriteString(": ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	if err.Location.Line > 0 || err.Location.Filename != "" {
		b.WriteString(f.paint(colorLineNum, padding))
		b.WriteString(f.paint(colorLocation, "--> "+err.Location.String()))
		b.WriteString("\n")
	}

	if err.Location.Source != "" {
		b.WriteString(f.paint(colorLineNum, padding))
		b.WriteString(f.paint(colorLineNum, " |\n"))
		lineNumStr := fmt.Sprintf("%*d", lineNumWidth, err.Location.Line)
		b.WriteString(f.paint(colorLineNum, lineNumStr))
		b.WriteString(f.paint(colorLineNum, " | "))
		b.WriteString(f.paint(colorSource, err.Location.Source))
		b.WriteString("\n")

		if err.Location.Column > 0 {
			b.WriteString(f.paint(colorLineNum, padding))
			b.WriteString(f.paint(colorLineNum, " | "))
			b.WriteString(strings.Repeat(" ", err.Location.Column-1))
			caretLen := 1
			if err.EndCol > err.Location.Column {
				caretLen = err.EndCol - err.Location.Column + 1
			}
			b.WriteString(f.paint(colorCaret, strings.Repeat("^", caretLen)))
			b.WriteString("\n")
		}
	}

	if err.Hint != "" {
		b.WriteString(f.paint(colorLineNum, padding))
		b.WriteString(f.paint(colorLineNum, " = "))
		b.WriteString(f.paint(colorHint, "hint: "))
		b.WriteString(err.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// FormatMultiple renders a batch of diagnostics with a "n/total" prefix and
// a trailing summary line, the way a CLI driver reports a failed parse.
func (f *Formatter) FormatMultiple(errs []*FormattedError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return f.Format(errs[0])
	}
	var b strings.Builder
	total := len(errs)
	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.FormatWithPrefix(err, fmt.Sprintf("%d/%d", i+1, total)))
	}
	b.WriteString("\n")
	summary := fmt.Sprintf("found %d errors", total)
	b.WriteString(f.paint(colorErrorBold, summary))
	b.WriteString("\n")
	return b.String()
}
