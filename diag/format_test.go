package diag

import (
	"strings"
	"testing"
)

func sampleFormattedError() *FormattedError {
	return &FormattedError{
		Code:    "P1002",
		Message: "expected expression, found ';'",
		Location: SourceLocation{
			Filename: "f.zig",
			Line:     1,
			Column:   11,
			Source:   "const x = ;",
		},
	}
}

func TestFormatNoColorContainsMessageAndLocation(t *testing.T) {
	f := NewFormatter(false)
	out := f.Format(sampleFormattedError())
	if !strings.Contains(out, "expected expression, found ';'") {
		t.Errorf("Format() missing message: %q", out)
	}
	if !strings.Contains(out, "f.zig:1:11") {
		t.Errorf("Format() missing location: %q", out)
	}
	if !strings.Contains(out, "[P1002]") {
		t.Errorf("Format() missing code tag: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Format() with UseColor=false emitted ANSI escapes: %q", out)
	}
}

func TestFormatCaretPlacement(t *testing.T) {
	f := NewFormatter(false)
	out := f.Format(sampleFormattedError())
	lines := strings.Split(out, "\n")
	var caretLine string
	for _, l := range lines {
		if strings.Contains(l, "^") {
			caretLine = l
		}
	}
	if caretLine == "" {
		t.Fatalf("Format() produced no caret line:\n%s", out)
	}
	if strings.Count(caretLine, "^") != 1 {
		t.Errorf("single-column diagnostic should have exactly one caret: %q", caretLine)
	}
}

func TestFormatMultiCaretUsesEndCol(t *testing.T) {
	f := NewFormatter(false)
	e := sampleFormattedError()
	e.EndCol = 15
	out := f.Format(e)
	var caretLine string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "^") {
			caretLine = l
		}
	}
	if strings.Count(caretLine, "^") != 5 {
		t.Errorf("expected a 5-wide caret run (cols 11-15), got %q", caretLine)
	}
}

func TestFormatWithHint(t *testing.T) {
	f := NewFormatter(false)
	e := sampleFormattedError()
	e.Hint = "did you mean 'const'?"
	out := f.Format(e)
	if !strings.Contains(out, "hint: did you mean 'const'?") {
		t.Errorf("Format() missing hint: %q", out)
	}
}

func TestFormatMultipleEmpty(t *testing.T) {
	f := NewFormatter(false)
	if got := f.FormatMultiple(nil); got != "" {
		t.Errorf("FormatMultiple(nil) = %q, want empty", got)
	}
}

func TestFormatMultipleSingleDelegatesToFormat(t *testing.T) {
	f := NewFormatter(false)
	e := sampleFormattedError()
	if got := f.FormatMultiple([]*FormattedError{e}); got != f.Format(e) {
		t.Errorf("FormatMultiple with one error should equal Format(e)")
	}
}

func TestFormatMultipleManyHasSummaryAndPrefixes(t *testing.T) {
	f := NewFormatter(false)
	e1 := sampleFormattedError()
	e2 := sampleFormattedError()
	out := f.FormatMultiple([]*FormattedError{e1, e2})
	if !strings.Contains(out, "found 2 errors") {
		t.Errorf("FormatMultiple() missing summary: %q", out)
	}
	if !strings.Contains(out, "[1/2]") || !strings.Contains(out, "[2/2]") {
		t.Errorf("FormatMultiple() missing n/total prefixes: %q", out)
	}
}
