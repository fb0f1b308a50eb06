package diag

import (
	"fmt"
	"strings"

	"github.com/langcore/parse/token"
)

// SourceLocation is a line/column position resolved from a token index,
// used only for display — the parser itself never stores line/column
// numbers on tokens (spec.md §6: "Column and line numbers are never stored
// in tokens").
type SourceLocation struct {
	Filename string
	Line     int // 1-based
	Column   int // 1-based
	Source   string
}

// String formats the location as "file:line:col", or "line:col" if no
// filename is set.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero reports whether the location was never resolved.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// Locate computes the 1-based line/column of a byte offset into source,
// plus the text of the line it falls on. It is the only place in this
// module that turns a byte offset into a line/column pair — every other
// component deals in token indices (spec.md §6).
func Locate(source []byte, offset uint32, filename string) SourceLocation {
	line := 1
	lineStart := 0
	for i := 0; i < int(offset) && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := lineStart
	for lineEnd < len(source) && source[lineEnd] != '\n' {
		lineEnd++
	}
	return SourceLocation{
		Filename: filename,
		Line:     line,
		Column:   int(offset) - lineStart + 1,
		Source:   strings.TrimRight(string(source[lineStart:lineEnd]), "\r"),
	}
}

// NewFormattedError resolves a Diagnostic against the token list and source
// buffer it was raised against, producing the display-ready FormattedError
// a Formatter (or an LSP bridge, see lspdiag) renders. Diagnostic itself
// stays free of source/token dependencies; this is the one place that
// reaches for both.
func NewFormattedError(d Diagnostic, source []byte, tokens *token.List, filename string) *FormattedError {
	found := tokens.Kind(d.Token)
	loc := tokens.Loc(d.Token)
	fe := &FormattedError{
		Code:     d.Kind.Code(),
		Message:  d.Message(found),
		Location: Locate(source, loc.Start, filename),
		Hint:     d.Hint,
	}
	if loc.End > loc.Start+1 {
		endLoc := Locate(source, loc.End-1, filename)
		if endLoc.Line == fe.Location.Line {
			fe.EndCol = endLoc.Column
		}
	}
	return fe
}
