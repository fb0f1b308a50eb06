// Package lspdiag translates this module's diagnostics into the Language
// Server Protocol's wire representation, the way the teacher's
// cmd/risor-lsp bridges its own analysis results into
// github.com/jdbaldry/go-language-server-protocol/lsp/protocol types for
// textDocument/publishDiagnostics notifications.
package lspdiag

import (
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"

	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/diag"
	"github.com/langcore/parse/token"
)

// FromTree converts every diagnostic on tree into an LSP protocol.Diagnostic,
// keeping the order of tree.Errors (the order the parser recorded them in).
func FromTree(tree *ast.Tree) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(tree.Errors))
	for _, d := range tree.Errors {
		out = append(out, fromDiagnostic(tree, d))
	}
	return out
}

func fromDiagnostic(tree *ast.Tree, d diag.Diagnostic) protocol.Diagnostic {
	loc := tree.Tokens.Loc(d.Token)
	found := tree.Tokens.Kind(d.Token)
	code := d.Kind.Code()

	return protocol.Diagnostic{
		Range:    byteRangeToLSPRange(tree.Source, loc),
		Severity: protocol.SeverityError,
		Code:     string(code),
		Source:   "langparse",
		Message:  d.Message(found),
	}
}

// byteRangeToLSPRange converts a half-open byte range into an LSP Range,
// whose Position fields are 0-based line/UTF-16-code-unit offsets — the one
// place in this module that produces a 0-based position, since every other
// consumer (diag.Locate) reports the 1-based line/column people read in
// error output.
func byteRangeToLSPRange(source []byte, r token.ByteRange) protocol.Range {
	return protocol.Range{
		Start: offsetToPosition(source, r.Start),
		End:   offsetToPosition(source, r.End),
	}
}

func offsetToPosition(source []byte, offset uint32) protocol.Position {
	line := uint32(0)
	lineStart := 0
	for i := 0; i < int(offset) && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	character := utf16Len(source[lineStart:min(int(offset), len(source))])
	return protocol.Position{Line: line, Character: character}
}

// utf16Len counts UTF-16 code units in b, the unit LSP positions are
// specified in (not bytes, not runes).
func utf16Len(b []byte) uint32 {
	var n uint32
	for _, r := range string(b) {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
