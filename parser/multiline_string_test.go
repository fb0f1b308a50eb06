package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/parser"
)

// A `//` line comment between two `\\` lines must not break the run: the
// token cursor's Advance/Peek skip LineComment tokens transparently (spec.md
// §4.10 and §9's noted non-obvious interleaving rule), so
// parseMultilineString's `for p.peek() == token.MultilineStringLiteralLine`
// loop sees straight through the comment to the next line.
func TestMultilineStringToleratesInterleavedLineComment(t *testing.T) {
	src := "const banner =" +
		"\n\\\\first line" +
		"\n// a comment in between" +
		"\n\\\\second line" +
		"\n\\\\third line" +
		"\n;\n"
	tree := parser.Parse([]byte(src))
	require.Empty(t, tree.Errors)
	require.Len(t, tree.Root.Decls, 1)

	v, ok := tree.Root.Decls[0].(*ast.VarDecl)
	require.True(t, ok, "decl is %T, want *ast.VarDecl", tree.Root.Decls[0])
	x, ok := v.Value.(*ast.MultilineStringLiteral)
	require.True(t, ok, "Value is %T, want *ast.MultilineStringLiteral", v.Value)
	require.Len(t, x.Lines, 3, "interleaved comment must not split or drop a line")
}

// Without any interleaved comment the same three lines are still harvested
// as a single run, establishing the baseline the comment-tolerant case is
// measured against.
func TestMultilineStringWithoutCommentsHasSameLineCount(t *testing.T) {
	src := "const banner =" +
		"\n\\\\first line" +
		"\n\\\\second line" +
		"\n\\\\third line" +
		"\n;\n"
	tree := parser.Parse([]byte(src))
	require.Empty(t, tree.Errors)

	v := tree.Root.Decls[0].(*ast.VarDecl)
	x, ok := v.Value.(*ast.MultilineStringLiteral)
	require.True(t, ok, "Value is %T, want *ast.MultilineStringLiteral", v.Value)
	require.Len(t, x.Lines, 3)
}
