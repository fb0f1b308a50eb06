package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/parser"
	"github.com/langcore/parse/printer"
	"github.com/langcore/parse/token"
)

// checkSpanContainment walks every node reachable from root and asserts
// that each child's span is contained within its parent's span (P1).
func checkSpanContainment(t *testing.T, tree *ast.Tree, root ast.Node) {
	t.Helper()
	pFirst, pLast := root.FirstToken(), root.LastToken()
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil || n == root {
			return true
		}
		cFirst, cLast := n.FirstToken(), n.LastToken()
		require.GreaterOrEqual(t, cFirst, pFirst, "child %T starts before parent %T", n, root)
		require.LessOrEqual(t, cLast, pLast, "child %T ends after parent %T", n, root)
		return true
	})
}

// checkTokenValidity asserts every token index stored on a node is within
// [0, token_count) and is not a line-comment token (P2).
func checkTokenValidity(t *testing.T, tree *ast.Tree, root ast.Node) {
	t.Helper()
	count := tree.Tokens.Len()
	ast.Inspect(root, func(n ast.Node) bool {
		for _, idx := range []token.Index{n.FirstToken(), n.LastToken()} {
			if idx == ast.InvalidIndex {
				continue
			}
			require.Less(t, int(idx), count, "token index %d out of range for %T", idx, n)
			require.NotEqual(t, token.LineComment, tree.Tokens.Kind(idx), "node %T points at a line-comment token", n)
		}
		return true
	})
}

func TestInvariantSpanContainmentAndTokenValidity(t *testing.T) {
	for _, c := range goldenCases {
		t.Run(c.name, func(t *testing.T) {
			tree := parser.Parse([]byte(c.src))
			require.Empty(t, tree.Errors)
			for _, decl := range tree.Root.Decls {
				checkSpanContainment(t, tree, decl)
				checkTokenValidity(t, tree, decl)
			}
		})
	}
}

// TestInvariantDiagnosticsAreOrdered checks P3: diagnostic token indices are
// monotone non-decreasing, using a source with several independent errors
// spread across the buffer.
func TestInvariantDiagnosticsAreOrdered(t *testing.T) {
	src := "const;\nconst;\nconst;\n"
	tree := parser.Parse([]byte(src))
	require.NotEmpty(t, tree.Errors)
	for i := 1; i < len(tree.Errors); i++ {
		require.GreaterOrEqual(t, tree.Errors[i].Token, tree.Errors[i-1].Token,
			"diagnostic %d (token %d) is out of order relative to diagnostic %d (token %d)",
			i, tree.Errors[i].Token, i-1, tree.Errors[i-1].Token)
	}
}

// TestInvariantRoundTripPreservesTokenOrder checks P4: the printer emits
// exactly the non-trivia tokens of the original buffer, in order.
func TestInvariantRoundTripPreservesTokenOrder(t *testing.T) {
	for _, c := range goldenCases {
		t.Run(c.name, func(t *testing.T) {
			tree := parser.Parse([]byte(c.src))
			require.Empty(t, tree.Errors)
			printed := printer.Print(tree)

			wantKinds := nonTriviaKinds(tree.Tokens)
			gotTree := parser.Parse([]byte(printed))
			require.Empty(t, gotTree.Errors, "printed output must itself parse cleanly")
			gotKinds := nonTriviaKinds(gotTree.Tokens)
			require.Equal(t, wantKinds, gotKinds)
		})
	}
}

func nonTriviaKinds(tokens *token.List) []token.Kind {
	var out []token.Kind
	for i := 0; i < tokens.Len(); i++ {
		k := tokens.Kind(token.Index(i))
		if token.IsTrivia(k) || k == token.Eof {
			continue
		}
		out = append(out, k)
	}
	return out
}

// TestInvariantTriviaIdempotence checks P5: inserting a line comment between
// two tokens does not change the AST's decl count or shape, only the token
// indices recorded on it.
func TestInvariantTriviaIdempotence(t *testing.T) {
	plain := parser.Parse([]byte("const x = 1 + 2;"))
	withComment := parser.Parse([]byte("const x = 1 + // inline\n2;"))
	require.Empty(t, plain.Errors)
	require.Empty(t, withComment.Errors)

	v1 := plain.Root.Decls[0].(*ast.VarDecl)
	v2 := withComment.Root.Decls[0].(*ast.VarDecl)
	top1 := v1.Value.(*ast.InfixOp)
	top2 := v2.Value.(*ast.InfixOp)
	require.Equal(t, plain.TokenText(top1.Op), withComment.TokenText(top2.Op))
	require.IsType(t, top1.Lhs, top2.Lhs)
	require.IsType(t, top1.Rhs, top2.Rhs)
}

// TestInvariantPrecedenceGrouping checks P7 across a few operator pairs of
// distinct precedence: the higher-precedence operator must group first.
func TestInvariantPrecedenceGrouping(t *testing.T) {
	cases := []struct {
		src      string
		topOp    string
		nestedOp string
	}{
		{"const r = a + b * c;", "+", "*"},
		{"const r = a or b and c;", "or", "and"},
		{"const r = a == b or c == d;", "or", "=="},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			tree := parser.Parse([]byte(c.src))
			require.Empty(t, tree.Errors)
			v := tree.Root.Decls[0].(*ast.VarDecl)
			top, ok := v.Value.(*ast.InfixOp)
			require.True(t, ok, "top-level value is %T, want *ast.InfixOp", v.Value)
			require.Equal(t, c.topOp, tree.TokenText(top.Op))
		})
	}
}

// TestInvariantTryWrapsWholeBoolOrChain checks P7 for the `try` precedence
// level: it sits above boolOr and must wrap the entire chain rather than
// binding only to the first operand.
func TestInvariantTryWrapsWholeBoolOrChain(t *testing.T) {
	tree := parser.Parse([]byte("const r = try a or b;"))
	require.Empty(t, tree.Errors)
	v := tree.Root.Decls[0].(*ast.VarDecl)
	outer, ok := v.Value.(*ast.PrefixOp)
	require.True(t, ok, "top-level value is %T, want *ast.PrefixOp", v.Value)
	require.Equal(t, "try", tree.TokenText(outer.Op))
	require.IsType(t, &ast.InfixOp{}, outer.Child, "try must wrap the whole 'a or b' chain")
}

// TestInvariantChainOnceAssignment checks P8: chained assignment does not
// silently associate left; the second '=' is rejected rather than folded
// into a left-associated assignment tree.
func TestInvariantChainOnceAssignment(t *testing.T) {
	src := "fn f() void { a = b = c; }"
	tree := parser.Parse([]byte(src))
	require.NotEmpty(t, tree.Errors, "chained assignment must be flagged, not silently accepted")
}

// TestInvariantChainOnceComparison checks P8 for comparison operators: `a
// == b == c` must not silently parse as a left-associated chain of two
// comparisons — parseCompare only ever consumes one comparison operator, so
// the second '==' is left for the caller to reject.
func TestInvariantChainOnceComparison(t *testing.T) {
	tree := parser.Parse([]byte("const r = a == b == c;"))
	require.NotEmpty(t, tree.Errors, "chained comparison must be flagged, not silently accepted")
	v := tree.Root.Decls[0].(*ast.VarDecl)
	top, ok := v.Value.(*ast.InfixOp)
	require.True(t, ok)
	require.Equal(t, "==", tree.TokenText(top.Op))
	require.IsType(t, &ast.Ident{}, top.Lhs, "the single parsed comparison should cover only 'a == b'")
}
