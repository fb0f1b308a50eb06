package printer

import (
	"testing"

	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/token"
)

// buildCallTree hand-builds the tree for `foo(x, y);` as a single ExprStmt
// wrapping a Call, exercising comma/paren spacing rules.
func buildCallTree() (*ast.Tree, *ast.ExprStmt) {
	source := []byte("foo(x, y);")
	kinds := []token.Kind{
		token.Identifier, // foo  0
		token.LParen,     // (    1
		token.Identifier, // x    2
		token.Comma,      // ,    3
		token.Identifier, // y    4
		token.RParen,     // )    5
		token.Semicolon,  // ;    6
		token.Eof,        //      7
	}
	locs := []token.ByteRange{
		{Start: 0, End: 3}, {Start: 3, End: 4}, {Start: 4, End: 5}, {Start: 5, End: 6},
		{Start: 7, End: 8}, {Start: 8, End: 9}, {Start: 9, End: 10}, {Start: 10, End: 10},
	}
	tokens := &token.List{Kinds: kinds, Locs: locs}

	call := &ast.Call{
		Callee: &ast.Ident{Tok: 0, Name: "foo"},
		Async:  ast.InvalidIndex,
		Lparen: 1,
		Args:   []ast.Expr{&ast.Ident{Tok: 2, Name: "x"}, &ast.Ident{Tok: 4, Name: "y"}},
		Rparen: 5,
	}
	stmt := &ast.ExprStmt{X: call, Semi: 6}
	root := &ast.Root{Decls: nil, EofToken: 7}
	tree := &ast.Tree{Source: source, Tokens: tokens, Root: root}
	return tree, stmt
}

func TestPrintNodeReconstructsCallWithCommaSpacing(t *testing.T) {
	tree, stmt := buildCallTree()
	got := PrintNode(tree, stmt)
	want := "foo(x, y);"
	if got != want {
		t.Fatalf("PrintNode() = %q, want %q", got, want)
	}
}

func TestNeedsSpaceNoSpaceBeforeClosingDelimiters(t *testing.T) {
	cases := []token.Kind{token.Comma, token.Semicolon, token.RParen, token.RBracket, token.RBrace, token.Dot, token.Colon, token.QuestionMark}
	for _, k := range cases {
		if needsSpace(token.Identifier, k) {
			t.Errorf("needsSpace(Identifier, %v) = true, want false", k)
		}
	}
}

func TestNeedsSpaceNoSpaceAfterOpeningDelimiters(t *testing.T) {
	cases := []token.Kind{token.LParen, token.LBracket, token.Dot, token.At, token.Tilde, token.Bang}
	for _, k := range cases {
		if needsSpace(k, token.Identifier) {
			t.Errorf("needsSpace(%v, Identifier) = true, want false", k)
		}
	}
}

func TestNeedsSpaceDefaultsToTrue(t *testing.T) {
	if !needsSpace(token.Identifier, token.Identifier) {
		t.Error("needsSpace(Identifier, Identifier) = false, want true")
	}
}

func TestEmitRangeSkipsTrivia(t *testing.T) {
	source := []byte("x // trailing\n")
	tokens := &token.List{
		Kinds: []token.Kind{token.Identifier, token.LineComment, token.Eof},
		Locs: []token.ByteRange{
			{Start: 0, End: 1},
			{Start: 2, End: 13},
			{Start: 14, End: 14},
		},
	}
	tree := &ast.Tree{Source: source, Tokens: tokens, Root: &ast.Root{EofToken: 2}}
	// ast.Bad carries a hand-set span, so it drives emitRange over a token
	// range no single real node produces (an identifier followed by a
	// trailing comment).
	got := PrintNode(tree, &ast.Bad{First: 0, Last: 1})
	if got != "x" {
		t.Fatalf("PrintNode() = %q, want %q (comment skipped)", got, "x")
	}
}
