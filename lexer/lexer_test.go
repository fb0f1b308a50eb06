package lexer

import (
	"testing"

	"github.com/langcore/parse/token"
)

func kinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	l := Scan([]byte(src))
	out := make([]token.Kind, l.Len())
	for i := range out {
		out[i] = l.Kind(token.Index(i))
	}
	return out
}

func assertKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	want = append(want, token.Eof)
	got := kinds(t, src)
	if len(got) != len(want) {
		t.Fatalf("Scan(%q) produced %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Scan(%q)[%d] = %v, want %v (full: %v)", src, i, got[i], want[i], got)
		}
	}
}

func TestScanAlwaysEndsInEof(t *testing.T) {
	l := Scan([]byte("const x = 1;"))
	if l.Kind(token.Index(l.Len()-1)) != token.Eof {
		t.Fatal("final token is not Eof")
	}
}

func TestScanEmptySource(t *testing.T) {
	assertKinds(t, "")
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	assertKinds(t, "const foo", token.KeywordConst, token.Identifier)
	assertKinds(t, "fn_name", token.Identifier)
	assertKinds(t, "_", token.Identifier)
}

func TestScanIntegerAndFloatLiterals(t *testing.T) {
	assertKinds(t, "123", token.IntegerLiteral)
	assertKinds(t, "1_000", token.IntegerLiteral)
	assertKinds(t, "0xFF", token.IntegerLiteral)
	assertKinds(t, "0b1010", token.IntegerLiteral)
	assertKinds(t, "3.14", token.FloatLiteral)
	assertKinds(t, "1e10", token.FloatLiteral)
	assertKinds(t, "1.5e-3", token.FloatLiteral)
}

func TestScanRangeDotDotIsNotAFloat(t *testing.T) {
	assertKinds(t, "1..5", token.IntegerLiteral, token.DotDot, token.IntegerLiteral)
}

func TestScanStringAndCharLiterals(t *testing.T) {
	assertKinds(t, `"hello"`, token.StringLiteral)
	assertKinds(t, `"esc\"aped"`, token.StringLiteral)
	assertKinds(t, `'a'`, token.CharLiteral)
	assertKinds(t, `'\n'`, token.CharLiteral)
}

func TestScanUnterminatedStringIsInvalid(t *testing.T) {
	assertKinds(t, "\"unterminated\nrest", token.Invalid, token.Identifier)
}

func TestScanComments(t *testing.T) {
	assertKinds(t, "// a comment", token.LineComment)
	assertKinds(t, "/// a doc comment", token.DocComment)
	assertKinds(t, "//! container doc", token.ContainerDocComment)
	assertKinds(t, "//// not a doc comment", token.LineComment)
}

func TestScanMultilineString(t *testing.T) {
	assertKinds(t, "\\\\hello", token.MultilineStringLiteralLine)
	assertKinds(t, "\\x", token.Invalid, token.Identifier)
}

func TestScanOperatorsLongestMatch(t *testing.T) {
	assertKinds(t, "<<|=", token.AngleBracketAngleBracketLeftPipeEqual)
	assertKinds(t, "<<=", token.AngleBracketAngleBracketLeftEqual)
	assertKinds(t, "<<|", token.AngleBracketAngleBracketLeftPipe)
	assertKinds(t, "<<", token.AngleBracketAngleBracketLeft)
	assertKinds(t, "<", token.AngleBracketLeft)
	assertKinds(t, "**", token.AsteriskAsterisk)
	assertKinds(t, "*", token.Asterisk)
	assertKinds(t, "..", token.DotDot)
	assertKinds(t, "...", token.DotDotDot)
	assertKinds(t, ".", token.Dot)
}

func TestScanAmpersandDoesNotMergeWhenSpaced(t *testing.T) {
	assertKinds(t, "a & &b", token.Identifier, token.Ampersand, token.Ampersand, token.Identifier)
}

func TestScanDoubleAmpersandIsTwoAdjacentTokens(t *testing.T) {
	l := Scan([]byte("a && b"))
	if l.Kind(1) != token.Ampersand || l.Kind(2) != token.Ampersand {
		t.Fatalf("expected two adjacent Ampersand tokens for '&&', got %v, %v", l.Kind(1), l.Kind(2))
	}
	if l.Loc(1).End != l.Loc(2).Start {
		t.Fatalf("the two '&' tokens from '&&' are not byte-adjacent: %v, %v", l.Loc(1), l.Loc(2))
	}
}

func TestScanAtToken(t *testing.T) {
	assertKinds(t, "@import", token.At, token.Identifier)
}

func TestScanWhitespaceIsNotEmitted(t *testing.T) {
	assertKinds(t, "  \t\n  const", token.KeywordConst)
}

func TestScanInvalidByte(t *testing.T) {
	assertKinds(t, "`", token.Invalid)
}
