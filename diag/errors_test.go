package diag

import (
	"testing"

	"github.com/langcore/parse/token"
)

func TestLocateFirstLine(t *testing.T) {
	src := []byte("const x = 1;\nconst y = 2;\n")
	loc := Locate(src, 6, "f.zig")
	if loc.Line != 1 || loc.Column != 7 {
		t.Fatalf("Locate(6) = {Line:%d Col:%d}, want {1 7}", loc.Line, loc.Column)
	}
	if loc.Source != "const x = 1;" {
		t.Errorf("Locate(6).Source = %q", loc.Source)
	}
}

func TestLocateSecondLine(t *testing.T) {
	src := []byte("const x = 1;\nconst y = 2;\n")
	loc := Locate(src, 20, "f.zig") // the space after 'y' on the second line
	if loc.Line != 2 {
		t.Fatalf("Locate(20).Line = %d, want 2", loc.Line)
	}
	if loc.Source != "const y = 2;" {
		t.Errorf("Locate(20).Source = %q", loc.Source)
	}
}

func TestLocateTrimsTrailingCR(t *testing.T) {
	src := []byte("const x = 1;\r\nrest")
	loc := Locate(src, 6, "")
	if loc.Source != "const x = 1;" {
		t.Errorf("Locate did not trim trailing CR: %q", loc.Source)
	}
}

func TestSourceLocationStringWithAndWithoutFilename(t *testing.T) {
	loc := SourceLocation{Filename: "f.zig", Line: 3, Column: 5}
	if got := loc.String(); got != "f.zig:3:5" {
		t.Errorf("String() = %q, want %q", got, "f.zig:3:5")
	}
	loc.Filename = ""
	if got := loc.String(); got != "3:5" {
		t.Errorf("String() = %q, want %q", got, "3:5")
	}
}

func TestNewFormattedErrorSingleCharToken(t *testing.T) {
	src := []byte("const x = ;")
	tokens := &token.List{
		Kinds: []token.Kind{token.KeywordConst, token.Identifier, token.Equal, token.Semicolon, token.Eof},
		Locs: []token.ByteRange{
			{Start: 0, End: 5},
			{Start: 6, End: 7},
			{Start: 8, End: 9},
			{Start: 10, End: 11},
			{Start: 11, End: 11},
		},
	}
	d := Diagnostic{Kind: ExpectedExpr, Token: 3}
	fe := NewFormattedError(d, src, tokens, "f.zig")
	if fe.Code != "P1002" {
		t.Errorf("Code = %s, want P1002", fe.Code)
	}
	if fe.Message != "expected expression, found ';'" {
		t.Errorf("Message = %q", fe.Message)
	}
	if fe.Location.Column != 11 {
		t.Errorf("Location.Column = %d, want 11", fe.Location.Column)
	}
	if fe.EndCol != 0 {
		t.Errorf("EndCol = %d, want 0 for a single-byte token", fe.EndCol)
	}
}

func TestNewFormattedErrorMultiCharTokenSetsEndCol(t *testing.T) {
	src := []byte("const 123abc = 1;")
	tokens := &token.List{
		Kinds: []token.Kind{token.KeywordConst, token.Invalid, token.Eof},
		Locs: []token.ByteRange{
			{Start: 0, End: 5},
			{Start: 6, End: 12}, // "123abc"
			{Start: 18, End: 18},
		},
	}
	d := Diagnostic{Kind: InvalidToken, Token: 1}
	fe := NewFormattedError(d, src, tokens, "")
	if fe.Location.Column != 7 {
		t.Errorf("Location.Column = %d, want 7", fe.Location.Column)
	}
	if fe.EndCol != 12 {
		t.Errorf("EndCol = %d, want 12 (end of '123abc')", fe.EndCol)
	}
}
