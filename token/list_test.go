package token

import "testing"

func newList(kinds ...Kind) *List {
	locs := make([]ByteRange, len(kinds))
	for i := range locs {
		locs[i] = ByteRange{Start: uint32(i), End: uint32(i + 1)}
	}
	return &List{Kinds: kinds, Locs: locs}
}

func TestCursorAdvanceSkipsLineComments(t *testing.T) {
	l := newList(Identifier, LineComment, LineComment, Plus, Eof)
	c := NewCursor(l)

	first := c.Advance()
	if first != 0 || l.Kind(first) != Identifier {
		t.Fatalf("first Advance() = %d (%v), want Identifier at 0", first, l.Kind(first))
	}
	second := c.Advance()
	if second != 3 || l.Kind(second) != Plus {
		t.Fatalf("second Advance() = %d (%v), want Plus at 3 (comments skipped)", second, l.Kind(second))
	}
}

func TestCursorPeekNeverReturnsTrivia(t *testing.T) {
	l := newList(LineComment, Identifier, Eof)
	c := NewCursor(l)
	// NewCursor already steps over the leading comment, so the first
	// Advance produces the identifier and Peek then lands on Eof.
	c.Advance()
	if c.Peek() != Eof {
		t.Fatalf("Peek() after skipping the leading comment = %v, want Eof", c.Peek())
	}
}

func TestCursorPushBackRestoresPosition(t *testing.T) {
	l := newList(Identifier, Plus, Identifier, Eof)
	c := NewCursor(l)
	first := c.Advance()
	second := c.Advance()
	c.PushBack(second)
	if c.PeekIndex() != second {
		t.Fatalf("after PushBack, PeekIndex() = %d, want %d", c.PeekIndex(), second)
	}
	third := c.Advance()
	if third != second {
		t.Fatalf("re-Advance after PushBack = %d, want %d", third, second)
	}
	_ = first
}

func TestCursorPushBackAcrossComments(t *testing.T) {
	l := newList(Identifier, LineComment, Plus, Eof)
	c := NewCursor(l)
	c.Advance() // Identifier at 0
	plusIdx := c.Advance()
	if plusIdx != 2 {
		t.Fatalf("Advance() = %d, want 2 (comment at 1 skipped)", plusIdx)
	}
	c.PushBack(plusIdx)
	if c.PeekIndex() != plusIdx {
		t.Fatalf("PushBack did not restore position: PeekIndex() = %d, want %d", c.PeekIndex(), plusIdx)
	}
}

func TestCursorPushBackPanicsOnWrongTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("PushBack with a stale index did not panic")
		}
	}()
	l := newList(Identifier, Plus, Identifier, Eof)
	c := NewCursor(l)
	c.Advance()
	c.Advance()
	c.PushBack(0) // not the cursor's last-produced token
}

func TestCursorEat(t *testing.T) {
	l := newList(Plus, Identifier, Eof)
	c := NewCursor(l)
	if _, ok := c.Eat(Minus); ok {
		t.Fatal("Eat(Minus) succeeded against a Plus token")
	}
	idx, ok := c.Eat(Plus)
	if !ok || idx != 0 {
		t.Fatalf("Eat(Plus) = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestCursorAtEof(t *testing.T) {
	l := newList(Identifier, Eof)
	c := NewCursor(l)
	if c.AtEof() {
		t.Fatal("AtEof() true before reaching Eof")
	}
	c.Advance()
	if !c.AtEof() {
		t.Fatal("AtEof() false at Eof token")
	}
}

func TestListText(t *testing.T) {
	source := []byte("foo bar")
	l := &List{
		Kinds: []Kind{Identifier, Identifier, Eof},
		Locs: []ByteRange{
			{Start: 0, End: 3},
			{Start: 4, End: 7},
			{Start: 7, End: 7},
		},
	}
	if got := l.Text(source, 0); got != "foo" {
		t.Errorf("Text(0) = %q, want %q", got, "foo")
	}
	if got := l.Text(source, 1); got != "bar" {
		t.Errorf("Text(1) = %q, want %q", got, "bar")
	}
}
