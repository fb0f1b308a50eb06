package token

// Index refers to a token by position in a List's parallel arrays. Tokens
// are never copied; every reference into the token stream is by Index.
type Index uint32

// ByteRange is a half-open byte range [Start, End) into the source buffer.
type ByteRange struct {
	Start uint32
	End   uint32
}

// List holds the two parallel arrays produced by a single tokenizer pass:
// Kinds[i] and Locs[i] describe the same token at index i. The Eof token is
// always the final entry.
type List struct {
	Kinds []Kind
	Locs  []ByteRange
}

// Len returns the number of tokens, including the terminating Eof.
func (l *List) Len() int { return len(l.Kinds) }

// Kind returns the kind of the token at i.
func (l *List) Kind(i Index) Kind { return l.Kinds[i] }

// Loc returns the byte range of the token at i.
func (l *List) Loc(i Index) ByteRange { return l.Locs[i] }

// Text returns the literal source text of the token at i.
func (l *List) Text(source []byte, i Index) string {
	r := l.Locs[i]
	return string(source[r.Start:r.End])
}

// Cursor walks a List left to right. It is the only way grammar productions
// observe the token stream: advance and push_back transparently skip line
// comments so that productions never see trivia, while doc comments remain
// visible for explicit consumption by declaration parsing.
type Cursor struct {
	tokens *List
	pos    Index
}

// NewCursor returns a Cursor positioned at the first non-comment token of
// tokens.
func NewCursor(tokens *List) *Cursor {
	c := &Cursor{tokens: tokens, pos: 0}
	for int(c.pos) < tokens.Len() && tokens.Kind(c.pos) == LineComment {
		c.pos++
	}
	return c
}

// Pos returns the index of the token the cursor would return from Peek.
func (c *Cursor) Pos() Index { return c.pos }

// Peek returns the kind of the current token without consuming it.
func (c *Cursor) Peek() Kind { return c.tokens.Kind(c.pos) }

// PeekIndex returns the index of the current token without consuming it.
func (c *Cursor) PeekIndex() Index { return c.pos }

// Advance returns the index of the current token and moves the cursor to
// the next non-trivia token. If the cursor sits on a line comment it walks
// forward until it reaches a non-comment token before producing a result,
// per the discipline in spec.md §4.1.
func (c *Cursor) Advance() Index {
	for c.tokens.Kind(c.pos) == LineComment {
		c.pos++
	}
	result := c.pos
	if c.tokens.Kind(c.pos) != Eof {
		c.pos++
	}
	for c.tokens.Kind(c.pos) == LineComment {
		c.pos++
	}
	return result
}

// PushBack restores the cursor to index, walking backward over any line
// comments that separate index from the cursor's current position. It
// asserts that doing so lands exactly on index, catching misuse of
// push-back against a token that was not the one most recently produced by
// Advance.
func (c *Cursor) PushBack(index Index) {
	pos := index + 1
	for pos < Index(c.tokens.Len()) && c.tokens.Kind(pos) == LineComment {
		pos++
	}
	if pos != c.pos {
		panic("token: PushBack target is not the cursor's last-produced token")
	}
	c.pos = index
}

// Eat consumes and returns the current token's index if it has the given
// kind, otherwise it leaves the cursor unchanged and returns false.
func (c *Cursor) Eat(kind Kind) (Index, bool) {
	if c.Peek() != kind {
		return 0, false
	}
	return c.Advance(), true
}

// AtEof reports whether the cursor has reached the Eof sentinel.
func (c *Cursor) AtEof() bool { return c.Peek() == Eof }
