// Package parser implements a recursive-descent, precedence-climbing parser
// for the Language. Parse is the sole entry point: it never fails outright
// for syntactic reasons, it only ever returns a Tree whose Errors list
// happens to be non-empty.
package parser

import (
	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/diag"
	"github.com/langcore/parse/lexer"
	"github.com/langcore/parse/token"
)

// DefaultMaxDepth is the default maximum expression nesting depth before the
// parser gives up on a subtree and reports ExpectedExpr, guarding against
// stack overflow on deeply nested or adversarial input. Only expression
// nesting is counted; nested blocks are not.
const DefaultMaxDepth = 500

// DefaultDiagnosticsLimit bounds how many diagnostics a single parse
// records. Once it is reached further diagnostics are dropped; parsing
// itself continues to the end of the source.
const DefaultDiagnosticsLimit = 500

// Option configures a Parser.
type Option func(*Parser)

// WithFilename records a display filename on the Parser. The parser itself
// never opens or reads files, and the filename is not copied onto
// diagnostics or the Tree; consumers pass a filename to
// diag.NewFormattedError themselves.
func WithFilename(filename string) Option {
	return func(p *Parser) { p.filename = filename }
}

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) { p.maxDepth = depth }
}

// WithDiagnosticsLimit overrides DefaultDiagnosticsLimit.
func WithDiagnosticsLimit(limit int) Option {
	return func(p *Parser) { p.diagLimit = limit }
}

// WithSessionID stamps every diagnostic this parse produces with id. A
// driver that fans out many parses across goroutines (one Parser per
// buffer) typically mints id from a UUID per job, so diagnostics that land
// in structured logs can be correlated back to the file/job that produced
// them. The parser never generates or validates id itself.
func WithSessionID(id string) Option {
	return func(p *Parser) { p.sessionID = id }
}

// Parser holds all state for one parse of one source buffer. A Parser is
// single-use: construct one with New (or call the package-level Parse
// helper) per buffer.
type Parser struct {
	source []byte
	tokens *token.List
	cur    *token.Cursor

	filename  string
	sessionID string
	maxDepth  int
	diagLimit int
	depth     int

	diags []diag.Diagnostic

	// containerStack tracks, per open container, the field/decl ordering
	// rule (spec.md §4.3): once a decl has followed a field in the
	// *current* container, the next field there records DeclBetweenFields
	// and mixingReported latches true so further mixing in the same
	// container is silent.
	containerStack []*containerFieldState
}

type containerFieldState struct {
	sawField       bool
	declAfterField bool
	mixingReported bool
}

// New constructs a Parser over source. Most callers should use the
// package-level Parse function instead.
func New(source []byte, opts ...Option) *Parser {
	p := &Parser{
		source:    source,
		tokens:    lexer.Scan(source),
		maxDepth:  DefaultMaxDepth,
		diagLimit: DefaultDiagnosticsLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cur = token.NewCursor(p.tokens)
	return p
}

// Parse tokenises source and parses it into a Tree. It is the package's
// primary entry point (spec.md §6 "parse(source) -> Tree").
func Parse(source []byte, opts ...Option) *ast.Tree {
	p := New(source, opts...)
	root := p.parseRoot()
	return &ast.Tree{
		Source: p.source,
		Tokens: p.tokens,
		Errors: p.diags,
		Root:   root,
	}
}

// --- low-level cursor helpers -------------------------------------------------

func (p *Parser) peek() token.Kind { return p.cur.Peek() }

func (p *Parser) peekIndex() token.Index { return p.cur.PeekIndex() }

func (p *Parser) advance() token.Index { return p.cur.Advance() }

func (p *Parser) pushBack(i token.Index) { p.cur.PushBack(i) }

// eat consumes and returns the current token if it matches kind.
func (p *Parser) eat(kind token.Kind) (token.Index, bool) {
	return p.cur.Eat(kind)
}

// expect consumes the current token if it matches kind; otherwise it
// records an ExpectedToken diagnostic against the current token and returns
// ast.InvalidIndex, false without consuming anything (spec.md §4.1).
func (p *Parser) expect(kind token.Kind) (token.Index, bool) {
	if i, ok := p.eat(kind); ok {
		return i, true
	}
	p.errorExpectedToken(kind)
	return ast.InvalidIndex, false
}

// identText resolves the source text of an identifier token, or "" when tok
// is ast.InvalidIndex — the placeholder a failed expect(token.Identifier)
// returns. Every *ast.Ident built from an expect result goes through this
// rather than p.tokens.Text directly, so a missing identifier produces an
// empty name instead of an out-of-range index panic.
func (p *Parser) identText(tok token.Index) string {
	if tok == ast.InvalidIndex {
		return ""
	}
	return p.tokens.Text(p.source, tok)
}

// --- diagnostics ---------------------------------------------------------

func (p *Parser) addDiag(d diag.Diagnostic) {
	if len(p.diags) >= p.diagLimit {
		return
	}
	d.SessionID = p.sessionID
	p.diags = append(p.diags, d)
}

func (p *Parser) errorAt(kind diag.Kind, tok token.Index) {
	p.addDiag(diag.Diagnostic{Kind: kind, Token: tok})
}

func (p *Parser) errorExpectedToken(expected token.Kind) {
	p.addDiag(diag.Diagnostic{
		Kind:     diag.ExpectedToken,
		Token:    p.peekIndex(),
		Expected: expected,
	})
}

func (p *Parser) errorHere(kind diag.Kind) {
	p.errorAt(kind, p.peekIndex())
}

// --- recursion guard -------------------------------------------------------

// enter increments the nesting depth and reports whether the caller should
// proceed. parseBoolOr, which every value expression passes through, calls
// enter at its start and calls p.exit via defer when it returns true; no
// other production calls it.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		return false
	}
	return true
}

func (p *Parser) exit() { p.depth-- }

// --- synchronisation routines (spec.md §4.2) --------------------------------

var containerMemberStarts = map[token.Kind]bool{
	token.KeywordTest:           true,
	token.KeywordComptime:       true,
	token.KeywordPub:            true,
	token.KeywordExport:         true,
	token.KeywordExtern:         true,
	token.KeywordInline:         true,
	token.KeywordNoinline:       true,
	token.KeywordUsingnamespace: true,
	token.KeywordThreadlocal:    true,
	token.KeywordConst:          true,
	token.KeywordVar:            true,
	token.KeywordFn:             true,
	token.Identifier:            true,
}

// findNextContainerMember scans forward from the cursor's current position,
// tracking bracket depth, and stops just before the next plausible
// container-member start, a stray separator, or Eof.
func (p *Parser) findNextContainerMember() {
	depth := 0
	for {
		switch p.peek() {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
			p.advance()
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
		case token.RParen, token.RBracket:
			if depth > 0 {
				depth--
			}
			p.advance()
		case token.Eof:
			return
		case token.Comma, token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
			p.advance()
		default:
			if depth == 0 && containerMemberStarts[p.peek()] {
				return
			}
			p.advance()
		}
	}
}

// findNextStmt tracks only brace depth, stopping at the next top-level `;`
// (consumed) or the matching `}` (not consumed).
func (p *Parser) findNextStmt() {
	depth := 0
	for {
		switch p.peek() {
		case token.LBrace:
			depth++
			p.advance()
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
			p.advance()
		case token.Eof:
			return
		default:
			p.advance()
		}
	}
}

// bad returns a placeholder node spanning the single token first, so
// callers can keep building sibling structure after a local parse failure.
// It consumes nothing; a caller that needs to step past first advances
// itself.
func (p *Parser) bad(first token.Index) *ast.Bad {
	return &ast.Bad{First: first, Last: first}
}
