// Package lexer scans a UTF-8 source buffer into the token.List the parser
// consumes. It never reports diagnostics: unrecognised byte sequences are
// emitted as Invalid tokens and left for the parser to complain about,
// keeping the tokeniser a single unconditional pass (spec.md §2 step 1).
package lexer

import (
	"github.com/langcore/parse/token"
)

// Scan tokenises source and returns the resulting token.List. The final
// entry is always an Eof token (spec.md invariant 4).
func Scan(source []byte) *token.List {
	l := &lexer{src: source}
	l.run()
	return &token.List{Kinds: l.kinds, Locs: l.locs}
}

type lexer struct {
	src   []byte
	pos   int
	kinds []token.Kind
	locs  []token.ByteRange
}

func (l *lexer) run() {
	for {
		l.skipInlineWhitespace()
		start := l.pos
		if l.pos >= len(l.src) {
			l.emit(token.Eof, start, l.pos)
			return
		}
		c := l.src[l.pos]
		switch {
		case c == '\n', c == '\r', c == ' ', c == '\t':
			l.pos++
		case c == '/':
			l.scanSlash(start)
		case c == '\\':
			l.scanMultilineStringLine(start)
		case isIdentStart(c):
			l.scanIdentifier(start)
		case c >= '0' && c <= '9':
			l.scanNumber(start)
		case c == '\'':
			l.scanCharLiteral(start)
		case c == '"':
			l.scanStringLiteral(start)
		default:
			l.scanOperator(start)
		}
	}
}

func (l *lexer) emit(kind token.Kind, start, end int) {
	l.kinds = append(l.kinds, kind)
	l.locs = append(l.locs, token.ByteRange{Start: uint32(start), End: uint32(end)})
}

// skipInlineWhitespace consumes spaces, tabs, and newlines that are not
// otherwise part of a token. Unlike most languages this does not consume
// comment text — comments are tokens of their own.
func (l *lexer) skipInlineWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (l *lexer) scanIdentifier(start int) {
	l.pos++
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}
	name := string(l.src[start:l.pos])
	l.emit(token.LookupIdentifier(name), start, l.pos)
}

// scanSlash distinguishes `/`, `/=`, and the three comment forms: `//`
// (LineComment), `///` (DocComment, unless followed by a fourth `/` which
// demotes it back to a plain LineComment per convention), and `//!`
// (ContainerDocComment).
func (l *lexer) scanSlash(start int) {
	l.pos++
	if l.pos >= len(l.src) || l.src[l.pos] != '/' {
		if l.pos < len(l.src) && l.src[l.pos] == '=' {
			l.pos++
			l.emit(token.SlashEqual, start, l.pos)
			return
		}
		l.emit(token.Slash, start, l.pos)
		return
	}
	l.pos++ // second '/'
	kind := token.LineComment
	switch {
	case l.pos < len(l.src) && l.src[l.pos] == '!':
		kind = token.ContainerDocComment
		l.pos++
	case l.pos < len(l.src) && l.src[l.pos] == '/':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '/' {
			kind = token.LineComment // `////` and beyond: plain comment
		} else {
			kind = token.DocComment
			l.pos++
		}
	}
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
	l.emit(kind, start, l.pos)
}

// scanMultilineStringLine scans one `\\...` line, up to but not including
// the terminating newline (spec.md §4.10).
func (l *lexer) scanMultilineStringLine(start int) {
	l.pos++
	if l.pos >= len(l.src) || l.src[l.pos] != '\\' {
		l.emit(token.Invalid, start, l.pos)
		return
	}
	l.pos++
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
	l.emit(token.MultilineStringLiteralLine, start, l.pos)
}

func (l *lexer) scanNumber(start int) {
	l.pos++
	isFloat := false
	if l.pos < len(l.src)-1 && l.src[start] == '0' && (l.src[l.pos] == 'x' || l.src[l.pos] == 'o' || l.src[l.pos] == 'b') {
		l.pos++
		for l.pos < len(l.src) && (isHexDigit(l.src[l.pos]) || l.src[l.pos] == '_' || l.src[l.pos] == '.') {
			if l.src[l.pos] == '.' {
				isFloat = true
			}
			l.pos++
		}
	} else {
		for l.pos < len(l.src) && (l.src[l.pos] >= '0' && l.src[l.pos] <= '9' || l.src[l.pos] == '_') {
			l.pos++
		}
		if l.pos < len(l.src) && l.src[l.pos] == '.' && l.pos+1 < len(l.src) && l.src[l.pos+1] != '.' {
			isFloat = true
			l.pos++
			for l.pos < len(l.src) && (l.src[l.pos] >= '0' && l.src[l.pos] <= '9' || l.src[l.pos] == '_') {
				l.pos++
			}
		}
		if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
			isFloat = true
			l.pos++
			if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
				l.pos++
			}
			for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
				l.pos++
			}
		}
	}
	if isFloat {
		l.emit(token.FloatLiteral, start, l.pos)
	} else {
		l.emit(token.IntegerLiteral, start, l.pos)
	}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (l *lexer) scanCharLiteral(start int) {
	l.pos++
	for l.pos < len(l.src) && l.src[l.pos] != '\'' {
		if l.src[l.pos] == '\\' && l.pos+1 < len(l.src) {
			l.pos++
		}
		if l.src[l.pos] == '\n' {
			l.emit(token.Invalid, start, l.pos)
			return
		}
		l.pos++
	}
	if l.pos < len(l.src) {
		l.pos++ // closing quote
	}
	l.emit(token.CharLiteral, start, l.pos)
}

func (l *lexer) scanStringLiteral(start int) {
	l.pos++
	for l.pos < len(l.src) && l.src[l.pos] != '"' {
		if l.src[l.pos] == '\\' && l.pos+1 < len(l.src) {
			l.pos++
		}
		if l.src[l.pos] == '\n' {
			l.emit(token.Invalid, start, l.pos)
			return
		}
		l.pos++
	}
	if l.pos < len(l.src) {
		l.pos++ // closing quote
	}
	l.emit(token.StringLiteral, start, l.pos)
}

// scanOperator scans the longest punctuation/operator token starting at
// start, using a fixed longest-match-first table.
func (l *lexer) scanOperator(start int) {
	rest := l.src[start:]
	for _, cand := range operatorTable {
		if len(rest) >= len(cand.text) && string(rest[:len(cand.text)]) == cand.text {
			l.pos = start + len(cand.text)
			l.emit(cand.kind, start, l.pos)
			return
		}
	}
	l.pos = start + 1
	l.emit(token.Invalid, start, l.pos)
}

type operatorEntry struct {
	text string
	kind token.Kind
}

// operatorTable is ordered longest-first so scanOperator's first match is
// always the maximal munch.
var operatorTable = []operatorEntry{
	{"@", token.At},
	{"...", token.DotDotDot},
	{"<<|=", token.AngleBracketAngleBracketLeftPipeEqual},
	{"<<=", token.AngleBracketAngleBracketLeftEqual},
	{">>=", token.AngleBracketAngleBracketRightEqual},
	{"<<|", token.AngleBracketAngleBracketLeftPipe},
	{"*%=", token.AsteriskPercentEqual},
	{"*|=", token.AsteriskPipeEqual},
	{"-%=", token.MinusPercentEqual},
	{"+%=", token.PlusPercentEqual},
	{"**", token.AsteriskAsterisk},
	{"*=", token.AsteriskEqual},
	{"*%", token.AsteriskPercent},
	{"*|", token.AsteriskPipe},
	{"<<", token.AngleBracketAngleBracketLeft},
	{">>", token.AngleBracketAngleBracketRight},
	{"<=", token.AngleBracketLeftEqual},
	{">=", token.AngleBracketRightEqual},
	{"==", token.EqualEqual},
	{"=>", token.EqualAngleBracketRight},
	{"!=", token.BangEqual},
	{"&=", token.AmpersandEqual},
	{"^=", token.CaretEqual},
	{"..", token.DotDot},
	{".*", token.DotAsterisk},
	{".?", token.DotQuestionMark},
	{"-=", token.MinusEqual},
	{"-%", token.MinusPercent},
	{"->", token.MinusRAngle},
	{"%=", token.PercentEqual},
	{"|=", token.PipeEqual},
	{"||", token.PipePipe},
	{"+=", token.PlusEqual},
	{"+%", token.PlusPercent},
	{"++", token.PlusPlus},
	{"/=", token.SlashEqual},
	{"&", token.Ampersand},
	{"*", token.Asterisk},
	{"!", token.Bang},
	{"^", token.Caret},
	{":", token.Colon},
	{",", token.Comma},
	{".", token.Dot},
	{"=", token.Equal},
	{"<", token.AngleBracketLeft},
	{">", token.AngleBracketRight},
	{"{", token.LBrace},
	{"[", token.LBracket},
	{"(", token.LParen},
	{"-", token.Minus},
	{"%", token.Percent},
	{"|", token.Pipe},
	{"+", token.Plus},
	{"?", token.QuestionMark},
	{"}", token.RBrace},
	{"]", token.RBracket},
	{")", token.RParen},
	{";", token.Semicolon},
	{"/", token.Slash},
	{"~", token.Tilde},
}
