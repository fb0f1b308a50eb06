package parser

import (
	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/diag"
	"github.com/langcore/parse/token"
)

// parseExpr parses a full expression, including a possible (non-chaining)
// trailing assignment operator — spec.md's AssignExpr is simply the lowest
// precedence level of this same climb (spec.md §4.6).
func (p *Parser) parseExpr() ast.Expr {
	lhs := p.parseTry()
	if isAssignOp(p.peek()) {
		op := p.advance()
		rhs := p.parseTry()
		return &ast.AssignStmt{Lhs: lhs, Op: op, Rhs: rhs, Semi: ast.InvalidIndex}
	}
	return lhs
}

// parseTry parses the top-level `try` precedence level (spec.md §4.6): zero
// or more leading `try` keywords, right-associative and repeatable, each
// wrapping the *entire* boolOr-and-above chain that follows it. This sits
// directly between assign and boolOr and is distinct from the deeper
// prefix-level `try` parsePrefix implements, which only wraps a single
// prefix operand (so `try a or b` parses as `try (a or b)`, not
// `(try a) or b`).
func (p *Parser) parseTry() ast.Expr {
	if p.peek() == token.KeywordTry {
		op := p.advance()
		child := p.parseTry()
		return &ast.PrefixOp{Op: op, Child: child}
	}
	return p.parseBoolOr()
}

// parseTypeExpr parses a type position expression. The Language does not
// distinguish type and value grammar (spec.md §4.6), so this simply enters
// the climb at the prefix-type level, skipping the value-only assign/try/
// boolOr/boolAnd/compare/bitwise/bitshift/addition/multiply levels that
// never appear in a type.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	return p.parsePrefixType()
}

func (p *Parser) parseBoolOr() ast.Expr {
	if !p.enter() {
		p.errorHere(diag.ExpectedExpr)
		return p.bad(p.peekIndex())
	}
	defer p.exit()
	lhs := p.parseBoolAnd()
	for p.peek() == token.KeywordOr {
		op := p.advance()
		rhs := p.parseBoolAnd()
		lhs = &ast.InfixOp{Lhs: lhs, Op: op, Rhs: rhs}
	}
	return lhs
}

func (p *Parser) parseBoolAnd() ast.Expr {
	lhs := p.parseCompare()
	for {
		if p.peek() == token.KeywordAnd {
			op := p.advance()
			rhs := p.parseCompare()
			lhs = &ast.InfixOp{Lhs: lhs, Op: op, Rhs: rhs}
			continue
		}
		if p.isInvalidAnd() {
			op := p.advance()
			p.advance() // consume the second '&' of the friendly `&&` pair
			p.errorAt(diag.InvalidAnd, op)
			rhs := p.parseCompare()
			lhs = &ast.InfixOp{Lhs: lhs, Op: op, Rhs: rhs}
			continue
		}
		return lhs
	}
}

// isInvalidAnd detects the friendly `&&` spelling of `and` (spec.md §4.6):
// two Ampersand tokens with no bytes between them. A spaced `& &` is two
// legitimate uses of the bitwise-and/address-of operator and must not
// trigger this.
func (p *Parser) isInvalidAnd() bool {
	if p.peek() != token.Ampersand {
		return false
	}
	first := p.peekIndex()
	save := first
	p.advance()
	isDouble := p.peek() == token.Ampersand && p.tokens.Loc(first).End == p.tokens.Loc(p.peekIndex()).Start
	p.pushBack(save)
	return isDouble
}

func (p *Parser) parseCompare() ast.Expr {
	lhs := p.parseBitwise()
	if isCompareOp(p.peek()) {
		op := p.advance()
		rhs := p.parseBitwise()
		return &ast.InfixOp{Lhs: lhs, Op: op, Rhs: rhs}
	}
	return lhs
}

func isCompareOp(k token.Kind) bool {
	switch k {
	case token.EqualEqual, token.BangEqual, token.AngleBracketLeft, token.AngleBracketRight,
		token.AngleBracketLeftEqual, token.AngleBracketRightEqual:
		return true
	}
	return false
}

func (p *Parser) parseBitwise() ast.Expr {
	lhs := p.parseBitshift()
	for {
		switch p.peek() {
		case token.Ampersand:
			if p.isInvalidAnd() {
				// the friendly `&&` spelling of `and` binds at boolAnd
				// precedence (spec.md §4.6), not here; leave it for the
				// caller up the chain to handle.
				return lhs
			}
			op := p.advance()
			rhs := p.parseBitshift()
			lhs = &ast.InfixOp{Lhs: lhs, Op: op, Rhs: rhs}
		case token.Caret, token.Pipe, token.KeywordOrelse:
			op := p.advance()
			rhs := p.parseBitshift()
			lhs = &ast.InfixOp{Lhs: lhs, Op: op, Rhs: rhs}
		case token.KeywordCatch:
			op := p.advance()
			payload := p.tryParsePayload()
			rhs := p.parseBitshift()
			lhs = &ast.Catch{Lhs: lhs, CatchTok: op, Payload: payloadIdent(payload), Rhs: rhs}
		default:
			return lhs
		}
	}
}

func payloadIdent(pl *ast.Payload) *ast.Ident {
	if pl == nil {
		return nil
	}
	return pl.Name
}

func (p *Parser) parseBitshift() ast.Expr {
	lhs := p.parseAddition()
	for p.peek() == token.AngleBracketAngleBracketLeft || p.peek() == token.AngleBracketAngleBracketRight {
		op := p.advance()
		rhs := p.parseAddition()
		lhs = &ast.InfixOp{Lhs: lhs, Op: op, Rhs: rhs}
	}
	return lhs
}

func (p *Parser) parseAddition() ast.Expr {
	lhs := p.parseMultiply()
	for {
		switch p.peek() {
		case token.Plus, token.Minus, token.PlusPlus, token.PlusPercent, token.MinusPercent:
			op := p.advance()
			rhs := p.parseMultiply()
			lhs = &ast.InfixOp{Lhs: lhs, Op: op, Rhs: rhs}
		default:
			return lhs
		}
	}
}

func (p *Parser) parseMultiply() ast.Expr {
	lhs := p.parsePrefix()
	for {
		switch p.peek() {
		case token.PipePipe, token.Asterisk, token.Slash, token.Percent,
			token.AsteriskAsterisk, token.AsteriskPercent:
			op := p.advance()
			rhs := p.parsePrefix()
			lhs = &ast.InfixOp{Lhs: lhs, Op: op, Rhs: rhs}
		default:
			return lhs
		}
	}
}

// parsePrefix parses the right-associative, repeatable prefix operators
// `! - ~ -% & try await` (spec.md §4.6). A `Type{...}` initializer after the
// operand is parsed here rather than in parseSuffixExpr, so a type position
// (parseTypeExpr, e.g. a function's return type) never takes the `{` that
// follows it.
func (p *Parser) parsePrefix() ast.Expr {
	switch p.peek() {
	case token.Bang, token.Minus, token.Tilde, token.MinusPercent, token.Ampersand:
		op := p.advance()
		child := p.parsePrefix()
		return &ast.PrefixOp{Op: op, Child: child}
	case token.KeywordTry:
		op := p.advance()
		child := p.parsePrefix()
		return &ast.PrefixOp{Op: op, Child: child}
	case token.KeywordAwait:
		op := p.advance()
		child := p.parsePrefix()
		return &ast.PrefixOp{Op: op, Child: child}
	}
	x := p.parsePrefixType()
	if p.peek() == token.LBrace {
		return p.parseInitializerTyped(x)
	}
	return x
}

// parsePrefixType parses the type-qualifier chain: `?`, `anyframe->`, and
// the pointer/array/slice constructors with their bracketed qualifier
// lists (spec.md §4.6 "Pointer/array type qualifier collection").
func (p *Parser) parsePrefixType() ast.Expr {
	switch p.peek() {
	case token.QuestionMark:
		tok := p.advance()
		child := p.parsePrefixType()
		return &ast.OptionalType{Question: tok, Child: child}
	case token.KeywordAnyframe:
		tok := p.advance()
		if p.peek() == token.MinusRAngle {
			arrow := p.advance()
			child := p.parsePrefixType()
			return &ast.AnyFrameType{Tok: tok, Arrow: arrow, ChildType: child}
		}
		return &ast.AnyFrameType{Tok: tok, Arrow: ast.InvalidIndex}
	case token.Asterisk:
		return p.parsePtrType(ast.PtrSizeOne)
	case token.AsteriskAsterisk:
		// `**T` is two nested one-pointers sharing a single token
		// (spec.md §4.6).
		star := p.advance()
		inner := p.parsePtrTypeQualifiersAndChild(ast.PtrSizeOne, star, ast.InvalidIndex)
		outer := &ast.PtrTypeOp{Star: star, Size: ast.PtrSizeOne, Lbracket: ast.InvalidIndex, Child: inner}
		return outer
	case token.LBracket:
		return p.parseBracketedTypePrefix()
	}
	return p.parseSuffixExpr()
}

func (p *Parser) parsePtrType(size ast.PtrSize) ast.Expr {
	star := p.advance()
	return p.parsePtrTypeQualifiersAndChild(size, star, ast.InvalidIndex)
}

// parsePtrTypeQualifiersAndChild collects the `align/const/volatile/
// allowzero` qualifier set that may follow a ptr-start or slice-start, in
// any order, before recursing into the child type.
func (p *Parser) parsePtrTypeQualifiersAndChild(size ast.PtrSize, star, lbracket token.Index) *ast.PtrTypeOp {
	op := &ast.PtrTypeOp{Star: star, Lbracket: lbracket, Size: size, AllowZero: ast.InvalidIndex, Const: ast.InvalidIndex, Volatile: ast.InvalidIndex}
	seenAlign, seenConst, seenVolatile, seenAllowZero := false, false, false, false
	for {
		switch p.peek() {
		case token.KeywordAlign:
			p.advance()
			p.expect(token.LParen)
			op.AlignExpr = p.parseExpr()
			p.expect(token.RParen)
			if seenAlign {
				p.errorAt(diag.ExtraAlignQualifier, op.Star)
			}
			seenAlign = true
		case token.KeywordConst:
			tok := p.advance()
			if seenConst {
				p.errorAt(diag.ExtraConstQualifier, tok)
			}
			op.Const = tok
			seenConst = true
		case token.KeywordVolatile:
			tok := p.advance()
			if seenVolatile {
				p.errorAt(diag.ExtraVolatileQualifier, tok)
			}
			op.Volatile = tok
			seenVolatile = true
		case token.KeywordAllowzero:
			tok := p.advance()
			if seenAllowZero {
				p.errorAt(diag.ExtraAllowZeroQualifier, tok)
			}
			op.AllowZero = tok
			seenAllowZero = true
		default:
			op.Child = p.parsePrefixType()
			return op
		}
	}
}

// parseBracketedTypePrefix disambiguates the `[` family of type
// constructors: `[]T` (slice), `[*]T`/`[*c]T` (many/c pointer), and
// `[N]T`/`[N:s]T` (array), each with an optional sentinel.
func (p *Parser) parseBracketedTypePrefix() ast.Expr {
	lbracket := p.advance()
	switch p.peek() {
	case token.RBracket:
		p.advance()
		return p.parsePtrTypeQualifiersAndChild(ast.PtrSizeSlice, ast.InvalidIndex, lbracket)
	case token.Asterisk:
		p.advance()
		size := ast.PtrSizeMany
		if p.peek() == token.Identifier && p.tokens.Text(p.source, p.peekIndex()) == "c" {
			p.advance()
			size = ast.PtrSizeC
		}
		var sentinel ast.Expr
		if p.peek() == token.Colon {
			p.advance()
			sentinel = p.parseExpr()
		}
		p.expect(token.RBracket)
		op := p.parsePtrTypeQualifiersAndChild(size, ast.InvalidIndex, lbracket)
		op.Sentinel = sentinel
		return op
	default:
		length := p.parseExpr()
		var sentinel ast.Expr
		if p.peek() == token.Colon {
			p.advance()
			sentinel = p.parseExpr()
		}
		p.expect(token.RBracket)
		child := p.parsePrefixType()
		return &ast.PtrTypeOp{Lbracket: lbracket, Star: ast.InvalidIndex, Size: ast.PtrSizeArray, ArrayLen: length, Sentinel: sentinel, AllowZero: ast.InvalidIndex, Const: ast.InvalidIndex, Volatile: ast.InvalidIndex, Child: child}
	}
}

// parseSuffixExpr parses a primary expression followed by zero or more
// suffix operators: `[index]`, `[a..b]`, `.field`, `.*`, `.?`, `(args)`
// (spec.md §4.6, left-associative, highest precedence).
func (p *Parser) parseSuffixExpr() ast.Expr {
	x := p.parsePrimary()
	for {
		switch p.peek() {
		case token.Dot:
			dot := p.advance()
			switch p.peek() {
			case token.Asterisk:
				star := p.advance()
				x = &ast.Deref{Lhs: x, Dot: dot, Star: star}
			case token.QuestionMark:
				q := p.advance()
				x = &ast.UnwrapOptional{Lhs: x, Dot: dot, Question: q}
			default:
				nameTok, _ := p.expect(token.Identifier)
				x = &ast.FieldAccess{Lhs: x, Dot: dot, Name: &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}}
			}
		case token.LBracket:
			x = p.parseIndexOrSlice(x)
		case token.LParen:
			x = p.parseCallArgs(x, ast.InvalidIndex)
		default:
			return x
		}
	}
}

func (p *Parser) parseIndexOrSlice(lhs ast.Expr) ast.Expr {
	lbracket := p.advance()
	start := p.parseExpr()
	if p.peek() == token.DotDot {
		dotdot := p.advance()
		var end ast.Expr
		if p.peek() != token.RBracket && p.peek() != token.Colon {
			end = p.parseExpr()
		}
		var sentinel ast.Expr
		if p.peek() == token.Colon {
			p.advance()
			sentinel = p.parseExpr()
		}
		rbracket, _ := p.expect(token.RBracket)
		return &ast.Slice{Lhs: lhs, Lbracket: lbracket, Start: start, DotDot: dotdot, End: end, Sentinel: sentinel, Rbracket: rbracket}
	}
	rbracket, _ := p.expect(token.RBracket)
	return &ast.Index{Lhs: lhs, Lbracket: lbracket, IndexExpr: start, Rbracket: rbracket}
}

func (p *Parser) parseCallArgs(callee ast.Expr, asyncTok token.Index) ast.Expr {
	lparen := p.advance()
	var args []ast.Expr
	for p.peek() != token.RParen && p.peek() != token.Eof {
		args = append(args, p.parseExpr())
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	rparen, _ := p.expect(token.RParen)
	return &ast.Call{Callee: callee, Async: asyncTok, Lparen: lparen, Args: args, Rparen: rparen}
}

// parsePrimary parses the leaves of the expression grammar: literals,
// identifiers, builtin calls, grouped expressions, blocks, container
// literals, control-flow expressions used as values, `error.X`, `.Enum`,
// `.{...}`, and `asm` (spec.md §4.6 "primary").
func (p *Parser) parsePrimary() ast.Expr {
	switch p.peek() {
	case token.IntegerLiteral:
		return &ast.IntegerLiteral{Tok: p.advance()}
	case token.FloatLiteral:
		return &ast.FloatLiteral{Tok: p.advance()}
	case token.CharLiteral:
		return &ast.CharLiteral{Tok: p.advance()}
	case token.StringLiteral:
		return &ast.StringLiteral{Tok: p.advance()}
	case token.MultilineStringLiteralLine:
		return p.parseMultilineString()
	case token.KeywordTrue:
		return &ast.BoolLiteral{Tok: p.advance(), Value: true}
	case token.KeywordFalse:
		return &ast.BoolLiteral{Tok: p.advance(), Value: false}
	case token.KeywordNull:
		return &ast.NullLiteral{Tok: p.advance()}
	case token.KeywordUndefined:
		return &ast.UndefinedLiteral{Tok: p.advance()}
	case token.KeywordUnreachable:
		return &ast.UnreachableLiteral{Tok: p.advance()}
	case token.KeywordVar:
		return &ast.VarType{Tok: p.advance()}

	case token.Identifier:
		tok := p.advance()
		return &ast.Ident{Tok: tok, Name: p.tokens.Text(p.source, tok)}

	case token.KeywordError:
		errTok := p.peekIndex()
		save := errTok
		p.advance()
		if p.peek() == token.LBrace {
			p.pushBack(save)
			return p.parseErrorSetDecl()
		}
		dot, ok := p.expect(token.Dot)
		if !ok {
			return p.bad(save)
		}
		nameTok, _ := p.expect(token.Identifier)
		_ = dot
		return &ast.FieldAccess{
			Lhs:  &ast.Ident{Tok: save, Name: "error"},
			Dot:  dot,
			Name: &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)},
		}

	case token.Dot:
		return p.parseDotLed()

	case token.LParen:
		lparen := p.advance()
		inner := p.parseExpr()
		rparen, _ := p.expect(token.RParen)
		return &ast.GroupedExpression{Lparen: lparen, Inner: inner, Rparen: rparen}

	case token.At:
		return p.parseBuiltinCall()

	case token.LBrace:
		return p.parseBlock()

	case token.KeywordIf:
		return p.parseIf()
	case token.KeywordSwitch:
		return p.parseSwitch()
	case token.KeywordWhile:
		return p.parseWhile(nil)
	case token.KeywordFor:
		return p.parseFor(nil)
	case token.KeywordComptime:
		tok := p.advance()
		return &ast.Comptime{Tok: tok, Expr: p.parseExpr()}
	case token.KeywordNosuspend:
		tok := p.advance()
		return &ast.Nosuspend{Tok: tok, Expr: p.parseExpr()}
	case token.KeywordSuspend:
		tok := p.advance()
		return &ast.Suspend{Tok: tok}
	case token.KeywordResume:
		tok := p.advance()
		return &ast.PrefixOp{Op: tok, Child: p.parsePrefix()}

	case token.KeywordBreak, token.KeywordContinue, token.KeywordReturn:
		return p.parseControlFlowExpr()

	case token.KeywordAsync:
		return p.parseAsyncExpr()

	case token.KeywordFn:
		return p.parseFnLiteral()

	case token.KeywordPacked, token.KeywordExtern:
		layout := p.advance()
		return p.parseContainerDecl(layout)
	case token.KeywordStruct, token.KeywordEnum, token.KeywordUnion, token.KeywordOpaque:
		return p.parseContainerDecl(ast.InvalidIndex)

	case token.KeywordAsm:
		return p.parseAsm()
	}

	p.errorHere(diag.ExpectedExpr)
	return p.bad(p.advance())
}

func (p *Parser) parseDotLed() ast.Expr {
	dot := p.advance()
	switch p.peek() {
	case token.LBrace:
		return p.parseInitializerDot(dot)
	case token.Identifier:
		tok := p.advance()
		return &ast.EnumLiteral{Dot: dot, Name: &ast.Ident{Tok: tok, Name: p.tokens.Text(p.source, tok)}}
	}
	p.errorAt(diag.ExpectedIdentifier, p.peekIndex())
	return p.bad(dot)
}

func (p *Parser) parseControlFlowExpr() *ast.ControlFlowExpression {
	tok := p.advance()
	x := &ast.ControlFlowExpression{Tok: tok, Colon: ast.InvalidIndex}
	switch p.tokens.Kind(tok) {
	case token.KeywordBreak:
		x.Kind = ast.ControlFlowBreak
	case token.KeywordContinue:
		x.Kind = ast.ControlFlowContinue
	case token.KeywordReturn:
		x.Kind = ast.ControlFlowReturn
	}
	if x.Kind != ast.ControlFlowReturn && p.peek() == token.Colon {
		x.Colon = p.advance()
		nameTok, _ := p.expect(token.Identifier)
		x.Label = &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}
	}
	switch p.peek() {
	case token.Semicolon, token.RBrace, token.Comma, token.RParen, token.Eof, token.KeywordElse:
		// no value
	default:
		x.Value = p.parseExpr()
	}
	return x
}

// parseAsyncExpr implements the async/fn lookahead hack: `async fn` is a
// function prototype, not a call, so `async` is pushed back onto the cursor
// (the `fn` was only peeked) and the prototype is parsed from there
// (spec.md §4.6 "Async call hack").
func (p *Parser) parseAsyncExpr() ast.Expr {
	asyncTok := p.advance()
	if p.peek() == token.KeywordFn {
		p.pushBack(asyncTok)
		return p.parseFnLiteral()
	}
	callee := p.parsePrefix()
	if call, ok := callee.(*ast.Call); ok && call.Async == ast.InvalidIndex {
		// the suffix loop has already parsed the `(args)`; mark that call
		call.Async = asyncTok
		return call
	}
	if p.peek() != token.LParen {
		p.errorHere(diag.ExpectedParamList)
		return callee
	}
	return p.parseCallArgs(callee, asyncTok)
}

func (p *Parser) parseFnLiteral() ast.Expr {
	proto := p.parseFnProto(ast.InvalidIndex, ast.InvalidIndex)
	if p.peek() != token.LBrace {
		return proto
	}
	body := p.parseBlock()
	return &ast.FnLiteral{Proto: proto, Body: body}
}

func (p *Parser) parseBuiltinCall() ast.Expr {
	at := p.advance()
	nameTok, _ := p.expect(token.Identifier)
	name := &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}
	lparen, _ := p.expect(token.LParen)
	var args []ast.Expr
	for p.peek() != token.RParen && p.peek() != token.Eof {
		args = append(args, p.parseExpr())
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	rparen, _ := p.expect(token.RParen)
	return &ast.BuiltinCall{At: at, Name: name, Lparen: lparen, Args: args, Rparen: rparen}
}

// parseMultilineString harvests a run of MultilineStringLiteralLine tokens,
// allowing interleaved LineComment tokens which the cursor itself does not
// skip across a pushed-back boundary but which advance() always steps past
// (spec.md §4.10 and §9's noted non-obvious interleaving rule).
func (p *Parser) parseMultilineString() ast.Expr {
	x := &ast.MultilineStringLiteral{}
	x.Lines = append(x.Lines, p.advance())
	for p.peek() == token.MultilineStringLiteralLine {
		x.Lines = append(x.Lines, p.advance())
	}
	return x
}
