package parser

import (
	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/diag"
	"github.com/langcore/parse/token"
)

// parseBlock parses `[label:] { stmt* }`.
func (p *Parser) parseBlock() *ast.Block {
	b := &ast.Block{}
	if p.peek() == token.Identifier {
		save := p.peekIndex()
		tok := p.advance()
		if p.peek() == token.Colon {
			b.Label = &ast.Ident{Tok: tok, Name: p.tokens.Text(p.source, tok)}
			b.Colon = p.advance()
		} else {
			p.pushBack(save)
		}
	}
	b.Lbrace, _ = p.expect(token.LBrace)
	for p.peek() != token.RBrace && p.peek() != token.Eof {
		stmt := p.parseStatement()
		if stmt == nil {
			p.errorHere(diag.ExpectedBlockOrExpression)
			p.findNextStmt()
			continue
		}
		b.Stmts = append(b.Stmts, stmt)
	}
	b.Rbrace, _ = p.expect(token.RBrace)
	return b
}

// parseBlockExprStatement parses either a Block or an AssignExpr, the
// shared shape used as the body of if/while/for/defer and after comptime/
// nosuspend at statement level (spec.md §4.5). It consumes no trailing `;`;
// callers that need one take it themselves (see maybeTerminate).
func (p *Parser) parseBlockExprStatement() ast.Expr {
	if p.peek() == token.LBrace || (p.peek() == token.Identifier && p.isLabelStart()) {
		return p.parseBlock()
	}
	return p.parseExpr()
}

// isLabelStart reports whether the cursor sits on `identifier :` that is
// not part of an expression (a block/loop label).
func (p *Parser) isLabelStart() bool {
	save := p.peekIndex()
	tok := p.advance()
	isLabel := p.peek() == token.Colon
	p.pushBack(tok)
	_ = save
	return isLabel
}

// parseStatement parses one statement inside a Block (spec.md §4.5).
func (p *Parser) parseStatement() ast.Stmt {
	switch p.peek() {
	case token.KeywordComptime:
		save := p.peekIndex()
		tok := p.advance()
		if p.peek() == token.KeywordConst || p.peek() == token.KeywordVar {
			v := p.parseVarDecl()
			return &ast.Comptime{Tok: tok, Expr: v.Value}
		}
		p.pushBack(save)
		tok = p.advance()
		body := p.parseBlockExprStatement()
		semi := p.maybeTerminate(body)
		return p.wrapExprStmt(&ast.Comptime{Tok: tok, Expr: body}, semi)

	case token.KeywordNosuspend:
		tok := p.advance()
		body := p.parseBlockExprStatement()
		semi := p.maybeTerminate(body)
		return p.wrapExprStmt(&ast.Nosuspend{Tok: tok, Expr: body}, semi)

	case token.KeywordSuspend:
		tok := p.advance()
		if _, ok := p.eat(token.Semicolon); ok {
			return &ast.Suspend{Tok: tok}
		}
		body := p.parseBlockExprStatement()
		semi := p.maybeTerminate(body)
		return p.wrapExprStmt(&ast.Suspend{Tok: tok, Body: body}, semi)

	case token.KeywordDefer, token.KeywordErrdefer:
		return p.parseDefer()

	case token.KeywordIf:
		return p.parseIf()

	case token.KeywordSwitch:
		sw := p.parseSwitch()
		return sw

	case token.KeywordWhile:
		return p.parseWhile(nil)

	case token.KeywordFor:
		return p.parseFor(nil)

	case token.KeywordConst, token.KeywordVar:
		return p.parseVarDecl()

	case token.LBrace:
		return p.parseBlock()

	case token.Identifier:
		if p.isLabelStart() {
			return p.parseLabeledStatement()
		}
	}

	return p.parseAssignOrExprStatement()
}

// parseLabeledStatement parses `label: (Block | while | for)`.
func (p *Parser) parseLabeledStatement() ast.Stmt {
	tok := p.advance()
	label := &ast.Ident{Tok: tok, Name: p.tokens.Text(p.source, tok)}
	colon := p.advance()
	switch p.peek() {
	case token.LBrace:
		b := p.parseBlock()
		b.Label = label
		b.Colon = colon
		return b
	case token.KeywordWhile:
		return p.parseWhile(label)
	case token.KeywordFor:
		return p.parseFor(label)
	case token.KeywordInline:
		inlineTok := p.advance()
		switch p.peek() {
		case token.KeywordWhile:
			w := p.parseWhile(label)
			w.Inline = inlineTok
			return w
		case token.KeywordFor:
			f := p.parseFor(label)
			f.Inline = inlineTok
			return f
		}
	}
	p.errorAt(diag.ExpectedLabelable, p.peekIndex())
	return p.bad(tok)
}

func (p *Parser) parseDefer() *ast.Defer {
	tok := p.advance()
	isError := p.tokens.Kind(tok) == token.KeywordErrdefer
	d := &ast.Defer{Tok: tok, IsError: isError}
	if isError && p.peek() == token.Pipe {
		p.advance()
		nameTok, _ := p.expect(token.Identifier)
		d.Payload = &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}
		p.expect(token.Pipe)
	}
	d.Expr = p.parseBlockExprStatement()
	if _, isBlock := d.Expr.(*ast.Block); !isBlock {
		d.Semi, _ = p.expect(token.Semicolon)
	}
	return d
}

// maybeTerminate consumes the `;` that follows an AssignExpr-form body, or
// returns ast.InvalidIndex if body was itself a Block (no terminator
// needed) — spec.md §4.5.
func (p *Parser) maybeTerminate(body ast.Expr) token.Index {
	if _, isBlock := body.(*ast.Block); isBlock {
		return ast.InvalidIndex
	}
	if p.peek() == token.KeywordElse {
		return ast.InvalidIndex
	}
	i, ok := p.expect(token.Semicolon)
	if !ok {
		p.errorHere(diag.ExpectedSemiOrElse)
	}
	return i
}

// wrapExprStmt adapts an expression-producing wrapper (Comptime/Nosuspend/
// Suspend) used at statement position into an ExprStmt carrying the
// terminator token, unless the wrapper is already block-shaped.
func (p *Parser) wrapExprStmt(e ast.Expr, semi token.Index) ast.Stmt {
	if s, ok := e.(ast.Stmt); ok && semi == ast.InvalidIndex {
		return s
	}
	return &ast.ExprStmt{X: e, Semi: semi}
}

// parseIf parses `if (cond) [|payload|] body [else [|payload|] elseBody]`,
// used both as a statement and (via parseExpr's primary dispatch) as an
// expression.
func (p *Parser) parseIf() *ast.If {
	x := &ast.If{ElseTok: ast.InvalidIndex}
	x.IfTok = p.advance()
	x.Lparen, _ = p.expect(token.LParen)
	x.Cond = p.parseExpr()
	x.Rparen, _ = p.expect(token.RParen)
	x.Payload = p.tryParsePayload()
	x.Body = p.parseBlockExprStatement()
	if p.peek() == token.KeywordElse {
		x.ElseTok = p.advance()
		x.ElsePayload = p.tryParsePayload()
		x.ElseBody = p.parseBlockExprStatement()
	} else {
		p.maybeTerminate(x.Body)
	}
	return x
}

// tryParsePayload parses an optional `|[*]name|` capture.
func (p *Parser) tryParsePayload() *ast.Payload {
	if p.peek() != token.Pipe {
		return nil
	}
	pl := &ast.Payload{Star: ast.InvalidIndex}
	pl.Pipe1 = p.advance()
	if p.peek() == token.Asterisk {
		pl.Star = p.advance()
	}
	nameTok, _ := p.expect(token.Identifier)
	pl.Name = &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}
	pl.Pipe2, _ = p.expect(token.Pipe)
	return pl
}

func (p *Parser) tryParsePointerIndexPayload() *ast.PointerIndexPayload {
	if p.peek() != token.Pipe {
		return nil
	}
	pl := &ast.PointerIndexPayload{Star: ast.InvalidIndex, Comma: ast.InvalidIndex}
	pl.Pipe1 = p.advance()
	if p.peek() == token.Asterisk {
		pl.Star = p.advance()
	}
	nameTok, _ := p.expect(token.Identifier)
	pl.Value = &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}
	if p.peek() == token.Comma {
		pl.Comma = p.advance()
		idxTok, _ := p.expect(token.Identifier)
		pl.Index = &ast.Ident{Tok: idxTok, Name: p.identText(idxTok)}
	}
	pl.Pipe2, _ = p.expect(token.Pipe)
	return pl
}

func (p *Parser) parseWhile(label *ast.Ident) *ast.While {
	x := &ast.While{Label: label, Inline: ast.InvalidIndex, ContColon: ast.InvalidIndex, ElseTok: ast.InvalidIndex}
	x.WhileTok = p.advance()
	x.Lparen, _ = p.expect(token.LParen)
	x.Cond = p.parseExpr()
	x.Rparen, _ = p.expect(token.RParen)
	x.Payload = p.tryParsePayload()
	if p.peek() == token.Colon {
		x.ContColon = p.advance()
		p.expect(token.LParen)
		x.Cont = p.parseExpr()
		p.expect(token.RParen)
	}
	x.Body = p.parseBlockExprStatement()
	if p.peek() == token.KeywordElse {
		x.ElseTok = p.advance()
		x.ElsePayload = p.tryParsePayload()
		x.ElseBody = p.parseBlockExprStatement()
	} else {
		p.maybeTerminate(x.Body)
	}
	return x
}

func (p *Parser) parseFor(label *ast.Ident) *ast.For {
	x := &ast.For{Label: label, Inline: ast.InvalidIndex, ElseTok: ast.InvalidIndex}
	x.ForTok = p.advance()
	x.Lparen, _ = p.expect(token.LParen)
	for p.peek() != token.RParen && p.peek() != token.Eof {
		x.Args = append(x.Args, p.parseExpr())
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	x.Rparen, _ = p.expect(token.RParen)
	x.Payload = p.tryParsePointerIndexPayload()
	x.Body = p.parseBlockExprStatement()
	if p.peek() == token.KeywordElse {
		x.ElseTok = p.advance()
		x.ElseBody = p.parseBlockExprStatement()
	} else {
		p.maybeTerminate(x.Body)
	}
	return x
}

// parseAssignOrExprStatement parses the fallback statement form: an
// AssignExpr terminated by `;`, or a ControlFlowExpression terminated the
// same way (spec.md §4.5 final alternative). parseExpr already fully
// consumes a single, non-chaining trailing assignment operator (spec.md
// §4.6's AssignExpr level), so there is nothing left to check here beyond
// the terminating `;` — re-checking isAssignOp after parseExpr returns
// would silently chain a second assignment on top instead of rejecting it
// (spec.md invariant P8).
func (p *Parser) parseAssignOrExprStatement() ast.Stmt {
	x := p.parseExpr()
	semi, ok := p.expect(token.Semicolon)
	if !ok {
		p.errorHere(diag.ExpectedToken)
	}
	if assign, isAssign := x.(*ast.AssignStmt); isAssign {
		assign.Semi = semi
		return assign
	}
	return &ast.ExprStmt{X: x, Semi: semi}
}

func isAssignOp(k token.Kind) bool {
	switch k {
	case token.Equal, token.PlusEqual, token.MinusEqual, token.AsteriskEqual, token.SlashEqual,
		token.PercentEqual, token.AngleBracketAngleBracketLeftEqual, token.AngleBracketAngleBracketRightEqual,
		token.AmpersandEqual, token.CaretEqual, token.PipeEqual,
		token.AsteriskPercentEqual, token.PlusPercentEqual, token.MinusPercentEqual,
		token.AngleBracketAngleBracketLeftPipeEqual, token.AsteriskPipeEqual:
		return true
	}
	return false
}
