package parser

import (
	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/diag"
	"github.com/langcore/parse/token"
)

// parseSwitch parses `switch (expr) { prong, prong, ... }` (spec.md §4.8).
func (p *Parser) parseSwitch() *ast.Switch {
	sw := &ast.Switch{}
	sw.SwitchTok = p.advance()
	sw.Lparen, _ = p.expect(token.LParen)
	sw.Cond = p.parseExpr()
	sw.Rparen, _ = p.expect(token.RParen)
	sw.Lbrace, _ = p.expect(token.LBrace)

	sawElse := false
	for p.peek() != token.RBrace && p.peek() != token.Eof {
		if p.peek() == token.KeywordElse {
			elseTok := p.advance()
			arrow, _ := p.expect(token.EqualAngleBracketRight)
			payload := p.tryParsePayload()
			body := p.parseExpr()
			if sawElse {
				p.errorAt(diag.ExpectedToken, elseTok)
			}
			sawElse = true
			sw.Cases = append(sw.Cases, &ast.SwitchElse{ElseTok: elseTok, Arrow: arrow, Payload: payload, Body: body})
		} else {
			c := &ast.SwitchCase{}
			for {
				item := ast.SwitchCaseItem{Ellipsis: ast.InvalidIndex}
				item.Lo = p.parseExpr()
				if p.peek() == token.DotDotDot {
					item.Ellipsis = p.advance()
					item.Hi = p.parseExpr()
				}
				c.Items = append(c.Items, item)
				if p.peek() == token.Comma {
					p.advance()
					if p.peek() == token.EqualAngleBracketRight {
						break
					}
					continue
				}
				break
			}
			c.Arrow, _ = p.expect(token.EqualAngleBracketRight)
			c.Payload = p.tryParsePayload()
			c.Body = p.parseExpr()
			sw.Cases = append(sw.Cases, c)
		}
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	sw.Rbrace, _ = p.expect(token.RBrace)
	return sw
}

// parseAsm parses `asm [volatile] ( template [: outs [: ins [: clobbers]]] )`
// (spec.md §4.9).
func (p *Parser) parseAsm() *ast.Asm {
	a := &ast.Asm{Volatile: ast.InvalidIndex}
	a.AsmTok = p.advance()
	if p.peek() == token.KeywordVolatile {
		a.Volatile = p.advance()
	}
	a.Lparen, _ = p.expect(token.LParen)
	a.Template = p.parseExpr()

	if p.peek() == token.Colon {
		p.advance()
		a.Outputs = p.parseAsmOutputList()
		if p.peek() == token.Colon {
			p.advance()
			a.Inputs = p.parseAsmInputList()
			if p.peek() == token.Colon {
				p.advance()
				a.Clobbers = p.parseAsmClobberList()
			}
		}
	}
	a.Rparen, _ = p.expect(token.RParen)
	return a
}

func (p *Parser) parseAsmSymbolic() (lbracket token.Index, name *ast.Ident, rbracket token.Index) {
	lbracket = ast.InvalidIndex
	rbracket = ast.InvalidIndex
	if p.peek() != token.LBracket {
		return
	}
	lbracket = p.advance()
	nameTok, _ := p.expect(token.Identifier)
	name = &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}
	rbracket, _ = p.expect(token.RBracket)
	return
}

func (p *Parser) parseAsmOutputList() []*ast.AsmOutput {
	var outs []*ast.AsmOutput
	for p.peek() == token.LBracket {
		o := &ast.AsmOutput{Arrow: ast.InvalidIndex}
		o.Lbracket, o.Symbolic, o.Rbracket = p.parseAsmSymbolic()
		o.Constraint, _ = p.expect(token.StringLiteral)
		o.Lparen, _ = p.expect(token.LParen)
		if p.peek() == token.MinusRAngle {
			o.Arrow = p.advance()
			o.Type = p.parseTypeExpr()
		} else {
			nameTok, _ := p.expect(token.Identifier)
			o.Name = &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}
		}
		o.Rparen, _ = p.expect(token.RParen)
		outs = append(outs, o)
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	return outs
}

func (p *Parser) parseAsmInputList() []*ast.AsmInput {
	var ins []*ast.AsmInput
	for p.peek() == token.LBracket {
		in := &ast.AsmInput{}
		in.Lbracket, in.Symbolic, in.Rbracket = p.parseAsmSymbolic()
		in.Constraint, _ = p.expect(token.StringLiteral)
		in.Lparen, _ = p.expect(token.LParen)
		in.Expr = p.parseExpr()
		in.Rparen, _ = p.expect(token.RParen)
		ins = append(ins, in)
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	return ins
}

func (p *Parser) parseAsmClobberList() []token.Index {
	var clobbers []token.Index
	for p.peek() == token.StringLiteral {
		clobbers = append(clobbers, p.advance())
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	return clobbers
}
