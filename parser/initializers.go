package parser

import (
	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/token"
)

// parseInitializerTyped parses `Type{ ... }`: empty, field-initializer, or
// element-expression shaped, decided by the first element (spec.md §4.7).
func (p *Parser) parseInitializerTyped(typ ast.Expr) ast.Expr {
	lbrace := p.advance()
	if p.peek() == token.RBrace {
		rbrace := p.advance()
		return &ast.StructInitializer{Type: typ, Lbrace: lbrace, Rbrace: rbrace}
	}
	if p.peek() == token.Dot {
		fields, rbrace := p.parseFieldInitializerList()
		return &ast.StructInitializer{Type: typ, Lbrace: lbrace, Fields: fields, Rbrace: rbrace}
	}
	elems, rbrace := p.parseElementList()
	return &ast.ArrayInitializer{Type: typ, Lbrace: lbrace, Elements: elems, Rbrace: rbrace}
}

// parseInitializerDot parses the anonymous `.{ ... }` form.
func (p *Parser) parseInitializerDot(dot token.Index) ast.Expr {
	lbrace := p.advance()
	if p.peek() == token.RBrace {
		rbrace := p.advance()
		return &ast.StructInitializerDot{Dot: dot, Lbrace: lbrace, Rbrace: rbrace}
	}
	if p.peek() == token.Dot {
		fields, rbrace := p.parseFieldInitializerList()
		return &ast.StructInitializerDot{Dot: dot, Lbrace: lbrace, Fields: fields, Rbrace: rbrace}
	}
	elems, rbrace := p.parseElementList()
	return &ast.ArrayInitializerDot{Dot: dot, Lbrace: lbrace, Elements: elems, Rbrace: rbrace}
}

func (p *Parser) parseFieldInitializerList() ([]*ast.FieldInitializer, token.Index) {
	var fields []*ast.FieldInitializer
	for p.peek() == token.Dot {
		dot := p.advance()
		nameTok, _ := p.expect(token.Identifier)
		equal, _ := p.expect(token.Equal)
		value := p.parseExpr()
		fields = append(fields, &ast.FieldInitializer{
			Dot:   dot,
			Name:  &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)},
			Equal: equal,
			Value: value,
		})
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	rbrace, _ := p.expect(token.RBrace)
	return fields, rbrace
}

func (p *Parser) parseElementList() ([]ast.Expr, token.Index) {
	var elems []ast.Expr
	for p.peek() != token.RBrace && p.peek() != token.Eof {
		elems = append(elems, p.parseExpr())
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	rbrace, _ := p.expect(token.RBrace)
	return elems, rbrace
}
