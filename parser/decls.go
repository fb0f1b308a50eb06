package parser

import (
	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/diag"
	"github.com/langcore/parse/token"
)

// parseDocComment harvests a contiguous run of DocComment tokens, or
// returns nil if the cursor is not sitting on one. Doc comments are not
// skipped by the cursor (spec.md §4.1), so every declaration production
// calls this explicitly before parsing its own leading tokens.
func (p *Parser) parseDocComment() *ast.DocComment {
	if p.peek() != token.DocComment {
		return nil
	}
	first := p.advance()
	last := first
	for p.peek() == token.DocComment {
		last = p.advance()
	}
	return &ast.DocComment{First: first, Last: last}
}

// parseRoot parses an entire source buffer (spec.md §4.3).
func (p *Parser) parseRoot() *ast.Root {
	root := &ast.Root{}
	p.containerStack = append(p.containerStack, &containerFieldState{})

	if p.peek() == token.ContainerDocComment {
		first := p.advance()
		last := first
		for p.peek() == token.ContainerDocComment {
			last = p.advance()
		}
		root.ContainerDoc = &ast.DocComment{First: first, Last: last}
	}

	for {
		doc := p.parseDocComment()
		if p.peek() == token.Eof {
			if doc != nil {
				p.errorAt(diag.UnattachedDocComment, doc.First)
				root.DanglingDocComments = append(root.DanglingDocComments, doc)
			}
			break
		}
		decl := p.parseContainerMember(doc)
		if decl == nil {
			if doc != nil {
				p.errorAt(diag.UnattachedDocComment, doc.First)
				root.DanglingDocComments = append(root.DanglingDocComments, doc)
			}
			if p.peek() == token.Eof {
				break
			}
			p.findNextContainerMember()
			if p.peek() == token.RBrace {
				// no container is open at the top level: report the stray
				// `}` and step over it
				p.errorHere(diag.ExpectedContainerMembers)
				p.advance()
			}
			continue
		}
		root.Decls = append(root.Decls, decl)
	}

	root.EofToken, _ = p.expect(token.Eof)
	p.containerStack = p.containerStack[:len(p.containerStack)-1]
	return root
}

func (p *Parser) curFieldState() *containerFieldState {
	return p.containerStack[len(p.containerStack)-1]
}

// parseContainerMember parses one member of ContainerMembers: a TestDecl,
// TopLevelComptime, Use, TopLevelDecl, or ContainerField (spec.md §4.3). It
// returns nil (cursor unchanged other than the already-consumed doc) if
// nothing recognisable starts here.
func (p *Parser) parseContainerMember(doc *ast.DocComment) ast.Decl {
	fs := p.curFieldState()

	switch p.peek() {
	case token.KeywordTest:
		d := p.parseTestDecl()
		d.Doc = doc
		p.markDecl(fs)
		return d
	case token.KeywordComptime:
		if save := p.peekIndex(); true {
			tok := p.advance()
			if p.peek() == token.LBrace {
				body := p.parseBlock()
				p.markDecl(fs)
				return &ast.TopLevelComptime{ComptimeTok: tok, Body: body, Doc: doc}
			}
			p.pushBack(save)
		}
	}

	pubTok := ast.InvalidIndex
	if p.peek() == token.KeywordPub {
		pubTok = p.advance()
	}

	switch p.peek() {
	case token.KeywordUsingnamespace:
		u := p.parseUse(pubTok)
		u.Doc = doc
		p.markDecl(fs)
		return u
	case token.KeywordExport, token.KeywordExtern, token.KeywordInline, token.KeywordNoinline,
		token.KeywordThreadlocal, token.KeywordFn, token.KeywordConst, token.KeywordVar:
		d := p.parseTopLevelDecl(pubTok)
		switch decl := d.(type) {
		case *ast.VarDecl:
			decl.Doc = doc
		case *ast.FnDecl:
			decl.Doc = doc
		}
		if d != nil {
			p.markDecl(fs)
		}
		return d
	}

	if pubTok != ast.InvalidIndex {
		p.errorHere(diag.ExpectedPubItem)
		return p.bad(pubTok)
	}

	// ContainerField: identifier [: type] [align] [= expr]
	if p.peek() == token.Identifier || p.peek() == token.KeywordComptime {
		field := p.parseContainerField()
		field.Doc = doc
		if fs.sawField {
			// fields-then-field: fine, nothing to latch.
		}
		fs.sawField = true
		if !fs.mixingReported && fs.declAfterField {
			p.errorAt(diag.DeclBetweenFields, field.FirstToken())
			fs.mixingReported = true
		}
		switch p.peek() {
		case token.Comma:
			p.advance()
		case token.RBrace, token.Eof:
			// list terminator; fine without a trailing comma.
		default:
			p.errorHere(diag.ExpectedToken)
			p.findNextContainerMember()
		}
		return field
	}

	return nil
}

// markDecl records, for the enclosing container, that a declaration was
// just parsed; if a field had already been seen in this container,
// declAfterField latches and the next field parsed there records
// DeclBetweenFields (spec.md §4.3 / §9 Open Questions). A decl before the
// first field is not flagged, and neither are decls after the last field.
func (p *Parser) markDecl(fs *containerFieldState) {
	if fs.sawField {
		fs.declAfterField = true
	}
}

func (p *Parser) parseTestDecl() *ast.TestDecl {
	testTok := p.advance() // `test`
	d := &ast.TestDecl{TestTok: testTok, NameStr: ast.InvalidIndex}
	switch p.peek() {
	case token.StringLiteral:
		d.NameStr = p.advance()
	case token.Identifier:
		tok := p.advance()
		d.Name = &ast.Ident{Tok: tok, Name: p.tokens.Text(p.source, tok)}
	}
	d.Body = p.parseBlock()
	return d
}

func (p *Parser) parseUse(pubTok token.Index) *ast.Use {
	u := &ast.Use{Export: pubTok, UsingnamespaceTok: p.advance()}
	u.Expr = p.parseExpr()
	u.Semi, _ = p.expect(token.Semicolon)
	return u
}

// parseTopLevelDecl parses a linkage-qualified function or variable
// declaration (spec.md §4.4).
func (p *Parser) parseTopLevelDecl(pubTok token.Index) ast.Decl {
	exportTok := ast.InvalidIndex
	externTok := ast.InvalidIndex
	externLib := ast.InvalidIndex
	inlineTok := ast.InvalidIndex
	noinlineTok := ast.InvalidIndex

	if p.peek() == token.KeywordExport {
		exportTok = p.advance()
	}
	if p.peek() == token.KeywordExtern {
		externTok = p.advance()
		if p.peek() == token.StringLiteral {
			externLib = p.advance()
		}
	}
	if p.peek() == token.KeywordInline {
		inlineTok = p.advance()
	} else if p.peek() == token.KeywordNoinline {
		noinlineTok = p.advance()
	}

	threadLocalTok := ast.InvalidIndex
	if p.peek() == token.KeywordThreadlocal {
		threadLocalTok = p.advance()
	}

	if p.peek() == token.KeywordFn {
		if threadLocalTok != ast.InvalidIndex {
			p.errorHere(diag.ExpectedVarDecl)
		}
		proto := p.parseFnProto(externTok, externLib)
		fn := &ast.FnDecl{Proto: proto, Export: exportTok, Inline: inlineTok, Noinline: noinlineTok}
		if p.peek() == token.LBrace {
			fn.Body = p.parseBlock()
		} else {
			fn.Semi, _ = p.expect(token.Semicolon)
		}
		return fn
	}

	if p.peek() == token.KeywordConst || p.peek() == token.KeywordVar {
		if inlineTok != ast.InvalidIndex || noinlineTok != ast.InvalidIndex {
			p.errorHere(diag.ExpectedFn)
		}
		v := p.parseVarDecl()
		v.Export = exportTok
		v.Extern = externTok
		v.ExternLib = externLib
		v.ThreadLocal = threadLocalTok
		return v
	}

	p.errorHere(diag.ExpectedVarDeclOrFn)
	return p.bad(p.peekIndex())
}

// parseFnProto parses `fn` [name] `(` params `)` [align] [linksection]
// [callconv] [!] return-type (spec.md §4.4).
func (p *Parser) parseFnProto(externTok, externLib token.Index) *ast.FnProto {
	asyncTok := ast.InvalidIndex
	if p.peek() == token.KeywordAsync {
		asyncTok = p.advance()
	}
	proto := &ast.FnProto{Extern: externTok, ExternLib: externLib, Async: asyncTok, Bang: ast.InvalidIndex}
	proto.FnTok, _ = p.expect(token.KeywordFn)
	if p.peek() == token.Identifier {
		tok := p.advance()
		proto.Name = &ast.Ident{Tok: tok, Name: p.tokens.Text(p.source, tok)}
	}
	proto.Lparen, _ = p.expect(token.LParen)
	proto.Params = p.parseParamList()
	proto.Rparen, _ = p.expect(token.RParen)

	for {
		switch p.peek() {
		case token.KeywordAlign:
			p.advance()
			p.expect(token.LParen)
			proto.AlignExpr = p.parseExpr()
			p.expect(token.RParen)
			continue
		case token.KeywordLinksection:
			p.advance()
			p.expect(token.LParen)
			proto.SectionExpr = p.parseExpr()
			p.expect(token.RParen)
			continue
		case token.KeywordCallconv:
			p.advance()
			p.expect(token.LParen)
			proto.CallConv = p.parseExpr()
			p.expect(token.RParen)
			continue
		}
		break
	}

	if p.peek() == token.Bang {
		proto.Bang = p.advance()
	}

	switch p.peek() {
	case token.KeywordVar:
		tok := p.advance()
		proto.ReturnType = &ast.VarType{Tok: tok}
	case token.LBrace, token.Semicolon, token.Eof:
		proto.ReturnTypeInvalid = true
		proto.ReturnType = p.bad(p.peekIndex())
		p.errorHere(diag.ExpectedReturnType)
	default:
		proto.ReturnType = p.parseTypeExpr()
	}
	return proto
}

func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	for p.peek() != token.RParen && p.peek() != token.Eof {
		param := &ast.Param{NoAlias: ast.InvalidIndex, Comptime: ast.InvalidIndex, AnyType: ast.InvalidIndex, Ellipsis: ast.InvalidIndex}
		if p.peek() == token.DotDotDot {
			param.Ellipsis = p.advance()
			params = append(params, param)
			break
		}
		if p.peek() == token.KeywordNoalias {
			param.NoAlias = p.advance()
		}
		if p.peek() == token.KeywordComptime {
			param.Comptime = p.advance()
		}
		if p.peek() == token.Identifier {
			save := p.peekIndex()
			tok := p.advance()
			if p.peek() == token.Colon {
				p.advance()
				param.Name = &ast.Ident{Tok: tok, Name: p.tokens.Text(p.source, tok)}
			} else {
				p.pushBack(save)
			}
		}
		if p.peek() == token.KeywordAnytype {
			param.AnyType = p.advance()
		} else {
			param.Type = p.parseTypeExpr()
		}
		params = append(params, param)
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	return params
}

// parseVarDecl parses `const`/`var` name [: type] [align] [linksection]
// [= expr] `;`.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	v := &ast.VarDecl{ThreadLocal: ast.InvalidIndex, Extern: ast.InvalidIndex, ExternLib: ast.InvalidIndex, Export: ast.InvalidIndex}
	v.MutTok = p.advance()
	nameTok, _ := p.expect(token.Identifier)
	v.Name = &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}

	if p.peek() == token.Colon {
		p.advance()
		v.TypeExpr = p.parseTypeExpr()
	}
	for {
		switch p.peek() {
		case token.KeywordAlign:
			p.advance()
			p.expect(token.LParen)
			v.AlignExpr = p.parseExpr()
			p.expect(token.RParen)
			continue
		case token.KeywordLinksection:
			p.advance()
			p.expect(token.LParen)
			v.SectionExpr = p.parseExpr()
			p.expect(token.RParen)
			continue
		}
		break
	}
	if p.peek() == token.Equal {
		p.advance()
		v.Value = p.parseExpr()
	}
	v.Semi, _ = p.expect(token.Semicolon)
	return v
}

// parseContainerField parses [comptime] name [: (var|type) [align]] [= expr].
func (p *Parser) parseContainerField() *ast.ContainerField {
	f := &ast.ContainerField{Comptime: ast.InvalidIndex, AnyType: ast.InvalidIndex}
	if p.peek() == token.KeywordComptime {
		f.Comptime = p.advance()
	}
	nameTok, _ := p.expect(token.Identifier)
	f.Name = &ast.Ident{Tok: nameTok, Name: p.identText(nameTok)}
	if p.peek() == token.Colon {
		p.advance()
		if p.peek() == token.KeywordVar {
			f.AnyType = p.advance()
		} else {
			f.Type = p.parseTypeExpr()
		}
		if p.peek() == token.KeywordAlign {
			p.advance()
			p.expect(token.LParen)
			f.AlignExpr = p.parseExpr()
			p.expect(token.RParen)
		}
	}
	if p.peek() == token.Equal {
		p.advance()
		f.Value = p.parseExpr()
	}
	return f
}

// parseContainerDecl parses `[packed|extern] (struct|enum|union|opaque)
// [(arg)] { members }` (spec.md §4.3/§3).
func (p *Parser) parseContainerDecl(layout token.Index) *ast.ContainerDecl {
	d := &ast.ContainerDecl{Layout: layout}
	d.KeywordTok = p.advance()
	switch p.tokens.Kind(d.KeywordTok) {
	case token.KeywordStruct:
		d.Kind = ast.ContainerStruct
	case token.KeywordEnum:
		d.Kind = ast.ContainerEnum
	case token.KeywordUnion:
		d.Kind = ast.ContainerUnion
	case token.KeywordOpaque:
		d.Kind = ast.ContainerOpaque
	}
	if p.peek() == token.LParen {
		p.advance()
		d.Arg = p.parseExpr()
		p.expect(token.RParen)
	}
	d.Lbrace, _ = p.expect(token.LBrace)

	p.containerStack = append(p.containerStack, &containerFieldState{})
	for p.peek() != token.RBrace && p.peek() != token.Eof {
		doc := p.parseDocComment()
		if p.peek() == token.RBrace || p.peek() == token.Eof {
			if doc != nil {
				p.errorAt(diag.UnattachedDocComment, doc.First)
			}
			break
		}
		member := p.parseContainerMember(doc)
		if member == nil {
			if doc != nil {
				p.errorAt(diag.UnattachedDocComment, doc.First)
			}
			p.errorHere(diag.ExpectedContainerMembers)
			p.findNextContainerMember()
			continue
		}
		d.FieldsAndDecls = append(d.FieldsAndDecls, member)
	}
	p.containerStack = p.containerStack[:len(p.containerStack)-1]

	d.Rbrace, _ = p.expect(token.RBrace)
	return d
}

func (p *Parser) parseErrorSetDecl() *ast.ErrorSetDecl {
	d := &ast.ErrorSetDecl{}
	d.ErrorTok = p.advance()
	d.Lbrace, _ = p.expect(token.LBrace)
	for p.peek() != token.RBrace && p.peek() != token.Eof {
		tok, ok := p.expect(token.Identifier)
		if !ok {
			break
		}
		d.Names = append(d.Names, &ast.Ident{Tok: tok, Name: p.tokens.Text(p.source, tok)})
		if p.peek() == token.Comma {
			p.advance()
			continue
		}
		break
	}
	d.Rbrace, _ = p.expect(token.RBrace)
	return d
}
