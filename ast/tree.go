package ast

import (
	"github.com/langcore/parse/diag"
	"github.com/langcore/parse/token"
)

// Tree is the immutable result of parsing one source buffer: it owns the
// token arrays, the diagnostics list, and the root of the AST. Destroying a
// Tree (letting it become unreachable) destroys everything it owns — there
// is nothing else to free (spec.md §3 "Ownership / lifetime").
type Tree struct {
	Source []byte
	Tokens *token.List
	Errors []diag.Diagnostic
	Root   *Root
}

// Source span of a node, in bytes, as spec.md §6 defines it.
func (t *Tree) Span(n Node) token.ByteRange {
	start := t.Tokens.Loc(n.FirstToken())
	end := t.Tokens.Loc(n.LastToken())
	return token.ByteRange{Start: start.Start, End: end.End}
}

// TokenText returns the literal source text of the token at i.
func (t *Tree) TokenText(i token.Index) string {
	return t.Tokens.Text(t.Source, i)
}

// Root is the top-level node of every Tree. Its Decls is the ordered list
// of top-level declarations; EofToken points at the terminating Eof token,
// satisfying spec.md invariant 4.
type Root struct {
	Decls               []Decl
	ContainerDoc         *DocComment // top-of-file container doc comment, if any
	DanglingDocComments  []*DocComment
	EofToken             token.Index
}

func (r *Root) FirstToken() token.Index {
	if len(r.Decls) > 0 {
		return r.Decls[0].FirstToken()
	}
	return r.EofToken
}
func (r *Root) LastToken() token.Index { return r.EofToken }
func (r *Root) node()                  {}

// TestDecl is `test "name" { ... }` or `test name { ... }` (anonymous test
// names are represented with Name == nil).
type TestDecl struct {
	TestTok token.Index
	Name    *Ident // non-nil only for the named-identifier form; test name
	NameStr token.Index // token index of the string literal name; InvalidIndex if none
	Body    *Block
	Doc     *DocComment
}

func (d *TestDecl) FirstToken() token.Index { return d.TestTok }
func (d *TestDecl) LastToken() token.Index  { return d.Body.LastToken() }
func (d *TestDecl) node()                   {}
func (d *TestDecl) declNode()               {}

// TopLevelComptime is `comptime { ... }` at container scope.
type TopLevelComptime struct {
	ComptimeTok token.Index
	Body        *Block
	Doc         *DocComment
}

func (d *TopLevelComptime) FirstToken() token.Index { return d.ComptimeTok }
func (d *TopLevelComptime) LastToken() token.Index  { return d.Body.LastToken() }
func (d *TopLevelComptime) node()                   {}
func (d *TopLevelComptime) declNode()                {}

// Use is `usingnamespace expr;`.
type Use struct {
	Export           token.Index // InvalidIndex if absent
	UsingnamespaceTok token.Index
	Expr             Expr
	Semi             token.Index
	Doc              *DocComment
}

func (d *Use) FirstToken() token.Index {
	if d.Export != InvalidIndex {
		return d.Export
	}
	return d.UsingnamespaceTok
}
func (d *Use) LastToken() token.Index { return d.Semi }
func (d *Use) node()                  {}
func (d *Use) declNode()              {}

// InvalidIndex marks an optional token.Index field as absent.
const InvalidIndex token.Index = ^token.Index(0)

// VarDecl is `const`/`var` name [: type] [align(..)] [linksection(..)]
// [= expr] `;`, used both at container scope and as a statement.
type VarDecl struct {
	MutTok      token.Index // the `const` or `var` token
	ThreadLocal token.Index // InvalidIndex if absent
	Name        *Ident
	TypeExpr    TypeExpr // nil if untyped
	AlignExpr   Expr     // nil if absent
	SectionExpr Expr     // nil if absent
	Value       Expr     // nil if uninitialized (extern/opaque-only form)
	Semi        token.Index
	Doc         *DocComment
	Extern      token.Index // InvalidIndex if absent
	ExternLib   token.Index // string-literal token naming the library; InvalidIndex if absent
	Export      token.Index // InvalidIndex if absent
}

func (d *VarDecl) FirstToken() token.Index {
	if d.Export != InvalidIndex {
		return d.Export
	}
	if d.Extern != InvalidIndex {
		return d.Extern
	}
	if d.ThreadLocal != InvalidIndex {
		return d.ThreadLocal
	}
	return d.MutTok
}
func (d *VarDecl) LastToken() token.Index { return d.Semi }
func (d *VarDecl) node()                  {}
func (d *VarDecl) declNode()              {}
func (d *VarDecl) stmtNode()              {}

// Param is one formal parameter of a FnProto.
type Param struct {
	NoAlias   token.Index // InvalidIndex if absent
	Comptime  token.Index // InvalidIndex if absent
	Name      *Ident      // nil for an unnamed parameter
	AnyType   token.Index // set when the param type is bare `anytype`; InvalidIndex otherwise
	Type      TypeExpr    // nil when AnyType is set
	Ellipsis  token.Index // set for the trailing variadic `...` parameter; InvalidIndex otherwise
}

// FnProto is a function prototype/signature, shared by declarations and
// function-literal expressions.
type FnProto struct {
	Extern      token.Index // InvalidIndex if absent; extern linkage
	ExternLib   token.Index // string literal; InvalidIndex if absent
	Async       token.Index // InvalidIndex if absent
	FnTok       token.Index
	Name        *Ident // nil for anonymous function literals
	Lparen      token.Index
	Params      []*Param
	Rparen      token.Index
	AlignExpr   Expr // nil if absent
	SectionExpr Expr // nil if absent
	CallConv    Expr // nil if absent
	Bang        token.Index // InvalidIndex unless an error union return type
	ReturnType  TypeExpr    // never nil; Invalid placeholder on missing return type
	ReturnTypeInvalid bool
}

func (d *FnProto) FirstToken() token.Index {
	if d.Extern != InvalidIndex {
		return d.Extern
	}
	if d.Async != InvalidIndex {
		return d.Async
	}
	return d.FnTok
}
func (d *FnProto) LastToken() token.Index {
	if d.ReturnType != nil {
		return d.ReturnType.LastToken()
	}
	return d.Rparen
}
func (d *FnProto) node()     {}
func (d *FnProto) exprNode() {}

// FnDecl is a top-level function: a FnProto terminated by `;` (extern
// prototype) or followed by a Block body.
type FnDecl struct {
	Proto  *FnProto
	Body   *Block // nil for a prototype-only declaration
	Semi   token.Index // valid only when Body == nil
	Doc    *DocComment
	Export token.Index // InvalidIndex if absent
	Inline token.Index // InvalidIndex if absent; mutually exclusive with Noinline
	Noinline token.Index // InvalidIndex if absent
}

func (d *FnDecl) FirstToken() token.Index {
	if d.Export != InvalidIndex {
		return d.Export
	}
	if d.Inline != InvalidIndex {
		return d.Inline
	}
	if d.Noinline != InvalidIndex {
		return d.Noinline
	}
	return d.Proto.FirstToken()
}
func (d *FnDecl) LastToken() token.Index {
	if d.Body != nil {
		return d.Body.LastToken()
	}
	return d.Semi
}
func (d *FnDecl) node()     {}
func (d *FnDecl) declNode() {}

// ContainerField is one field of a struct/enum/union: [comptime] name [:
// type] [align(expr)] [= expr].
type ContainerField struct {
	Comptime  token.Index // InvalidIndex if absent
	Name      *Ident
	Type      TypeExpr // nil if untyped (enum field with no explicit tag type)
	AnyType   token.Index // InvalidIndex unless the type is bare `var`
	AlignExpr Expr     // nil if absent
	Value     Expr     // nil if absent
	Doc       *DocComment
}

func (d *ContainerField) FirstToken() token.Index {
	if d.Comptime != InvalidIndex {
		return d.Comptime
	}
	return d.Name.Tok
}
func (d *ContainerField) LastToken() token.Index {
	if d.Value != nil {
		return d.Value.LastToken()
	}
	if d.AlignExpr != nil {
		return d.AlignExpr.LastToken()
	}
	if d.Type != nil {
		return d.Type.LastToken()
	}
	return d.Name.Tok
}
func (d *ContainerField) node()     {}
func (d *ContainerField) declNode() {}

// ContainerKind distinguishes struct/enum/union container declarations.
type ContainerKind uint8

const (
	ContainerStruct ContainerKind = iota
	ContainerEnum
	ContainerUnion
	ContainerOpaque
)

// ContainerDecl is `[packed|extern] (struct|enum|union|opaque) [(arg)] {
// fields-and-decls }`, used both as a type expression and (via VarDecl) as
// a named type declaration.
type ContainerDecl struct {
	Layout      token.Index // `packed`/`extern` lead; InvalidIndex if absent
	KeywordTok  token.Index
	Kind        ContainerKind
	Arg         Expr // backing-integer (enum) or tag-type (union) expr; nil if absent
	Lbrace      token.Index
	FieldsAndDecls []Node // mixed ContainerField / Decl, in source order
	Rbrace      token.Index
}

func (d *ContainerDecl) FirstToken() token.Index {
	if d.Layout != InvalidIndex {
		return d.Layout
	}
	return d.KeywordTok
}
func (d *ContainerDecl) LastToken() token.Index { return d.Rbrace }
func (d *ContainerDecl) node()                  {}
func (d *ContainerDecl) exprNode()              {}

// ErrorSetDecl is `error { Name, Name, ... }`.
type ErrorSetDecl struct {
	ErrorTok token.Index
	Lbrace   token.Index
	Names    []*Ident
	Rbrace   token.Index
}

func (d *ErrorSetDecl) FirstToken() token.Index { return d.ErrorTok }
func (d *ErrorSetDecl) LastToken() token.Index  { return d.Rbrace }
func (d *ErrorSetDecl) node()                   {}
func (d *ErrorSetDecl) exprNode()               {}
