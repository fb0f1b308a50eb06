package ast

import "github.com/langcore/parse/token"

// InfixOp is a binary expression `lhs op rhs`, produced by the
// precedence-climbing expression parser (spec.md §4.7).
type InfixOp struct {
	Lhs Expr
	Op  token.Index
	Rhs Expr
}

func (x *InfixOp) FirstToken() token.Index { return x.Lhs.FirstToken() }
func (x *InfixOp) LastToken() token.Index  { return x.Rhs.LastToken() }
func (x *InfixOp) node()                   {}
func (x *InfixOp) exprNode()               {}

// Catch is `lhs catch [|payload|] rhs`, kept distinct from InfixOp because
// it binds an optional payload identifier.
type Catch struct {
	Lhs     Expr
	CatchTok token.Index
	Payload *Ident // nil if no `|name|` clause
	Rhs     Expr
}

func (x *Catch) FirstToken() token.Index { return x.Lhs.FirstToken() }
func (x *Catch) LastToken() token.Index  { return x.Rhs.LastToken() }
func (x *Catch) node()                   {}
func (x *Catch) exprNode()               {}

// PrefixOp is a unary prefix expression: `op expr`, or a type-qualifier
// chain (`*`, `[*]`, `[]`, `[N]`, `?`, `[N:sentinel]`) applied to a child
// type expression (spec.md §4.6 "type expressions share the prefix/primary
// machinery").
type PrefixOp struct {
	Op    token.Index
	Child Expr
}

func (x *PrefixOp) FirstToken() token.Index { return x.Op }
func (x *PrefixOp) LastToken() token.Index  { return x.Child.LastToken() }
func (x *PrefixOp) node()                   {}
func (x *PrefixOp) exprNode()               {}

// PtrTypeOp is a pointer/slice/array type-qualifier chain element carrying
// its bracketed qualifiers (`align`, `const`, `volatile`, `allowzero`,
// sentinel), distinct from a bare PrefixOp because of the extra modifiers.
type PtrTypeOp struct {
	Lbracket    token.Index // InvalidIndex for a bare `*`/`?` qualifier
	Size        PtrSize
	Sentinel    Expr // `[N:sentinel]` / `[*:sentinel]`; nil if absent
	ArrayLen    Expr // `[N]expr`; nil unless Size == PtrSizeArray
	Rbracket    token.Index
	Star        token.Index // the `*` token itself; InvalidIndex for array/slice forms
	AlignExpr   Expr        // `align(expr)`; nil if absent
	AllowZero   token.Index // InvalidIndex if absent
	Const       token.Index // InvalidIndex if absent
	Volatile    token.Index // InvalidIndex if absent
	Child       TypeExpr
}

// PtrSize distinguishes the pointer/array/slice forms of a type qualifier.
type PtrSize uint8

const (
	PtrSizeOne PtrSize = iota // bare `*T`
	PtrSizeMany               // `[*]T`
	PtrSizeSlice              // `[]T`
	PtrSizeArray              // `[N]T`
	PtrSizeC                  // `[*c]T`
)

func (x *PtrTypeOp) FirstToken() token.Index {
	if x.Lbracket != InvalidIndex {
		return x.Lbracket
	}
	return x.Star
}
func (x *PtrTypeOp) LastToken() token.Index { return x.Child.LastToken() }
func (x *PtrTypeOp) node()                  {}
func (x *PtrTypeOp) exprNode()              {}

// OptionalType is `?Child`.
type OptionalType struct {
	Question token.Index
	Child    TypeExpr
}

func (x *OptionalType) FirstToken() token.Index { return x.Question }
func (x *OptionalType) LastToken() token.Index  { return x.Child.LastToken() }
func (x *OptionalType) node()                   {}
func (x *OptionalType) exprNode()               {}

// GroupedExpression is `( expr )`.
type GroupedExpression struct {
	Lparen token.Index
	Inner  Expr
	Rparen token.Index
}

func (x *GroupedExpression) FirstToken() token.Index { return x.Lparen }
func (x *GroupedExpression) LastToken() token.Index  { return x.Rparen }
func (x *GroupedExpression) node()                   {}
func (x *GroupedExpression) exprNode()               {}

// FieldAccess is `lhs.name`.
type FieldAccess struct {
	Lhs  Expr
	Dot  token.Index
	Name *Ident
}

func (x *FieldAccess) FirstToken() token.Index { return x.Lhs.FirstToken() }
func (x *FieldAccess) LastToken() token.Index  { return x.Name.Tok }
func (x *FieldAccess) node()                   {}
func (x *FieldAccess) exprNode()               {}

// Deref is `lhs.*`.
type Deref struct {
	Lhs Expr
	Dot token.Index
	Star token.Index
}

func (x *Deref) FirstToken() token.Index { return x.Lhs.FirstToken() }
func (x *Deref) LastToken() token.Index  { return x.Star }
func (x *Deref) node()                   {}
func (x *Deref) exprNode()               {}

// UnwrapOptional is `lhs.?`.
type UnwrapOptional struct {
	Lhs      Expr
	Dot      token.Index
	Question token.Index
}

func (x *UnwrapOptional) FirstToken() token.Index { return x.Lhs.FirstToken() }
func (x *UnwrapOptional) LastToken() token.Index  { return x.Question }
func (x *UnwrapOptional) node()                   {}
func (x *UnwrapOptional) exprNode()               {}

// Index is `lhs[index]`.
type Index struct {
	Lhs      Expr
	Lbracket token.Index
	IndexExpr Expr
	Rbracket token.Index
}

func (x *Index) FirstToken() token.Index { return x.Lhs.FirstToken() }
func (x *Index) LastToken() token.Index  { return x.Rbracket }
func (x *Index) node()                   {}
func (x *Index) exprNode()               {}

// Slice is `lhs[start..end]` or `lhs[start..end :sentinel]`.
type Slice struct {
	Lhs      Expr
	Lbracket token.Index
	Start    Expr
	DotDot   token.Index
	End      Expr // nil for an open-ended slice
	Sentinel Expr // nil if absent
	Rbracket token.Index
}

func (x *Slice) FirstToken() token.Index { return x.Lhs.FirstToken() }
func (x *Slice) LastToken() token.Index  { return x.Rbracket }
func (x *Slice) node()                   {}
func (x *Slice) exprNode()               {}

// Call is `callee(args...)`.
type Call struct {
	Callee Expr
	Async  token.Index // InvalidIndex if absent
	Lparen token.Index
	Args   []Expr
	Rparen token.Index
}

func (x *Call) FirstToken() token.Index {
	if x.Async != InvalidIndex {
		return x.Async
	}
	return x.Callee.FirstToken()
}
func (x *Call) LastToken() token.Index { return x.Rparen }
func (x *Call) node()                  {}
func (x *Call) exprNode()              {}

// BuiltinCall is `@name(args...)`.
type BuiltinCall struct {
	At     token.Index
	Name   *Ident
	Lparen token.Index
	Args   []Expr
	Rparen token.Index
}

func (x *BuiltinCall) FirstToken() token.Index { return x.At }
func (x *BuiltinCall) LastToken() token.Index  { return x.Rparen }
func (x *BuiltinCall) node()                   {}
func (x *BuiltinCall) exprNode()               {}

// FieldInitializer is `.name = value` inside a StructInitializer.
type FieldInitializer struct {
	Dot   token.Index
	Name  *Ident
	Equal token.Index
	Value Expr
}

func (x *FieldInitializer) FirstToken() token.Index { return x.Dot }
func (x *FieldInitializer) LastToken() token.Index  { return x.Value.LastToken() }
func (x *FieldInitializer) node()                   {}

// StructInitializer is `Type{ .name = value, ... }`.
type StructInitializer struct {
	Type   TypeExpr // nil for the `.{ ... }` anonymous form (use StructInitializerDot)
	Lbrace token.Index
	Fields []*FieldInitializer
	Rbrace token.Index
}

func (x *StructInitializer) FirstToken() token.Index {
	if x.Type != nil {
		return x.Type.FirstToken()
	}
	return x.Lbrace
}
func (x *StructInitializer) LastToken() token.Index { return x.Rbrace }
func (x *StructInitializer) node()                  {}
func (x *StructInitializer) exprNode()              {}

// StructInitializerDot is the anonymous form `.{ .name = value, ... }`.
type StructInitializerDot struct {
	Dot    token.Index
	Lbrace token.Index
	Fields []*FieldInitializer
	Rbrace token.Index
}

func (x *StructInitializerDot) FirstToken() token.Index { return x.Dot }
func (x *StructInitializerDot) LastToken() token.Index  { return x.Rbrace }
func (x *StructInitializerDot) node()                   {}
func (x *StructInitializerDot) exprNode()               {}

// ArrayInitializer is `Type{ elem, elem, ... }`.
type ArrayInitializer struct {
	Type     TypeExpr
	Lbrace   token.Index
	Elements []Expr
	Rbrace   token.Index
}

func (x *ArrayInitializer) FirstToken() token.Index { return x.Type.FirstToken() }
func (x *ArrayInitializer) LastToken() token.Index  { return x.Rbrace }
func (x *ArrayInitializer) node()                   {}
func (x *ArrayInitializer) exprNode()               {}

// ArrayInitializerDot is the anonymous form `.{ elem, elem, ... }`.
type ArrayInitializerDot struct {
	Dot      token.Index
	Lbrace   token.Index
	Elements []Expr
	Rbrace   token.Index
}

func (x *ArrayInitializerDot) FirstToken() token.Index { return x.Dot }
func (x *ArrayInitializerDot) LastToken() token.Index  { return x.Rbrace }
func (x *ArrayInitializerDot) node()                   {}
func (x *ArrayInitializerDot) exprNode()               {}

// FnLiteral is an anonymous function expression: a FnProto (Name == nil)
// immediately followed by a Block body.
type FnLiteral struct {
	Proto *FnProto
	Body  *Block
}

func (x *FnLiteral) FirstToken() token.Index { return x.Proto.FirstToken() }
func (x *FnLiteral) LastToken() token.Index  { return x.Body.LastToken() }
func (x *FnLiteral) node()                   {}
func (x *FnLiteral) exprNode()               {}
