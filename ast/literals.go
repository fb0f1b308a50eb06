package ast

import "github.com/langcore/parse/token"

// IntegerLiteral is a bare integer literal token.
type IntegerLiteral struct{ Tok token.Index }

func (x *IntegerLiteral) FirstToken() token.Index { return x.Tok }
func (x *IntegerLiteral) LastToken() token.Index  { return x.Tok }
func (x *IntegerLiteral) node()                   {}
func (x *IntegerLiteral) exprNode()               {}

// FloatLiteral is a bare float literal token.
type FloatLiteral struct{ Tok token.Index }

func (x *FloatLiteral) FirstToken() token.Index { return x.Tok }
func (x *FloatLiteral) LastToken() token.Index  { return x.Tok }
func (x *FloatLiteral) node()                   {}
func (x *FloatLiteral) exprNode()               {}

// CharLiteral is a single-quoted character literal token.
type CharLiteral struct{ Tok token.Index }

func (x *CharLiteral) FirstToken() token.Index { return x.Tok }
func (x *CharLiteral) LastToken() token.Index  { return x.Tok }
func (x *CharLiteral) node()                   {}
func (x *CharLiteral) exprNode()               {}

// StringLiteral is a single double-quoted string literal token.
type StringLiteral struct{ Tok token.Index }

func (x *StringLiteral) FirstToken() token.Index { return x.Tok }
func (x *StringLiteral) LastToken() token.Index  { return x.Tok }
func (x *StringLiteral) node()                   {}
func (x *StringLiteral) exprNode()               {}

// MultilineStringLiteral is a run of one or more consecutive `\\...` lines
// (spec.md §4.9: each physical line is its own token, concatenated with a
// single '\n' between lines with no trailing newline on the last line).
type MultilineStringLiteral struct {
	Lines []token.Index // one MultilineStringLiteralLine token per physical line, in order
}

func (x *MultilineStringLiteral) FirstToken() token.Index { return x.Lines[0] }
func (x *MultilineStringLiteral) LastToken() token.Index  { return x.Lines[len(x.Lines)-1] }
func (x *MultilineStringLiteral) node()                   {}
func (x *MultilineStringLiteral) exprNode()               {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Tok   token.Index
	Value bool
}

func (x *BoolLiteral) FirstToken() token.Index { return x.Tok }
func (x *BoolLiteral) LastToken() token.Index  { return x.Tok }
func (x *BoolLiteral) node()                   {}
func (x *BoolLiteral) exprNode()               {}

// NullLiteral is `null`.
type NullLiteral struct{ Tok token.Index }

func (x *NullLiteral) FirstToken() token.Index { return x.Tok }
func (x *NullLiteral) LastToken() token.Index  { return x.Tok }
func (x *NullLiteral) node()                   {}
func (x *NullLiteral) exprNode()               {}

// UndefinedLiteral is `undefined`.
type UndefinedLiteral struct{ Tok token.Index }

func (x *UndefinedLiteral) FirstToken() token.Index { return x.Tok }
func (x *UndefinedLiteral) LastToken() token.Index  { return x.Tok }
func (x *UndefinedLiteral) node()                   {}
func (x *UndefinedLiteral) exprNode()               {}

// UnreachableLiteral is `unreachable`.
type UnreachableLiteral struct{ Tok token.Index }

func (x *UnreachableLiteral) FirstToken() token.Index { return x.Tok }
func (x *UnreachableLiteral) LastToken() token.Index  { return x.Tok }
func (x *UnreachableLiteral) node()                   {}
func (x *UnreachableLiteral) exprNode()               {}

// EnumLiteral is `.name`, a tag-only enum/union literal reference.
type EnumLiteral struct {
	Dot  token.Index
	Name *Ident
}

func (x *EnumLiteral) FirstToken() token.Index { return x.Dot }
func (x *EnumLiteral) LastToken() token.Index  { return x.Name.Tok }
func (x *EnumLiteral) node()                   {}
func (x *EnumLiteral) exprNode()               {}

// AnyFrameType is the bare type `anyframe` or `anyframe->T`.
type AnyFrameType struct {
	Tok      token.Index
	Arrow    token.Index // InvalidIndex if bare `anyframe`
	ChildType TypeExpr   // nil if bare `anyframe`
}

func (x *AnyFrameType) FirstToken() token.Index { return x.Tok }
func (x *AnyFrameType) LastToken() token.Index {
	if x.ChildType != nil {
		return x.ChildType.LastToken()
	}
	return x.Tok
}
func (x *AnyFrameType) node()     {}
func (x *AnyFrameType) exprNode() {}

// VarType is the bare `var` keyword used as an inferred return type
// (`fn() var`), a distinct grammar position from VarDecl's `var` keyword.
type VarType struct{ Tok token.Index }

func (x *VarType) FirstToken() token.Index { return x.Tok }
func (x *VarType) LastToken() token.Index  { return x.Tok }
func (x *VarType) node()                   {}
func (x *VarType) exprNode()               {}
