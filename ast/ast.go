// Package ast defines the abstract syntax tree produced by parser.Parse.
//
// Every node carries the token indices needed to reconstruct its source
// span (spec.md §3 invariant 1); nodes never store byte offsets or
// line/column numbers directly — those are derived from a Tree's token
// array. All nodes referenced by a Tree are reachable from its Root and are
// released together when the Tree itself becomes unreachable: the "arena"
// spec.md §3 describes is simply the set of nodes transitively owned by
// Root, the idiomatic Go analogue of the teacher's single-arena allocator.
package ast

import "github.com/langcore/parse/token"

// Node is implemented by every AST node. FirstToken and LastToken give the
// inclusive token index range the node spans (spec.md invariant 1:
// first_token <= last_token).
type Node interface {
	FirstToken() token.Index
	LastToken() token.Index
	node()
}

// Decl is a top-level or container-level declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a Block.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression that evaluates to (or names) a value or type.
type Expr interface {
	Node
	exprNode()
}

// TypeExpr is an Expr used in type position (PrefixOp chains, container
// decls, ErrorSetDecl, AnyFrameType, VarType). The Language does not
// distinguish types from values at the grammar level — spec.md §4.6 parses
// types through the same prefix/primary/suffix machinery as expressions —
// so TypeExpr is just Expr, kept as a named alias for readability at call
// sites that specifically expect a type position.
type TypeExpr = Expr

// DocComment is a harvested run of contiguous doc-comment tokens attached
// to exactly one declaration (spec.md invariant 6). A run that could not be
// attached produces an UnattachedDocComment diagnostic; at the top level it
// is also kept in Root.DanglingDocComments, inside a container it is not.
type DocComment struct {
	First token.Index // first doc-comment token in the contiguous run
	Last  token.Index // last doc-comment token in the run
}

func (d *DocComment) FirstToken() token.Index { return d.First }
func (d *DocComment) LastToken() token.Index  { return d.Last }
func (d *DocComment) node()                   {}

// Ident is a bare identifier reference, used both as an expression
// (variable/enum-literal name) and wherever the grammar calls for a name
// token (parameter names, field names, labels).
type Ident struct {
	Tok  token.Index
	Name string
}

func (x *Ident) FirstToken() token.Index { return x.Tok }
func (x *Ident) LastToken() token.Index  { return x.Tok }
func (x *Ident) node()                   {}
func (x *Ident) exprNode()               {}

// Bad is a placeholder produced in place of a node that failed to parse,
// letting callers keep building sibling structure (e.g. a Block keeps
// collecting further statements) even though this particular slot could
// not be filled in. It never appears for a tree with zero diagnostics.
type Bad struct {
	First token.Index
	Last  token.Index
}

func (x *Bad) FirstToken() token.Index { return x.First }
func (x *Bad) LastToken() token.Index  { return x.Last }
func (x *Bad) node()                   {}
func (x *Bad) exprNode()               {}
func (x *Bad) stmtNode()               {}
func (x *Bad) declNode()               {}
