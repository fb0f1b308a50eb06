package ast

import "github.com/langcore/parse/token"

// Block is `[label:] { stmt* }`.
type Block struct {
	Label  *Ident // nil if unlabeled
	Colon  token.Index
	Lbrace token.Index
	Stmts  []Stmt
	Rbrace token.Index
}

func (x *Block) FirstToken() token.Index {
	if x.Label != nil {
		return x.Label.Tok
	}
	return x.Lbrace
}
func (x *Block) LastToken() token.Index { return x.Rbrace }
func (x *Block) node()                  {}
func (x *Block) exprNode()              {}
func (x *Block) stmtNode()              {}

// Payload is `|name|` or `|*name|`, the capture clause of if/while/for/
// catch/switch-case branches.
type Payload struct {
	Pipe1 token.Index
	Star  token.Index // InvalidIndex unless `|*name|`
	Name  *Ident
	Pipe2 token.Index
}

func (x *Payload) FirstToken() token.Index { return x.Pipe1 }
func (x *Payload) LastToken() token.Index  { return x.Pipe2 }
func (x *Payload) node()                   {}

// PointerPayload is the single-capture form used by if/while over optionals
// and error unions; distinct type from Payload only for parser ergonomics,
// same shape.
type PointerPayload = Payload

// PointerIndexPayload is `|value, index|` or `|*value, index|`, the
// two-capture form used by `for` loops.
type PointerIndexPayload struct {
	Pipe1 token.Index
	Star  token.Index // InvalidIndex unless `|*value, index|`
	Value *Ident
	Comma token.Index // InvalidIndex if no index capture
	Index *Ident      // nil if no index capture
	Pipe2 token.Index
}

func (x *PointerIndexPayload) FirstToken() token.Index { return x.Pipe1 }
func (x *PointerIndexPayload) LastToken() token.Index  { return x.Pipe2 }
func (x *PointerIndexPayload) node()                   {}

// If is `if (cond) [|payload|] body [else [|payload|] elseBody]`, used in
// both statement and expression position.
type If struct {
	IfTok     token.Index
	Lparen    token.Index
	Cond      Expr
	Rparen    token.Index
	Payload   *Payload // nil if absent
	Body      Expr     // Block, or any expression when used as an expression
	ElseTok   token.Index // InvalidIndex if no else clause
	ElsePayload *Payload  // nil if absent; only valid for error-union conditions
	ElseBody  Expr     // nil if no else clause
}

func (x *If) FirstToken() token.Index { return x.IfTok }
func (x *If) LastToken() token.Index {
	if x.ElseBody != nil {
		return x.ElseBody.LastToken()
	}
	return x.Body.LastToken()
}
func (x *If) node()     {}
func (x *If) exprNode() {}
func (x *If) stmtNode() {}

// While is `[label:] [inline] while (cond) [|payload|] [: (cont)] body
// [else [|payload|] elseBody]`.
type While struct {
	Label     *Ident
	LabelColon token.Index
	Inline    token.Index // InvalidIndex if absent
	WhileTok  token.Index
	Lparen    token.Index
	Cond      Expr
	Rparen    token.Index
	Payload   *Payload
	ContColon token.Index // InvalidIndex if no continue expression
	Cont      Expr        // nil if absent
	Body      Expr
	ElseTok   token.Index
	ElsePayload *Payload
	ElseBody  Expr
}

func (x *While) FirstToken() token.Index {
	if x.Label != nil {
		return x.Label.Tok
	}
	if x.Inline != InvalidIndex {
		return x.Inline
	}
	return x.WhileTok
}
func (x *While) LastToken() token.Index {
	if x.ElseBody != nil {
		return x.ElseBody.LastToken()
	}
	return x.Body.LastToken()
}
func (x *While) node()     {}
func (x *While) exprNode() {}
func (x *While) stmtNode() {}

// ForArg is one `expr` operand of a (possibly multi-operand) `for`.
type ForArg struct {
	Expr Expr
}

// For is `[label:] [inline] for (arg, arg, ...) |payload| body [else
// elseBody]` (spec.md's For permits one or more comma-separated range/slice
// operands paired with a matching capture count in Payload).
type For struct {
	Label      *Ident
	LabelColon token.Index
	Inline     token.Index // InvalidIndex if absent
	ForTok     token.Index
	Lparen     token.Index
	Args       []Expr
	Rparen     token.Index
	Payload    *PointerIndexPayload
	Body       Expr
	ElseTok    token.Index
	ElseBody   Expr
}

func (x *For) FirstToken() token.Index {
	if x.Label != nil {
		return x.Label.Tok
	}
	if x.Inline != InvalidIndex {
		return x.Inline
	}
	return x.ForTok
}
func (x *For) LastToken() token.Index {
	if x.ElseBody != nil {
		return x.ElseBody.LastToken()
	}
	return x.Body.LastToken()
}
func (x *For) node()     {}
func (x *For) exprNode() {}
func (x *For) stmtNode() {}

// SwitchCaseItem is one value (or range `lo...hi`) in a switch-case's
// comma-separated item list.
type SwitchCaseItem struct {
	Lo       Expr
	Ellipsis token.Index // InvalidIndex unless this item is a range
	Hi       Expr         // nil unless this item is a range
}

// SwitchCase is `item, item, ... => [|payload|] expr` (a non-`else` case).
type SwitchCase struct {
	Items   []SwitchCaseItem
	Arrow   token.Index
	Payload *Payload
	Body    Expr
}

func (c *SwitchCase) FirstToken() token.Index {
	if len(c.Items) > 0 {
		return c.Items[0].Lo.FirstToken()
	}
	return c.Arrow
}
func (c *SwitchCase) LastToken() token.Index { return c.Body.LastToken() }
func (c *SwitchCase) node()                  {}

// SwitchElse is the catch-all `else => [|payload|] expr` case.
type SwitchElse struct {
	ElseTok token.Index
	Arrow   token.Index
	Payload *Payload
	Body    Expr
}

func (c *SwitchElse) FirstToken() token.Index { return c.ElseTok }
func (c *SwitchElse) LastToken() token.Index  { return c.Body.LastToken() }
func (c *SwitchElse) node()                   {}

// Switch is `switch (expr) { case, case, ..., [else-case] }`. Cases is
// mixed *SwitchCase / *SwitchElse in source order; at most one SwitchElse
// may appear, enforced by the parser rather than the type system.
type Switch struct {
	SwitchTok token.Index
	Lparen    token.Index
	Cond      Expr
	Rparen    token.Index
	Lbrace    token.Index
	Cases     []Node
	Rbrace    token.Index
}

func (x *Switch) FirstToken() token.Index { return x.SwitchTok }
func (x *Switch) LastToken() token.Index  { return x.Rbrace }
func (x *Switch) node()                   {}
func (x *Switch) exprNode()               {}
func (x *Switch) stmtNode()               {}

// Defer is `defer expr;` or `errdefer [|payload|] expr;`.
type Defer struct {
	Tok     token.Index // `defer` or `errdefer`
	IsError bool
	Payload *Ident // non-nil only for `errdefer |err|`
	Expr    Expr
	Semi    token.Index
}

func (x *Defer) FirstToken() token.Index { return x.Tok }
func (x *Defer) LastToken() token.Index  { return x.Semi }
func (x *Defer) node()                   {}
func (x *Defer) stmtNode()               {}

// Comptime is `comptime expr` used as a statement (wrapping e.g. a block or
// var decl); the top-level container form is TopLevelComptime.
type Comptime struct {
	Tok  token.Index
	Expr Expr
}

func (x *Comptime) FirstToken() token.Index { return x.Tok }
func (x *Comptime) LastToken() token.Index  { return x.Expr.LastToken() }
func (x *Comptime) node()                   {}
func (x *Comptime) exprNode()               {}
func (x *Comptime) stmtNode()               {}

// Nosuspend is `nosuspend expr`.
type Nosuspend struct {
	Tok  token.Index
	Expr Expr
}

func (x *Nosuspend) FirstToken() token.Index { return x.Tok }
func (x *Nosuspend) LastToken() token.Index  { return x.Expr.LastToken() }
func (x *Nosuspend) node()                   {}
func (x *Nosuspend) exprNode()               {}

// Suspend is `suspend [expr]`, where expr is usually another Block.
type Suspend struct {
	Tok  token.Index
	Body Expr // nil for bare `suspend;`
}

func (x *Suspend) FirstToken() token.Index { return x.Tok }
func (x *Suspend) LastToken() token.Index {
	if x.Body != nil {
		return x.Body.LastToken()
	}
	return x.Tok
}
func (x *Suspend) node()     {}
func (x *Suspend) exprNode() {}
func (x *Suspend) stmtNode() {}

// ControlFlowKind distinguishes the three labeled jump expressions.
type ControlFlowKind uint8

const (
	ControlFlowBreak ControlFlowKind = iota
	ControlFlowContinue
	ControlFlowReturn
)

// ControlFlowExpression is `break [:label] [expr]`, `continue [:label]`, or
// `return [expr]`.
type ControlFlowExpression struct {
	Tok   token.Index
	Kind  ControlFlowKind
	Colon token.Index // InvalidIndex if no label (break/continue only)
	Label *Ident      // nil if no label
	Value Expr        // nil if absent
}

func (x *ControlFlowExpression) FirstToken() token.Index { return x.Tok }
func (x *ControlFlowExpression) LastToken() token.Index {
	if x.Value != nil {
		return x.Value.LastToken()
	}
	if x.Label != nil {
		return x.Label.Tok
	}
	return x.Tok
}
func (x *ControlFlowExpression) node()     {}
func (x *ControlFlowExpression) exprNode() {}
func (x *ControlFlowExpression) stmtNode() {}

// ExprStmt wraps a bare expression used as a statement (e.g. a discarded
// call), terminated by `;`.
type ExprStmt struct {
	X    Expr
	Semi token.Index
}

func (x *ExprStmt) FirstToken() token.Index { return x.X.FirstToken() }
func (x *ExprStmt) LastToken() token.Index  { return x.Semi }
func (x *ExprStmt) node()                   {}
func (x *ExprStmt) stmtNode()               {}

// AssignStmt is `lhs op= rhs`, where op= is one of the compound-assignment
// operators. Semi is InvalidIndex when the node appears in expression
// position (spec.md's AssignExpr, e.g. a switch-case body) rather than as a
// `;`-terminated statement; the caller that owns the terminator sets Semi.
type AssignStmt struct {
	Lhs  Expr
	Op   token.Index
	Rhs  Expr
	Semi token.Index
}

func (x *AssignStmt) FirstToken() token.Index { return x.Lhs.FirstToken() }
func (x *AssignStmt) LastToken() token.Index {
	if x.Semi != InvalidIndex {
		return x.Semi
	}
	return x.Rhs.LastToken()
}
func (x *AssignStmt) node()                   {}
func (x *AssignStmt) stmtNode()               {}
func (x *AssignStmt) exprNode()               {}

// AsmOutput is one `[-> Type]`/`(name)` output operand of an Asm block.
type AsmOutput struct {
	Lbracket  token.Index
	Symbolic  *Ident
	Rbracket  token.Index
	Constraint token.Index // string literal
	Lparen    token.Index
	Arrow     token.Index // InvalidIndex unless a `-> Type` result
	Type      TypeExpr    // nil unless Arrow is set
	Name      *Ident      // nil when Arrow is set
	Rparen    token.Index
}

func (x *AsmOutput) FirstToken() token.Index { return x.Lbracket }
func (x *AsmOutput) LastToken() token.Index  { return x.Rparen }
func (x *AsmOutput) node()                   {}

// AsmInput is one `[symbolic] "constraint" (expr)` input operand.
type AsmInput struct {
	Lbracket   token.Index
	Symbolic   *Ident
	Rbracket   token.Index
	Constraint token.Index
	Lparen     token.Index
	Expr       Expr
	Rparen     token.Index
}

func (x *AsmInput) FirstToken() token.Index { return x.Lbracket }
func (x *AsmInput) LastToken() token.Index  { return x.Rparen }
func (x *AsmInput) node()                   {}

// Asm is `asm [volatile] ( template [: outputs [: inputs [: clobbers]]] )`.
type Asm struct {
	AsmTok   token.Index
	Volatile token.Index // InvalidIndex if absent
	Lparen   token.Index
	Template Expr // string literal (or concatenation thereof)
	Outputs  []*AsmOutput
	Inputs   []*AsmInput
	Clobbers []token.Index // string-literal tokens
	Rparen   token.Index
}

func (x *Asm) FirstToken() token.Index { return x.AsmTok }
func (x *Asm) LastToken() token.Index  { return x.Rparen }
func (x *Asm) node()                   {}
func (x *Asm) exprNode()               {}
