package ast

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise the returned Visitor is
// used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order, starting at node. It is
// grounded in the teacher's ast/walk.go, generalized over this package's
// node set.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Root:
		if n.ContainerDoc != nil {
			Walk(v, n.ContainerDoc)
		}
		for _, d := range n.Decls {
			Walk(v, d)
		}

	case *TestDecl:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		Walk(v, n.Body)
	case *TopLevelComptime:
		Walk(v, n.Body)
	case *Use:
		Walk(v, n.Expr)
	case *VarDecl:
		Walk(v, n.Name)
		if n.TypeExpr != nil {
			Walk(v, n.TypeExpr)
		}
		if n.AlignExpr != nil {
			Walk(v, n.AlignExpr)
		}
		if n.SectionExpr != nil {
			Walk(v, n.SectionExpr)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *FnProto:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		for _, p := range n.Params {
			if p.Name != nil {
				Walk(v, p.Name)
			}
			if p.Type != nil {
				Walk(v, p.Type)
			}
		}
		if n.AlignExpr != nil {
			Walk(v, n.AlignExpr)
		}
		if n.SectionExpr != nil {
			Walk(v, n.SectionExpr)
		}
		if n.CallConv != nil {
			Walk(v, n.CallConv)
		}
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
	case *FnDecl:
		Walk(v, n.Proto)
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *ContainerField:
		Walk(v, n.Name)
		if n.Type != nil {
			Walk(v, n.Type)
		}
		if n.AlignExpr != nil {
			Walk(v, n.AlignExpr)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ContainerDecl:
		if n.Arg != nil {
			Walk(v, n.Arg)
		}
		for _, f := range n.FieldsAndDecls {
			Walk(v, f)
		}
	case *ErrorSetDecl:
		for _, name := range n.Names {
			Walk(v, name)
		}

	case *InfixOp:
		Walk(v, n.Lhs)
		Walk(v, n.Rhs)
	case *Catch:
		Walk(v, n.Lhs)
		if n.Payload != nil {
			Walk(v, n.Payload)
		}
		Walk(v, n.Rhs)
	case *PrefixOp:
		Walk(v, n.Child)
	case *PtrTypeOp:
		if n.Sentinel != nil {
			Walk(v, n.Sentinel)
		}
		if n.ArrayLen != nil {
			Walk(v, n.ArrayLen)
		}
		if n.AlignExpr != nil {
			Walk(v, n.AlignExpr)
		}
		Walk(v, n.Child)
	case *OptionalType:
		Walk(v, n.Child)
	case *GroupedExpression:
		Walk(v, n.Inner)
	case *FieldAccess:
		Walk(v, n.Lhs)
		Walk(v, n.Name)
	case *Deref:
		Walk(v, n.Lhs)
	case *UnwrapOptional:
		Walk(v, n.Lhs)
	case *Index:
		Walk(v, n.Lhs)
		Walk(v, n.IndexExpr)
	case *Slice:
		Walk(v, n.Lhs)
		if n.Start != nil {
			Walk(v, n.Start)
		}
		if n.End != nil {
			Walk(v, n.End)
		}
		if n.Sentinel != nil {
			Walk(v, n.Sentinel)
		}
	case *Call:
		Walk(v, n.Callee)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *BuiltinCall:
		Walk(v, n.Name)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *FieldInitializer:
		Walk(v, n.Name)
		Walk(v, n.Value)
	case *StructInitializer:
		if n.Type != nil {
			Walk(v, n.Type)
		}
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *StructInitializerDot:
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *ArrayInitializer:
		Walk(v, n.Type)
		for _, e := range n.Elements {
			Walk(v, e)
		}
	case *ArrayInitializerDot:
		for _, e := range n.Elements {
			Walk(v, e)
		}
	case *FnLiteral:
		Walk(v, n.Proto)
		Walk(v, n.Body)
	case *EnumLiteral:
		Walk(v, n.Name)
	case *AnyFrameType:
		if n.ChildType != nil {
			Walk(v, n.ChildType)
		}

	case *Block:
		if n.Label != nil {
			Walk(v, n.Label)
		}
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *Payload:
		Walk(v, n.Name)
	case *PointerIndexPayload:
		Walk(v, n.Value)
		if n.Index != nil {
			Walk(v, n.Index)
		}
	case *If:
		Walk(v, n.Cond)
		if n.Payload != nil {
			Walk(v, n.Payload)
		}
		Walk(v, n.Body)
		if n.ElsePayload != nil {
			Walk(v, n.ElsePayload)
		}
		if n.ElseBody != nil {
			Walk(v, n.ElseBody)
		}
	case *While:
		if n.Label != nil {
			Walk(v, n.Label)
		}
		Walk(v, n.Cond)
		if n.Payload != nil {
			Walk(v, n.Payload)
		}
		if n.Cont != nil {
			Walk(v, n.Cont)
		}
		Walk(v, n.Body)
		if n.ElsePayload != nil {
			Walk(v, n.ElsePayload)
		}
		if n.ElseBody != nil {
			Walk(v, n.ElseBody)
		}
	case *For:
		if n.Label != nil {
			Walk(v, n.Label)
		}
		for _, a := range n.Args {
			Walk(v, a)
		}
		if n.Payload != nil {
			Walk(v, n.Payload)
		}
		Walk(v, n.Body)
		if n.ElseBody != nil {
			Walk(v, n.ElseBody)
		}
	case *Switch:
		Walk(v, n.Cond)
		for _, c := range n.Cases {
			Walk(v, c)
		}
	case *SwitchCase:
		for _, item := range n.Items {
			Walk(v, item.Lo)
			if item.Hi != nil {
				Walk(v, item.Hi)
			}
		}
		if n.Payload != nil {
			Walk(v, n.Payload)
		}
		Walk(v, n.Body)
	case *SwitchElse:
		if n.Payload != nil {
			Walk(v, n.Payload)
		}
		Walk(v, n.Body)
	case *Defer:
		if n.Payload != nil {
			Walk(v, n.Payload)
		}
		Walk(v, n.Expr)
	case *Comptime:
		Walk(v, n.Expr)
	case *Nosuspend:
		Walk(v, n.Expr)
	case *Suspend:
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *ControlFlowExpression:
		if n.Label != nil {
			Walk(v, n.Label)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ExprStmt:
		Walk(v, n.X)
	case *AssignStmt:
		Walk(v, n.Lhs)
		Walk(v, n.Rhs)
	case *Asm:
		Walk(v, n.Template)
		for _, o := range n.Outputs {
			Walk(v, o)
		}
		for _, i := range n.Inputs {
			Walk(v, i)
		}
	case *AsmOutput:
		if n.Symbolic != nil {
			Walk(v, n.Symbolic)
		}
		if n.Type != nil {
			Walk(v, n.Type)
		}
		if n.Name != nil {
			Walk(v, n.Name)
		}
	case *AsmInput:
		if n.Symbolic != nil {
			Walk(v, n.Symbolic)
		}
		Walk(v, n.Expr)

	case *Ident, *Bad, *DocComment,
		*IntegerLiteral, *FloatLiteral, *CharLiteral, *StringLiteral,
		*MultilineStringLiteral, *BoolLiteral, *NullLiteral,
		*UndefinedLiteral, *UnreachableLiteral, *VarType:
		// leaf nodes, nothing to walk

	default:
		panic("ast: Walk: unhandled node type")
	}
}

// inspector adapts a func(Node) bool to the Visitor interface, mirroring
// the teacher's Inspect helper.
type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order, calling f for each node.
// Walk stops descending into a subtree as soon as f returns false for its
// root.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
