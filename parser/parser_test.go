package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/diag"
	"github.com/langcore/parse/parser"
	"github.com/langcore/parse/token"
)

func mustDecl(t *testing.T, tree *ast.Tree, i int) ast.Decl {
	t.Helper()
	require.Greater(t, len(tree.Root.Decls), i, "tree has too few decls")
	return tree.Root.Decls[i]
}

func TestParseEmptySourceHasNoErrors(t *testing.T) {
	tree := parser.Parse([]byte(""))
	require.Empty(t, tree.Errors)
	require.Empty(t, tree.Root.Decls)
}

func TestParseSimpleVarDecl(t *testing.T) {
	tree := parser.Parse([]byte("const x = 1;"))
	require.Empty(t, tree.Errors)
	v, ok := mustDecl(t, tree, 0).(*ast.VarDecl)
	require.True(t, ok, "decl 0 is %T, want *ast.VarDecl", mustDecl(t, tree, 0))
	require.Equal(t, "x", v.Name.Name)
	require.IsType(t, &ast.IntegerLiteral{}, v.Value)
}

func TestParseArithmeticPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3): top InfixOp is '+', whose Rhs
	// is an InfixOp '*'.
	tree := parser.Parse([]byte("const x = 1 + 2 * 3;"))
	v := mustDecl(t, tree, 0).(*ast.VarDecl)
	top, ok := v.Value.(*ast.InfixOp)
	require.True(t, ok, "Value is %T, want *ast.InfixOp", v.Value)
	require.Equal(t, "+", tree.TokenText(top.Op))
	require.IsType(t, &ast.IntegerLiteral{}, top.Lhs)
	rhs, ok := top.Rhs.(*ast.InfixOp)
	require.True(t, ok, "Rhs is %T, want *ast.InfixOp", top.Rhs)
	require.Equal(t, "*", tree.TokenText(rhs.Op))
}

func TestParseBoolOrBindsLooserThanBoolAnd(t *testing.T) {
	// a or b and c should parse as a or (b and c).
	tree := parser.Parse([]byte("const x = a or b and c;"))
	v := mustDecl(t, tree, 0).(*ast.VarDecl)
	top, ok := v.Value.(*ast.InfixOp)
	require.True(t, ok)
	require.Equal(t, "or", tree.TokenText(top.Op))
	rhs, ok := top.Rhs.(*ast.InfixOp)
	require.True(t, ok)
	require.Equal(t, "and", tree.TokenText(rhs.Op))
}

func TestParseDoubleAmpersandIsInvalidAndRecovered(t *testing.T) {
	tree := parser.Parse([]byte("const x = a && b;"))
	require.Len(t, tree.Errors, 1)
	require.Equal(t, diag.InvalidAnd, tree.Errors[0].Kind)
	v := mustDecl(t, tree, 0).(*ast.VarDecl)
	require.IsType(t, &ast.InfixOp{}, v.Value, "should still produce a usable InfixOp despite the InvalidAnd diagnostic")
}

func TestParseSpacedAmpersandsAreTwoOperators(t *testing.T) {
	tree := parser.Parse([]byte("const x = a & &b;"))
	require.Empty(t, tree.Errors)
	v := mustDecl(t, tree, 0).(*ast.VarDecl)
	top, ok := v.Value.(*ast.InfixOp)
	require.True(t, ok)
	require.IsType(t, &ast.PrefixOp{}, top.Rhs, "'&b' is address-of")
}

func TestParseFnDeclWithParamsAndBody(t *testing.T) {
	src := `fn add(a: i32, b: i32) i32 {
		return a + b;
	}`
	tree := parser.Parse([]byte(src))
	require.Empty(t, tree.Errors)
	fn, ok := mustDecl(t, tree, 0).(*ast.FnDecl)
	require.True(t, ok, "decl 0 is %T, want *ast.FnDecl", mustDecl(t, tree, 0))
	require.Equal(t, "add", fn.Proto.Name.Name)
	require.Len(t, fn.Proto.Params, 2)
	require.Equal(t, "a", fn.Proto.Params[0].Name.Name)
	require.Equal(t, "b", fn.Proto.Params[1].Name.Name)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Stmts, 1)
}

func TestParseFnProtoOnlyNoBody(t *testing.T) {
	tree := parser.Parse([]byte("extern fn write(fd: i32) i32;"))
	fn, ok := mustDecl(t, tree, 0).(*ast.FnDecl)
	require.True(t, ok, "decl 0 is %T, want *ast.FnDecl", mustDecl(t, tree, 0))
	require.Nil(t, fn.Body, "fn.Body should be nil for an extern prototype")
	require.NotEqual(t, ast.InvalidIndex, fn.Proto.Extern)
}

func TestParseMissingSemicolonRecoversAndContinues(t *testing.T) {
	src := "const x = 1\nconst y = 2;"
	tree := parser.Parse([]byte(src))
	require.NotEmpty(t, tree.Errors, "expected a diagnostic for the missing semicolon")
	require.Len(t, tree.Root.Decls, 2, "parser should recover and keep going")
	v2, ok := tree.Root.Decls[1].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "y", v2.Name.Name)
}

func TestParseDeclBetweenFieldsDiagnostic(t *testing.T) {
	src := `const S = struct {
		x: i32,
		const y = 1;
		z: i32,
	};`
	tree := parser.Parse([]byte(src))
	var found bool
	for _, d := range tree.Errors {
		if d.Kind == diag.DeclBetweenFields {
			found = true
		}
	}
	require.True(t, found, "expected a DeclBetweenFields diagnostic, got %v", tree.Errors)
}

func TestParseFieldAfterDeclIsNotFlagged(t *testing.T) {
	// decl-then-field is not the trigger (the documented asymmetry): only a
	// decl seen *after* a field should fire.
	src := `const S = struct {
		const y = 1;
		x: i32,
	};`
	tree := parser.Parse([]byte(src))
	for _, d := range tree.Errors {
		require.NotEqual(t, diag.DeclBetweenFields, d.Kind, "unexpected DeclBetweenFields for decl-before-field")
	}
}

func TestParseUnattachedDocCommentAtEof(t *testing.T) {
	tree := parser.Parse([]byte("/// dangling\n"))
	require.Len(t, tree.Errors, 1)
	require.Equal(t, diag.UnattachedDocComment, tree.Errors[0].Kind)
	require.Len(t, tree.Root.DanglingDocComments, 1)
}

func TestParseDocCommentAttachesToFollowingDecl(t *testing.T) {
	tree := parser.Parse([]byte("/// doc\nconst x = 1;"))
	require.Empty(t, tree.Errors)
	v := mustDecl(t, tree, 0).(*ast.VarDecl)
	require.NotNil(t, v.Doc, "doc comment did not attach")
}

func TestParseIfElseExpression(t *testing.T) {
	tree := parser.Parse([]byte("const x = if (a) 1 else 2;"))
	v := mustDecl(t, tree, 0).(*ast.VarDecl)
	ifExpr, ok := v.Value.(*ast.If)
	require.True(t, ok, "Value is %T, want *ast.If", v.Value)
	require.NotEqual(t, ast.InvalidIndex, ifExpr.ElseTok)
	require.NotNil(t, ifExpr.ElseBody)
}

func TestParseWhileWithPayload(t *testing.T) {
	src := "fn f() void { while (it.next()) |item| { use(item); } }"
	tree := parser.Parse([]byte(src))
	require.Empty(t, tree.Errors)
	fn := mustDecl(t, tree, 0).(*ast.FnDecl)
	w, ok := fn.Body.Stmts[0].(*ast.While)
	require.True(t, ok, "stmt 0 is %T, want *ast.While", fn.Body.Stmts[0])
	require.NotNil(t, w.Payload)
	require.Equal(t, "item", w.Payload.Name.Name)
}

func TestParseSwitchWithElseAndRange(t *testing.T) {
	src := `fn f() void {
		switch (x) {
			0...9 => {},
			else => {},
		}
	}`
	tree := parser.Parse([]byte(src))
	require.Empty(t, tree.Errors)
	fn := mustDecl(t, tree, 0).(*ast.FnDecl)
	sw, ok := fn.Body.Stmts[0].(*ast.Switch)
	require.True(t, ok, "stmt 0 is %T, want *ast.Switch", fn.Body.Stmts[0])
	require.Len(t, sw.Cases, 2)
	rangeCase, ok := sw.Cases[0].(*ast.SwitchCase)
	require.True(t, ok, "case 0 is %T, want *ast.SwitchCase", sw.Cases[0])
	require.NotEqual(t, ast.InvalidIndex, rangeCase.Items[0].Ellipsis, "expected a range item with Ellipsis set")
	require.IsType(t, &ast.SwitchElse{}, sw.Cases[1])
}

func TestParseAssignStatement(t *testing.T) {
	src := "fn f() void { x += 1; }"
	tree := parser.Parse([]byte(src))
	fn := mustDecl(t, tree, 0).(*ast.FnDecl)
	assign, ok := fn.Body.Stmts[0].(*ast.AssignStmt)
	require.True(t, ok, "stmt 0 is %T, want *ast.AssignStmt", fn.Body.Stmts[0])
	require.Equal(t, "+=", tree.TokenText(assign.Op))
}

func TestParseMaxDepthGuardsAgainstDeepNesting(t *testing.T) {
	src := "const x = "
	for i := 0; i < 50; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < 50; i++ {
		src += ")"
	}
	src += ";"
	tree := parser.Parse([]byte(src), parser.WithMaxDepth(10))
	require.NotEmpty(t, tree.Errors, "expected a diagnostic once max depth was exceeded")
}

func TestParseDiagnosticsLimitStopsAccumulating(t *testing.T) {
	src := ""
	for i := 0; i < 50; i++ {
		src += "const;"
	}
	tree := parser.Parse([]byte(src), parser.WithDiagnosticsLimit(5))
	require.LessOrEqual(t, len(tree.Errors), 5)
}

func TestParseFilenameIsNotAppliedByParserDirectly(t *testing.T) {
	// WithFilename is only recorded on the Parser; Parse itself must still
	// succeed and not store the filename on Tree.
	tree := parser.Parse([]byte("const x = 1;"), parser.WithFilename("main.zig"))
	require.Empty(t, tree.Errors)
}

func TestParseRootEofTokenAlwaysSet(t *testing.T) {
	tree := parser.Parse([]byte("const x = 1;"))
	require.NotEqual(t, ast.InvalidIndex, tree.Root.EofToken)
	require.Equal(t, token.Eof, tree.Tokens.Kind(tree.Root.EofToken))
}

func TestParseTryWrapsEntireBoolOrChain(t *testing.T) {
	// try a or b must parse as try (a or b), not (try a) or b: the
	// top-level try precedence level sits above boolOr and wraps the
	// whole chain, distinct from the deeper prefix-level try.
	tree := parser.Parse([]byte("const x = try a or b;"))
	require.Empty(t, tree.Errors)
	v := mustDecl(t, tree, 0).(*ast.VarDecl)
	outer, ok := v.Value.(*ast.PrefixOp)
	require.True(t, ok, "Value is %T, want *ast.PrefixOp ('try' wrapping the whole chain)", v.Value)
	require.Equal(t, "try", tree.TokenText(outer.Op))
	inner, ok := outer.Child.(*ast.InfixOp)
	require.True(t, ok, "PrefixOp.Child is %T, want *ast.InfixOp ('a or b')", outer.Child)
	require.Equal(t, "or", tree.TokenText(inner.Op))
}

func TestParseTryIsRightAssociativeAndRepeatable(t *testing.T) {
	tree := parser.Parse([]byte("const x = try try a;"))
	require.Empty(t, tree.Errors)
	v := mustDecl(t, tree, 0).(*ast.VarDecl)
	outer, ok := v.Value.(*ast.PrefixOp)
	require.True(t, ok)
	require.Equal(t, "try", tree.TokenText(outer.Op))
	inner, ok := outer.Child.(*ast.PrefixOp)
	require.True(t, ok, "nested Child is %T, want another *ast.PrefixOp", outer.Child)
	require.Equal(t, "try", tree.TokenText(inner.Op))
	require.IsType(t, &ast.Ident{}, inner.Child)
}

func TestParseSessionIDStampedOnDiagnostics(t *testing.T) {
	tree := parser.Parse([]byte("const;"), parser.WithSessionID("job-42"))
	require.NotEmpty(t, tree.Errors)
	for _, d := range tree.Errors {
		require.Equal(t, "job-42", d.SessionID)
	}
}

func TestParseWithoutSessionIDLeavesItEmpty(t *testing.T) {
	tree := parser.Parse([]byte("const;"))
	require.NotEmpty(t, tree.Errors)
	require.Empty(t, tree.Errors[0].SessionID)
}
