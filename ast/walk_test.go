package ast

import (
	"testing"

	"github.com/langcore/parse/token"
)

// buildInfix constructs `x + y` by hand: an InfixOp over two Idents.
func buildInfix() *InfixOp {
	return &InfixOp{
		Lhs: &Ident{Tok: 0, Name: "x"},
		Op:  1,
		Rhs: &Ident{Tok: 2, Name: "y"},
	}
}

func TestInspectVisitsEveryNode(t *testing.T) {
	tree := buildInfix()
	var visited []Node
	Inspect(tree, func(n Node) bool {
		visited = append(visited, n)
		return true
	})
	if len(visited) != 3 {
		t.Fatalf("Inspect visited %d nodes, want 3 (InfixOp, Ident, Ident); got %#v", len(visited), visited)
	}
	if visited[0] != Node(tree) {
		t.Errorf("first visited node should be the root InfixOp")
	}
}

func TestInspectStopsDescendingWhenFFalse(t *testing.T) {
	tree := buildInfix()
	var visited []Node
	Inspect(tree, func(n Node) bool {
		visited = append(visited, n)
		return false // never descend
	})
	if len(visited) != 1 {
		t.Fatalf("Inspect visited %d nodes after returning false, want 1 (root only)", len(visited))
	}
}

func TestWalkNilNodeIsNoOp(t *testing.T) {
	called := false
	Inspect(nil, func(n Node) bool {
		called = true
		return true
	})
	if called {
		t.Fatal("Inspect called f for a nil node")
	}
}

func TestWalkOptionalChildrenSkippedWhenNil(t *testing.T) {
	// VarDecl with every optional Expr field left nil must not panic and
	// must only visit Name.
	v := &VarDecl{
		MutTok:      0,
		ThreadLocal: InvalidIndex,
		Name:        &Ident{Tok: 1, Name: "x"},
		Semi:        2,
		Extern:      InvalidIndex,
		ExternLib:   InvalidIndex,
		Export:      InvalidIndex,
	}
	count := 0
	Inspect(v, func(n Node) bool {
		count++
		return true
	})
	if count != 2 { // VarDecl itself, then Name
		t.Fatalf("Inspect visited %d nodes for a bare VarDecl, want 2", count)
	}
}

func TestWalkPanicsOnUnknownNodeType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Walk did not panic on an unregistered node type")
		}
	}()
	Walk(inspector(func(Node) bool { return true }), fakeNode{})
}

type fakeNode struct{}

func (fakeNode) FirstToken() token.Index { return 0 }
func (fakeNode) LastToken() token.Index  { return 0 }
func (fakeNode) node()                   {}
