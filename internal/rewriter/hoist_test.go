package rewriter

import (
	"testing"

	"xlate/pkg/script"
)

func TestHoistStmtListTurnsVarDeclIntoAssignment(t *testing.T) {
	vars := newOrderedSet()
	stmts := []script.Stmt{
		&script.VarDecl{Decls: []script.VarDeclarator{
			{Name: "x", Init: &script.Literal{Kind: script.LitNumber, Num: 1}},
		}},
	}

	out := hoistStmtList(stmts, vars)

	if len(out) != 1 {
		t.Fatalf("got %d statements, want 1", len(out))
	}
	exprStmt, ok := out[0].(*script.ExprStmt)
	if !ok {
		t.Fatalf("got %#v, want an ExprStmt", out[0])
	}
	assign, ok := exprStmt.Expr.(*script.Assign)
	if !ok || assign.Target.(*script.Ident).Name != "x" {
		t.Fatalf("got %#v, want an assignment to x", exprStmt.Expr)
	}
	if len(vars.order) != 1 || vars.order[0] != "x" {
		t.Fatalf("got hoisted vars %v, want [x]", vars.order)
	}
}

func TestHoistStmtListDropsUninitializedDeclarator(t *testing.T) {
	vars := newOrderedSet()
	stmts := []script.Stmt{
		&script.VarDecl{Decls: []script.VarDeclarator{{Name: "y"}}},
	}

	out := hoistStmtList(stmts, vars)

	if len(out) != 0 {
		t.Fatalf("got %d statements, want 0 (no initializer to keep)", len(out))
	}
	if len(vars.order) != 1 || vars.order[0] != "y" {
		t.Fatalf("got hoisted vars %v, want [y]", vars.order)
	}
}

func TestHoistStmtListRecursesIntoBlocksAndIf(t *testing.T) {
	vars := newOrderedSet()
	inner := &script.VarDecl{Decls: []script.VarDeclarator{
		{Name: "z", Init: &script.Literal{Kind: script.LitNumber, Num: 2}},
	}}
	stmts := []script.Stmt{
		&script.If{
			Test: &script.Ident{Name: "cond"},
			Then: &script.Block{Stmts: []script.Stmt{inner}},
		},
	}

	hoistStmtList(stmts, vars)

	if len(vars.order) != 1 || vars.order[0] != "z" {
		t.Fatalf("got hoisted vars %v, want [z]", vars.order)
	}
}

func TestHoistStmtListDoesNotCrossIntoNestedFunction(t *testing.T) {
	vars := newOrderedSet()
	nested := &script.VarDecl{Decls: []script.VarDeclarator{
		{Name: "inner", Init: &script.Literal{Kind: script.LitNumber, Num: 3}},
	}}
	stmts := []script.Stmt{
		&script.FuncDecl{Name: "f", Body: &script.Block{Stmts: []script.Stmt{nested}}},
	}

	out := hoistStmtList(stmts, vars)

	if len(vars.order) != 0 {
		t.Fatalf("got hoisted vars %v, want none — nested function bodies are opaque", vars.order)
	}
	if _, ok := out[0].(*script.FuncDecl); !ok {
		t.Fatalf("got %#v, want the FuncDecl copied through unchanged", out[0])
	}
}

func TestOrderedSetPreservesFirstSeenOrderAndDedupes(t *testing.T) {
	s := newOrderedSet()
	s.add("a")
	s.add("b")
	s.add("a")

	if len(s.order) != 2 || s.order[0] != "a" || s.order[1] != "b" {
		t.Fatalf("got order %v, want [a b]", s.order)
	}
}
