package script

import "testing"

func TestBlockString(t *testing.T) {
	b := &Block{Stmts: []Stmt{
		&ExprStmt{Expr: &Ident{Name: "a"}},
		&Return{Expr: &Ident{Name: "a"}},
	}}
	if got := b.String(); got != "{ a; return a; }" {
		t.Fatalf("got %q, want %q", got, "{ a; return a; }")
	}
}

func TestVarDeclStringWithAndWithoutInit(t *testing.T) {
	v := &VarDecl{Decls: []VarDeclarator{
		{Name: "x", Init: &Literal{Kind: LitNumber, Num: 1}},
		{Name: "y"},
	}}
	if got := v.String(); got != "var x = 1, y;" {
		t.Fatalf("got %q, want %q", got, "var x = 1, y;")
	}
}

func TestIfStringWithElse(t *testing.T) {
	i := &If{
		Test: &Ident{Name: "cond"},
		Then: &Return{Expr: &Ident{Name: "a"}},
		Else: &Return{Expr: &Ident{Name: "b"}},
	}
	if got := i.String(); got != "if (cond) return a; else return b;" {
		t.Fatalf("got %q, want %q", got, "if (cond) return a; else return b;")
	}
}

func TestLabeledAndGotoString(t *testing.T) {
	l := &Labeled{Label: "retry", Stmt: &ExprStmt{Expr: &Ident{Name: "a"}}}
	if got := l.String(); got != "retry: a;" {
		t.Fatalf("got %q, want %q", got, "retry: a;")
	}

	g := &Goto{Label: "retry"}
	if got := g.String(); got != "goto retry;" {
		t.Fatalf("got %q, want %q", got, "goto retry;")
	}
}

func TestBreakAndContinueStringWithAndWithoutLabel(t *testing.T) {
	if got := (&Break{}).String(); got != "break;" {
		t.Fatalf("got %q, want %q", got, "break;")
	}
	if got := (&Break{Label: "outer"}).String(); got != "break outer;" {
		t.Fatalf("got %q, want %q", got, "break outer;")
	}
	if got := (&Continue{Label: "outer"}).String(); got != "continue outer;" {
		t.Fatalf("got %q, want %q", got, "continue outer;")
	}
}

func TestSwitchStringWithDefaultCase(t *testing.T) {
	s := &Switch{
		Discriminant: &Ident{Name: "x"},
		Cases: []SwitchCase{
			{Tests: []Expr{&Literal{Kind: LitNumber, Num: 1}}, Body: []Stmt{&Break{}}},
			{Body: []Stmt{&Break{}}},
		},
	}
	want := "switch (x) { case 1: break; default: break; }"
	if got := s.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTryStringWithCatchAndFinally(t *testing.T) {
	tr := &Try{
		Body:        &Block{Stmts: []Stmt{&ExprStmt{Expr: &Ident{Name: "a"}}}},
		HasCatch:    true,
		CatchParam:  "e",
		CatchBody:   &Block{Stmts: []Stmt{&Throw{Expr: &Ident{Name: "e"}}}},
		HasFinally:  true,
		FinallyBody: &Block{Stmts: []Stmt{&ExprStmt{Expr: &Ident{Name: "cleanup"}}}},
	}
	want := "try { a; } catch (e) { throw e; } finally { cleanup; }"
	if got := tr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
