package rewriter

import "xlate/pkg/script"

// orderedSet records hoisted variable names in first-seen order, so the
// synthesized declaration statement lists them the way a reader scanning
// the original body top to bottom would expect.
type orderedSet struct {
	seen  map[string]bool
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]bool{}}
}

func (o *orderedSet) add(name string) {
	if o.seen[name] {
		return
	}
	o.seen[name] = true
	o.order = append(o.order, name)
}

// hoistStmtList rewrites every var declaration reachable in stmts (without
// crossing into a nested function body) into a plain assignment at the
// point it originally initialized, recording the bare name in vars so the
// caller can declare it once, up front, alongside the state variable — all
// declarations collapse into a single declaration statement preceding the
// outer loop, and their initializers become ordinary assignments in place.
func hoistStmtList(stmts []script.Stmt, vars *orderedSet) []script.Stmt {
	out := make([]script.Stmt, 0, len(stmts))
	for _, s := range stmts {
		if v, ok := s.(*script.VarDecl); ok {
			out = append(out, declToAssigns(v, vars)...)
			continue
		}
		out = append(out, hoistStmt(s, vars))
	}
	return out
}

func declToAssigns(v *script.VarDecl, vars *orderedSet) []script.Stmt {
	var out []script.Stmt
	for _, d := range v.Decls {
		vars.add(d.Name)
		if d.Init != nil {
			out = append(out, &script.ExprStmt{Expr: &script.Assign{
				Op:     "=",
				Target: &script.Ident{Name: d.Name},
				Value:  d.Init,
			}})
		}
	}
	return out
}

// declToAssignExpr folds a VarDecl's initializers into a single comma
// expression for positions (a for-loop's init clause) that must remain a
// single expression rather than a statement list. Returns nil if none of
// the declarators carry an initializer.
func declToAssignExpr(v *script.VarDecl, vars *orderedSet) script.Expr {
	var exprs []script.Expr
	for _, d := range v.Decls {
		vars.add(d.Name)
		if d.Init != nil {
			exprs = append(exprs, &script.Assign{
				Op:     "=",
				Target: &script.Ident{Name: d.Name},
				Value:  d.Init,
			})
		}
	}
	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		return &script.Comma{Exprs: exprs}
	}
}

// hoistStmt transforms a single statement in place. It never crosses into
// a FuncExpr or FuncDecl body — those are nested functions and opaque to
// the whole rewriter, not only to the state-machine construction.
func hoistStmt(s script.Stmt, vars *orderedSet) script.Stmt {
	switch s := s.(type) {
	case *script.Block:
		return &script.Block{Stmts: hoistStmtList(s.Stmts, vars)}
	case *script.If:
		then := hoistStmt(s.Then, vars)
		var els script.Stmt
		if s.Else != nil {
			els = hoistStmt(s.Else, vars)
		}
		return &script.If{Test: s.Test, Then: then, Else: els}
	case *script.For:
		init := s.Init
		if init != nil && init.Decl != nil {
			init = &script.ForInit{Expr: declToAssignExpr(init.Decl, vars)}
		}
		return &script.For{Init: init, Test: s.Test, Update: s.Update, Body: hoistStmt(s.Body, vars)}
	case *script.ForIn:
		if s.IsDecl {
			vars.add(s.Name)
		}
		return &script.ForIn{IsDecl: false, Name: s.Name, Object: s.Object, Body: hoistStmt(s.Body, vars)}
	case *script.While:
		return &script.While{Test: s.Test, Body: hoistStmt(s.Body, vars)}
	case *script.DoWhile:
		return &script.DoWhile{Body: hoistStmt(s.Body, vars), Test: s.Test}
	case *script.Switch:
		cases := make([]script.SwitchCase, len(s.Cases))
		for i, c := range s.Cases {
			cases[i] = script.SwitchCase{Tests: c.Tests, Body: hoistStmtList(c.Body, vars)}
		}
		return &script.Switch{Discriminant: s.Discriminant, Cases: cases}
	case *script.Try:
		// A region whose statements hoisting leaves unchanged keeps its
		// original block, so the machine builder can copy it through as is.
		region := func(b *script.Block) *script.Block {
			stmts := hoistStmtList(b.Stmts, vars)
			if len(stmts) != len(b.Stmts) {
				return &script.Block{Stmts: stmts}
			}
			for i := range stmts {
				if stmts[i] != b.Stmts[i] {
					return &script.Block{Stmts: stmts}
				}
			}
			return b
		}
		t := &script.Try{Body: region(s.Body), HasCatch: s.HasCatch, CatchParam: s.CatchParam, HasFinally: s.HasFinally}
		if s.HasCatch {
			t.CatchBody = region(s.CatchBody)
		}
		if s.HasFinally {
			t.FinallyBody = region(s.FinallyBody)
		}
		return t
	case *script.Labeled:
		return &script.Labeled{Label: s.Label, Stmt: hoistStmt(s.Stmt, vars)}
	default:
		// ExprStmt, Return, Throw, Break, Continue, Goto, FuncDecl: leaves.
		return s
	}
}
