// Package rewriter implements the State-Machine Rewriter: it takes a
// structured block that may contain labels, unconditional jumps, and
// exception regions and produces an equivalent block whose control flow is
// expressed as a single dispatching loop per unbreakable region.
package rewriter

import "xlate/pkg/script"

// RewriteBody is the rewriter's single entry point. A body with no labels
// and no jumps anywhere reachable at the statement level is returned
// unchanged; a body that is already in rewritten loop-and-switch form is
// likewise unchanged, since synthesized `$loopN` labels don't count as the
// user-authored labels this check looks for.
func RewriteBody(block *script.Block) *script.Block {
	if !needsRewrite(block.Stmts) {
		return block
	}

	rw := newRewriter()
	vars := newOrderedSet()
	hoisted := hoistStmtList(block.Stmts, vars)

	loopLabel := rw.nextLoopLabel()
	cases := rw.buildFrame(hoisted, 0, loopLabel, nil)

	loop := &script.Labeled{
		Label: loopLabel,
		Stmt: &script.While{
			Test: &script.Literal{Kind: script.LitBool, Bool: true},
			Body: &script.Block{Stmts: []script.Stmt{
				&script.Switch{Discriminant: &script.Ident{Name: stateVarName}, Cases: cases},
			}},
		},
	}

	decl := &script.VarDecl{Decls: []script.VarDeclarator{
		{Name: stateVarName, Init: &script.Literal{Kind: script.LitNumber, Num: 0}},
	}}
	for _, name := range vars.order {
		decl.Decls = append(decl.Decls, script.VarDeclarator{Name: name})
	}

	return &script.Block{Stmts: []script.Stmt{decl, loop}}
}
