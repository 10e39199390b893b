package rewriter

import (
	"xlate/pkg/errors"
	"xlate/pkg/script"
)

// frameInfo describes one already-built enclosing machine, consulted when
// a jump's target state isn't one of the current machine's own cases.
type frameInfo struct {
	owned     map[int]bool
	loopLabel string
}

// tryStates collects the three state numbers reserved for a Try node's
// body, catch and finally sub-machines, plus the state the enclosing
// machine resumes at once the try statement as a whole has run to
// completion.
type tryStates struct {
	body, catch, finally, after int
}

// buildFrame is the recursive heart of the rewriter. It turns stmts (the
// statement list belonging to one unbreakable region — the whole body, or
// one try/catch/finally block) into the switch cases of that region's own
// dispatch loop. entryState is the state number stmts' first section is
// given; ownLoopLabel is the label of the while loop these cases live
// inside; ancestors lists every enclosing frame, outermost first, so a
// jump leaving this region can find the right loop to continue.
func (rw *rewriter) buildFrame(stmts []script.Stmt, entryState int, ownLoopLabel string, ancestors []frameInfo) []script.SwitchCase {
	owned := map[int]bool{entryState: true}
	tries := map[*script.Try]tryStates{}
	rw.collectOwned(stmts, owned, tries)

	self := frameInfo{owned: owned, loopLabel: ownLoopLabel}
	resolve := func(target int) string {
		if owned[target] {
			return ownLoopLabel
		}
		for i := len(ancestors) - 1; i >= 0; i-- {
			if ancestors[i].owned[target] {
				return ancestors[i].loopLabel
			}
		}
		// Malformed input: a jump to a label no enclosing machine owns
		// (an undefined label) is an internal error.
		errors.Panic("rewriter: goto targets state %d, which no enclosing machine defines", target)
		return ""
	}
	transitionTo := func(target int) []script.Stmt {
		return []script.Stmt{
			assignState(target),
			&script.Continue{Label: resolve(target)},
		}
	}

	var cases []script.SwitchCase
	current := entryState
	var body []script.Stmt
	flush := func(trailer []script.Stmt) {
		cases = append(cases, script.SwitchCase{
			Tests: []script.Expr{&script.Literal{Kind: script.LitNumber, Num: float64(current)}},
			Body:  append(body, trailer...),
		})
		body = nil
	}

	childAncestors := append(append([]frameInfo{}, ancestors...), self)

	for i := 0; i < len(stmts); i++ {
		s := stmts[i]
		labels, inner := unwrapLabels(s)
		if len(labels) > 0 {
			flush(transitionTo(rw.stateOf(labels[0])))
			current = rw.stateOf(labels[0])
			s = inner
		}

		if t, ok := s.(*script.Try); ok {
			ts := tries[t]
			body = append(body, rw.buildTryRegion(t, ts, childAncestors)...)
			body = append(body, transitionTo(ts.after)...)
			flush(nil)
			current = ts.after
			continue
		}

		body = append(body, rewriteGotosIn(s, rw, resolve))
	}
	flush([]script.Stmt{assignState(sentinelState), &script.Break{Label: ownLoopLabel}})
	cases = append(cases, script.SwitchCase{Body: []script.Stmt{&script.Break{Label: ownLoopLabel}}})
	return cases
}

func assignState(n int) script.Stmt {
	return &script.ExprStmt{Expr: &script.Assign{
		Op:     "=",
		Target: &script.Ident{Name: stateVarName},
		Value:  &script.Literal{Kind: script.LitNumber, Num: float64(n)},
	}}
}

// unwrapLabels peels a chain of directly-nested Labeled wrappers (`a: b:
// stmt;`) down to the first non-Labeled statement, returning every label
// in the chain — a label immediately followed by another label collapses,
// both sharing one state number.
func unwrapLabels(s script.Stmt) ([]string, script.Stmt) {
	var labels []string
	for {
		l, ok := s.(*script.Labeled)
		if !ok {
			return labels, s
		}
		labels = append(labels, l.Label)
		s = l.Stmt
	}
}

// collectOwned scans stmts (without crossing into a nested Try's own
// body/catch/finally, or into a nested function) recording every state
// number this frame's own switch must carry a case for: one per label
// directly reachable in the region, and one "after" state per Try
// statement at which the enclosing region resumes once that try has run.
func (rw *rewriter) collectOwned(stmts []script.Stmt, owned map[int]bool, tries map[*script.Try]tryStates) {
	for _, s := range stmts {
		rw.collectOwnedStmt(s, owned, tries)
	}
}

func (rw *rewriter) collectOwnedStmt(s script.Stmt, owned map[int]bool, tries map[*script.Try]tryStates) {
	labels, inner := unwrapLabels(s)
	for _, l := range labels {
		owned[rw.stateOf(l)] = true
	}
	s = inner

	switch s := s.(type) {
	case *script.Try:
		ts := tryStates{body: rw.allocState(), after: rw.allocState()}
		if s.HasCatch {
			ts.catch = rw.allocState()
		}
		if s.HasFinally {
			ts.finally = rw.allocState()
		}
		tries[s] = ts
		owned[ts.after] = true
	case *script.Block:
		rw.collectOwned(s.Stmts, owned, tries)
	case *script.If:
		rw.collectOwnedStmt(s.Then, owned, tries)
		if s.Else != nil {
			rw.collectOwnedStmt(s.Else, owned, tries)
		}
	case *script.For:
		rw.collectOwnedStmt(s.Body, owned, tries)
	case *script.ForIn:
		rw.collectOwnedStmt(s.Body, owned, tries)
	case *script.While:
		rw.collectOwnedStmt(s.Body, owned, tries)
	case *script.DoWhile:
		rw.collectOwnedStmt(s.Body, owned, tries)
	case *script.Switch:
		for _, c := range s.Cases {
			rw.collectOwned(c.Body, owned, tries)
		}
	}
}

// buildTryRegion produces the replacement for a Try statement: each of
// body/catch/finally that actually needs rewriting (contains a label or
// goto of its own) is replaced by its own `$state1 = entry; $loopN:
// while (true) { switch ($state1) { ... } }` construct sharing the outer
// state variable — catch and finally blocks are themselves rewritten as
// independent state machines that share the outer state variable; regions
// with nothing to rewrite are copied through untouched. The real
// Try node is preserved either way, so actual exception propagation and
// finally-on-the-way-out semantics are exactly the host runtime's own —
// a goto inside Body jumping to a label outside the try is just a labeled
// continue that happens to be issued from inside a try block, which already
// runs any finally on its way out.
func (rw *rewriter) buildTryRegion(t *script.Try, ts tryStates, ancestors []frameInfo) []script.Stmt {
	out := &script.Try{HasCatch: t.HasCatch, CatchParam: t.CatchParam, HasFinally: t.HasFinally}
	out.Body = rw.buildRegionBlock(t.Body, ts.body, ancestors)
	if t.HasCatch {
		out.CatchBody = rw.buildRegionBlock(t.CatchBody, ts.catch, ancestors)
	}
	if t.HasFinally {
		out.FinallyBody = rw.buildRegionBlock(t.FinallyBody, ts.finally, ancestors)
	}
	return []script.Stmt{out}
}

// buildRegionBlock wraps one region of a try statement (body, catch, or
// finally) in its own dispatch loop if it needs one, or copies it through
// unchanged otherwise.
func (rw *rewriter) buildRegionBlock(block *script.Block, entryState int, ancestors []frameInfo) *script.Block {
	if !needsRewrite(block.Stmts) {
		return block
	}
	loopLabel := rw.nextLoopLabel()
	cases := rw.buildFrame(block.Stmts, entryState, loopLabel, ancestors)
	return &script.Block{Stmts: []script.Stmt{
		assignState(entryState),
		&script.Labeled{
			Label: loopLabel,
			Stmt: &script.While{
				Test: &script.Literal{Kind: script.LitBool, Bool: true},
				Body: &script.Block{Stmts: []script.Stmt{
					&script.Switch{Discriminant: &script.Ident{Name: stateVarName}, Cases: cases},
				}},
			},
		},
	}}
}

// rewriteGotosIn recursively replaces every Goto reachable in s (without
// crossing into a nested function) with the two-statement transition
// sequence resolve names a loop for, leaving every other statement shape
// untouched. It does not descend into Try — a Try that is one of the
// statements buildFrame iterates is handled by buildFrame's own
// per-statement loop, and a Try nested inside an If/For/While/etc body
// this generic walker visits is returned untouched, gotos inside it included.
func rewriteGotosIn(s script.Stmt, rw *rewriter, resolve func(int) string) script.Stmt {
	switch s := s.(type) {
	case *script.Goto:
		target := rw.stateOf(s.Label)
		return &script.Block{Stmts: []script.Stmt{
			assignState(target),
			&script.Continue{Label: resolve(target)},
		}}
	case *script.Block:
		out := make([]script.Stmt, len(s.Stmts))
		for i, st := range s.Stmts {
			out[i] = rewriteGotosIn(st, rw, resolve)
		}
		return &script.Block{Stmts: out}
	case *script.If:
		then := rewriteGotosIn(s.Then, rw, resolve)
		var els script.Stmt
		if s.Else != nil {
			els = rewriteGotosIn(s.Else, rw, resolve)
		}
		return &script.If{Test: s.Test, Then: then, Else: els}
	case *script.For:
		return &script.For{Init: s.Init, Test: s.Test, Update: s.Update, Body: rewriteGotosIn(s.Body, rw, resolve)}
	case *script.ForIn:
		return &script.ForIn{IsDecl: s.IsDecl, Name: s.Name, Object: s.Object, Body: rewriteGotosIn(s.Body, rw, resolve)}
	case *script.While:
		return &script.While{Test: s.Test, Body: rewriteGotosIn(s.Body, rw, resolve)}
	case *script.DoWhile:
		return &script.DoWhile{Body: rewriteGotosIn(s.Body, rw, resolve), Test: s.Test}
	case *script.Switch:
		cases := make([]script.SwitchCase, len(s.Cases))
		for i, c := range s.Cases {
			cs := make([]script.Stmt, len(c.Body))
			for j, st := range c.Body {
				cs[j] = rewriteGotosIn(st, rw, resolve)
			}
			cases[i] = script.SwitchCase{Tests: c.Tests, Body: cs}
		}
		return &script.Switch{Discriminant: s.Discriminant, Cases: cases}
	default:
		// ExprStmt, VarDecl, Return, Throw, Break, Continue, FuncDecl,
		// Labeled (a nested label mid-statement is outside this package's
		// supported shapes, see DESIGN.md), Try (handled by the caller).
		return s
	}
}
