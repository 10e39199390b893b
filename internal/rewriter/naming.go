package rewriter

import (
	"fmt"

	"xlate/pkg/script"
)

// stateVarName is the single discriminant variable every state machine
// synthesized from a given body shares: inner machines (a try's body,
// catch, or finally) never get their own state variable, only their own
// loop.
const stateVarName = "$state1"

// sentinelState is the value stateVarName takes when a machine's own
// region has run to completion with no further jump pending: a terminal
// state assignment of a sentinel negative value paired with a break of the
// loop label.
const sentinelState = -1

// rewriter carries the state shared across an entire RewriteBody call: the
// single state-number counter all nested machines draw from, the loop-name
// counter, and the label → state-number table built lazily as labels are
// first encountered (so a forward goto to a label not yet visited still
// resolves to the number it will eventually get).
type rewriter struct {
	nextState  int
	loopCount  int
	labelState map[string]int
}

func newRewriter() *rewriter {
	return &rewriter{nextState: 1, labelState: map[string]int{}}
}

func (rw *rewriter) allocState() int {
	s := rw.nextState
	rw.nextState++
	return s
}

func (rw *rewriter) nextLoopLabel() string {
	rw.loopCount++
	return fmt.Sprintf("$loop%d", rw.loopCount)
}

// stateOf returns the state number reserved for a label, allocating one on
// first sight. Labels are a single flat namespace across the whole body
// (a goto may target a label inside or outside the try it appears in), so
// this table is never scoped to a single frame.
func (rw *rewriter) stateOf(label string) int {
	if s, ok := rw.labelState[label]; ok {
		return s
	}
	s := rw.allocState()
	rw.labelState[label] = s
	return s
}

// isSynthesizedLabel reports whether a label was produced by this package
// rather than authored in the source body — used by needsRewrite so a
// second pass over already-rewritten output is a no-op.
func isSynthesizedLabel(label string) bool {
	var n int
	_, err := fmt.Sscanf(label, "$loop%d", &n)
	return err == nil
}

// needsRewrite reports whether stmts contains any user-authored label or
// goto reachable without crossing into a nested function body. A body
// with neither has no control flow this package touches; a body whose only
// labels are this package's own `$loopN` wrappers is already in rewritten
// form.
func needsRewrite(stmts []script.Stmt) bool {
	for _, s := range stmts {
		if stmtNeedsRewrite(s) {
			return true
		}
	}
	return false
}

func stmtNeedsRewrite(s script.Stmt) bool {
	switch s := s.(type) {
	case *script.Goto:
		return true
	case *script.Labeled:
		if !isSynthesizedLabel(s.Label) {
			return true
		}
		return stmtNeedsRewrite(s.Stmt)
	case *script.Block:
		return needsRewrite(s.Stmts)
	case *script.If:
		if stmtNeedsRewrite(s.Then) {
			return true
		}
		return s.Else != nil && stmtNeedsRewrite(s.Else)
	case *script.For:
		return stmtNeedsRewrite(s.Body)
	case *script.ForIn:
		return stmtNeedsRewrite(s.Body)
	case *script.While:
		return stmtNeedsRewrite(s.Body)
	case *script.DoWhile:
		return stmtNeedsRewrite(s.Body)
	case *script.Switch:
		for _, c := range s.Cases {
			if needsRewrite(c.Body) {
				return true
			}
		}
		return false
	case *script.Try:
		if needsRewrite(s.Body.Stmts) {
			return true
		}
		if s.HasCatch && needsRewrite(s.CatchBody.Stmts) {
			return true
		}
		if s.HasFinally && needsRewrite(s.FinallyBody.Stmts) {
			return true
		}
		return false
	default:
		// ExprStmt, VarDecl, Return, Throw, Break, Continue, FuncDecl: none
		// of these can themselves carry a label or goto, and FuncDecl's
		// body is a nested function, opaque to the rewriter.
		return false
	}
}
