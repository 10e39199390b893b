package script

import (
	"fmt"
	"strings"
)

// Block is a brace-delimited sequence of statements.
type Block struct{ Stmts []Stmt }

func (*Block) stmtNode() {}
func (b *Block) String() string {
	parts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// ExprStmt wraps an expression evaluated for effect.
type ExprStmt struct{ Expr Expr }

func (*ExprStmt) stmtNode()        {}
func (e *ExprStmt) String() string { return e.Expr.String() + ";" }

// VarDeclarator is one `name` or `name = init` entry of a VarDecl.
type VarDeclarator struct {
	Name string
	Init Expr // nil when the declarator has no initializer
}

// VarDecl is one or more name/optional-initializer pairs under a single
// `var` keyword.
type VarDecl struct{ Decls []VarDeclarator }

func (*VarDecl) stmtNode() {}
func (v *VarDecl) String() string {
	parts := make([]string, len(v.Decls))
	for i, d := range v.Decls {
		if d.Init != nil {
			parts[i] = fmt.Sprintf("%s = %s", d.Name, d.Init.String())
		} else {
			parts[i] = d.Name
		}
	}
	return "var " + strings.Join(parts, ", ") + ";"
}

// If is an if/else statement; Else is nil when there is no else branch.
type If struct {
	Test Expr
	Then Stmt
	Else Stmt
}

func (*If) stmtNode() {}
func (i *If) String() string {
	if i.Else != nil {
		return fmt.Sprintf("if (%s) %s else %s", i.Test.String(), i.Then.String(), i.Else.String())
	}
	return fmt.Sprintf("if (%s) %s", i.Test.String(), i.Then.String())
}

// ForInit is the init clause of a For loop: either a VarDecl or a bare
// expression statement. Exactly one of the two fields is non-nil, or both
// are nil when the loop has no init clause.
type ForInit struct {
	Decl *VarDecl
	Expr Expr
}

// For is a C-style for loop. Test and Update are nil when omitted.
type For struct {
	Init   *ForInit
	Test   Expr
	Update Expr
	Body   Stmt
}

func (*For) stmtNode() {}
func (f *For) String() string {
	initStr := ""
	if f.Init != nil {
		if f.Init.Decl != nil {
			initStr = strings.TrimSuffix(f.Init.Decl.String(), ";")
		} else if f.Init.Expr != nil {
			initStr = f.Init.Expr.String()
		}
	}
	testStr, updateStr := "", ""
	if f.Test != nil {
		testStr = f.Test.String()
	}
	if f.Update != nil {
		updateStr = f.Update.String()
	}
	return fmt.Sprintf("for (%s; %s; %s) %s", initStr, testStr, updateStr, f.Body.String())
}

// ForIn is a `for (var x in object)` / `for (x in object)` loop.
type ForIn struct {
	IsDecl bool
	Name   string
	Object Expr
	Body   Stmt
}

func (*ForIn) stmtNode() {}
func (f *ForIn) String() string {
	kw := ""
	if f.IsDecl {
		kw = "var "
	}
	return fmt.Sprintf("for (%s%s in %s) %s", kw, f.Name, f.Object.String(), f.Body.String())
}

// While is a `while` loop.
type While struct {
	Test Expr
	Body Stmt
}

func (*While) stmtNode() {}
func (w *While) String() string {
	return fmt.Sprintf("while (%s) %s", w.Test.String(), w.Body.String())
}

// DoWhile is a `do ... while` loop.
type DoWhile struct {
	Body Stmt
	Test Expr
}

func (*DoWhile) stmtNode() {}
func (d *DoWhile) String() string {
	return fmt.Sprintf("do %s while (%s);", d.Body.String(), d.Test.String())
}

// SwitchCase is one labeled case group. Tests is empty for the default
// case. Statements fall through to the next case when the body does not
// end in break/return/throw/continue — the tree does not enforce this, it
// is the compiler's responsibility, matching the target runtime.
type SwitchCase struct {
	Tests []Expr
	Body  []Stmt
}

// Switch is a switch statement over labeled case groups with fall-through.
type Switch struct {
	Discriminant Expr
	Cases        []SwitchCase
}

func (*Switch) stmtNode() {}
func (s *Switch) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "switch (%s) { ", s.Discriminant.String())
	for _, c := range s.Cases {
		if len(c.Tests) == 0 {
			b.WriteString("default: ")
		}
		for _, t := range c.Tests {
			fmt.Fprintf(&b, "case %s: ", t.String())
		}
		for _, st := range c.Body {
			b.WriteString(st.String())
			b.WriteString(" ")
		}
	}
	b.WriteString("}")
	return b.String()
}

// Try is a try statement with zero-or-one catch (with optional binding
// name) and zero-or-one finally.
type Try struct {
	Body         *Block
	HasCatch     bool
	CatchParam   string // empty when the catch has no binding (ES2019-style)
	CatchBody    *Block
	HasFinally   bool
	FinallyBody  *Block
}

func (*Try) stmtNode() {}
func (t *Try) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "try %s", t.Body.String())
	if t.HasCatch {
		if t.CatchParam != "" {
			fmt.Fprintf(&b, " catch (%s) %s", t.CatchParam, t.CatchBody.String())
		} else {
			fmt.Fprintf(&b, " catch %s", t.CatchBody.String())
		}
	}
	if t.HasFinally {
		fmt.Fprintf(&b, " finally %s", t.FinallyBody.String())
	}
	return b.String()
}

// Throw is a throw statement.
type Throw struct{ Expr Expr }

func (*Throw) stmtNode()        {}
func (t *Throw) String() string { return "throw " + t.Expr.String() + ";" }

// Return is a return statement; Expr is nil for a bare `return;`.
type Return struct{ Expr Expr }

func (*Return) stmtNode() {}
func (r *Return) String() string {
	if r.Expr == nil {
		return "return;"
	}
	return "return " + r.Expr.String() + ";"
}

// Break is a break statement, optionally targeting a label.
type Break struct{ Label string }

func (*Break) stmtNode() {}
func (b *Break) String() string {
	if b.Label != "" {
		return "break " + b.Label + ";"
	}
	return "break;"
}

// Continue is a continue statement, optionally targeting a label.
type Continue struct{ Label string }

func (*Continue) stmtNode() {}
func (c *Continue) String() string {
	if c.Label != "" {
		return "continue " + c.Label + ";"
	}
	return "continue;"
}

// Labeled attaches a label to a statement (the target of break/continue/goto).
type Labeled struct {
	Label string
	Stmt  Stmt
}

func (*Labeled) stmtNode() {}
func (l *Labeled) String() string {
	return l.Label + ": " + l.Stmt.String()
}

// Goto is an unconditional jump to a label. It exists only in the
// structured tree the State-Machine Rewriter consumes; it never survives
// into a rewritten body, and the target runtime has no such statement.
type Goto struct{ Label string }

func (*Goto) stmtNode()        {}
func (g *Goto) String() string { return "goto " + g.Label + ";" }

// FuncDecl is a named function declaration statement.
type FuncDecl struct {
	Name   string
	Params []string
	Body   *Block
}

func (*FuncDecl) stmtNode() {}
func (f *FuncDecl) String() string {
	return fmt.Sprintf("function %s(%s) %s", f.Name, strings.Join(f.Params, ", "), f.Body.String())
}
