// Package script defines the output-side expression and statement tree:
// the tagged variant the Expression Compiler, the Runtime-Call Emitter and
// the State-Machine Rewriter all build and walk. There is deliberately no
// parser for this tree — it is only ever constructed by the core and
// consumed by the (external) output writer.
package script

import (
	"fmt"
	"strings"

	"xlate/pkg/model"
)

// Node is the base interface for every script tree node.
type Node interface {
	String() string
}

// Expr is a script expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a script statement node.
type Stmt interface {
	Node
	stmtNode()
}

// --- Expressions ---

// Ident is a bare script identifier.
type Ident struct{ Name string }

func (*Ident) exprNode()        {}
func (i *Ident) String() string { return i.Name }

// LiteralKind distinguishes the literal expression variants.
type LiteralKind int

const (
	LitNumber LiteralKind = iota
	LitString
	LitBool
	LitNull
	LitRegex
)

// Literal is a number, string, boolean, null, or regex literal.
type Literal struct {
	Kind  LiteralKind
	Num   float64
	Str   string // string value, or regex pattern when Kind == LitRegex
	Flags string // regex flags, only meaningful when Kind == LitRegex
	Bool  bool
}

func (*Literal) exprNode() {}
func (l *Literal) String() string {
	switch l.Kind {
	case LitNumber:
		return fmt.Sprintf("%g", l.Num)
	case LitString:
		return fmt.Sprintf("%q", l.Str)
	case LitBool:
		return fmt.Sprintf("%t", l.Bool)
	case LitNull:
		return "null"
	case LitRegex:
		return "/" + l.Str + "/" + l.Flags
	default:
		return "<literal>"
	}
}

// This is the script `this` expression.
type This struct{}

func (*This) exprNode()        {}
func (*This) String() string   { return "this" }

// TypeReference carries a pointer to a source-language type definition
// rather than a script identifier. It is resolved to a dotted script name
// only when the tree is serialized, via the Importer's semantic record for
// Type — this is what lets the Importer rename a type after an expression
// referring to it has already been built.
type TypeReference struct {
	Type model.Type
}

func (*TypeReference) exprNode() {}
func (t *TypeReference) String() string {
	return fmt.Sprintf("<type %s>", t.Type.Name())
}

// Member is a `.` property access.
type Member struct {
	Object   Expr
	Property string
}

func (*Member) exprNode() {}
func (m *Member) String() string {
	return m.Object.String() + "." + m.Property
}

// Index is a `[...]` computed access.
type Index struct {
	Object Expr
	Key    Expr
}

func (*Index) exprNode() {}
func (ix *Index) String() string {
	return fmt.Sprintf("%s[%s]", ix.Object.String(), ix.Key.String())
}

// Call is a function/method invocation.
type Call struct {
	Callee Expr
	Args   []Expr
}

func (*Call) exprNode() {}
func (c *Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Callee.String(), joinExprs(c.Args))
}

// NewExpr is a `new Callee(Args...)` expression.
type NewExpr struct {
	Callee Expr
	Args   []Expr
}

func (*NewExpr) exprNode() {}
func (n *NewExpr) String() string {
	return fmt.Sprintf("new %s(%s)", n.Callee.String(), joinExprs(n.Args))
}

// Binary is a binary operator expression.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

// Unary is a prefix or postfix unary operator expression.
type Unary struct {
	Op      string
	Operand Expr
	Prefix  bool
}

func (*Unary) exprNode() {}
func (u *Unary) String() string {
	if u.Prefix {
		return u.Op + u.Operand.String()
	}
	return u.Operand.String() + u.Op
}

// Assign is an assignment expression (`=`, `+=`, …).
type Assign struct {
	Op     string
	Target Expr
	Value  Expr
}

func (*Assign) exprNode() {}
func (a *Assign) String() string {
	return fmt.Sprintf("%s %s %s", a.Target.String(), a.Op, a.Value.String())
}

// ArrayLit is an array literal.
type ArrayLit struct{ Elements []Expr }

func (*ArrayLit) exprNode() {}
func (a *ArrayLit) String() string {
	return "[" + joinExprs(a.Elements) + "]"
}

// ObjectProp is one key/value entry in an ObjectLit.
type ObjectProp struct {
	Key   string
	Value Expr
}

// ObjectLit is an object literal.
type ObjectLit struct{ Props []ObjectProp }

func (*ObjectLit) exprNode() {}
func (o *ObjectLit) String() string {
	parts := make([]string, len(o.Props))
	for i, p := range o.Props {
		parts[i] = fmt.Sprintf("%s: %s", p.Key, p.Value.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FuncExpr is a function expression. Its Body is opaque to the rewriter:
// nested functions are never rewritten, only copied verbatim.
type FuncExpr struct {
	Name   string // optional
	Params []string
	Body   *Block
}

func (*FuncExpr) exprNode() {}
func (f *FuncExpr) String() string {
	return fmt.Sprintf("function %s(%s) %s", f.Name, strings.Join(f.Params, ", "), f.Body.String())
}

// Conditional is a `test ? then : else` expression.
type Conditional struct {
	Test Expr
	Then Expr
	Else Expr
}

func (*Conditional) exprNode() {}
func (c *Conditional) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Test.String(), c.Then.String(), c.Else.String())
}

// Comma is a comma expression sequence.
type Comma struct{ Exprs []Expr }

func (*Comma) exprNode() {}
func (c *Comma) String() string {
	return joinExprs(c.Exprs)
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
