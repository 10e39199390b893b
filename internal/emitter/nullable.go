package emitter

import "xlate/pkg/script"

// nullableNamespace and int32Namespace are the typed-helper objects that
// hang alongside the top-level Script object.
const (
	nullableNamespace = "Nullable"
	int32Namespace    = "Int32"
)

// unaryHelperNames maps a source unary operator to its Nullable-lifted
// runtime helper.
var unaryHelperNames = map[string]string{
	"-": "neg",
	"+": "pos",
	"!": "not",
	"~": "cpl",
}

// binaryHelperNames maps a source binary operator to its Nullable-lifted
// runtime helper.
var binaryHelperNames = map[string]string{
	"+":   "add",
	"-":   "sub",
	"*":   "mul",
	"/":   "div",
	"%":   "mod",
	"==":  "eq",
	"!=":  "ne",
	"<":   "lt",
	"<=":  "le",
	">":   "gt",
	">=":  "ge",
	"<<":  "shl",
	">>":  "srs", // sign-replicating (arithmetic) shift right
	">>>": "sru", // sign-unaware (logical) shift right
	"&":   "band",
	"|":   "bor",
	"^":   "xor",
}

// isAlreadyLifted reports whether e is itself the output of a previous lift
// — a call into the Nullable or Int32 runtime helper surface — so that
// lifting it again is recognized as a round trip rather than wrapped a
// second time.
func isAlreadyLifted(e script.Expr) bool {
	call, ok := e.(*script.Call)
	if !ok {
		return false
	}
	member, ok := call.Callee.(*script.Member)
	if !ok {
		return false
	}
	obj, ok := member.Object.(*script.Ident)
	if !ok {
		return false
	}
	return obj.Name == nullableNamespace || obj.Name == int32Namespace
}

// LiftUnary builds the nullable-lifted call for a unary operator, e.g.
// Nullable.neg(operand), unless operand is already a lifted expression, in
// which case it is returned unchanged.
func (e *Emitter) LiftUnary(op string, operand script.Expr) script.Expr {
	if isAlreadyLifted(operand) {
		return operand
	}
	return nsCall(nullableNamespace, unaryHelperNames[op], operand)
}

// LiftBinary builds the nullable-lifted call for a binary operator.
// Integer division and float truncation are recognized specially by the
// caller (via LiftIntegerDivision/LiftFloatTruncation) before reaching
// here, so this never double-wraps a division that has already been given
// its own truncating helper. If left is already a lifted expression —
// e.g. an Int32.div(x, y) produced by a prior lift — it is returned
// unchanged rather than wrapped again.
func (e *Emitter) LiftBinary(op string, left, right script.Expr) script.Expr {
	if isAlreadyLifted(left) {
		return left
	}
	return nsCall(nullableNamespace, binaryHelperNames[op], left, right)
}

// LiftIntegerDivision builds the Int32.div truncating-integer-division
// helper directly, bypassing the generic Nullable.div mapping — plain
// nullable-lifted division would perform floating-point division and round
// only at the call site, double-wrapping the truncation Int32.div already
// performs.
func (e *Emitter) LiftIntegerDivision(left, right script.Expr) script.Expr {
	return nsCall(int32Namespace, "div", left, right)
}

// LiftFloatTruncation builds the Int32.trunc float-truncating conversion
// helper directly, for the same reason as LiftIntegerDivision: the
// truncation is baked into the helper, so it must not also be wrapped by a
// generic unary/binary lift.
func (e *Emitter) LiftFloatTruncation(operand script.Expr) script.Expr {
	return nsCall(int32Namespace, "trunc", operand)
}

// LiftBooleanAnd builds the three-valued (null-propagating) boolean AND.
func (e *Emitter) LiftBooleanAnd(left, right script.Expr) script.Expr {
	return nsCall(nullableNamespace, "and", left, right)
}

// LiftBooleanOr builds the three-valued (null-propagating) boolean OR.
func (e *Emitter) LiftBooleanOr(left, right script.Expr) script.Expr {
	return nsCall(nullableNamespace, "or", left, right)
}

// FromNullable unwraps a nullable value to its underlying primitive via
// Nullable.unbox, unless the operand is already a boolean negation — a
// negation has already forced its operand to a definite boolean, so
// unwrapping it again would be redundant.
func (e *Emitter) FromNullable(operand script.Expr) script.Expr {
	if u, ok := operand.(*script.Unary); ok && u.Op == "!" {
		return operand
	}
	return nsCall(nullableNamespace, "unbox", operand)
}
