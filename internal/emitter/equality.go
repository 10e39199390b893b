package emitter

import (
	"xlate/pkg/model"
	"xlate/pkg/script"
)

// ReferenceEquals builds a reference-equality comparison between two
// expressions. Strings compare with the native
// `===`/`!==` operator since script strings are already value-compared by
// reference-transparent primitives; a null-typed side dispatches to the
// null-aware isNullOrUndefined/isValue pair instead of a real reference
// check; every other pairing uses the runtime's referenceEquals helper,
// since ordinary object identity in the target runtime is not guaranteed
// to coincide with script `===`.
func (e *Emitter) ReferenceEquals(left, right script.Expr, leftType, rightType model.Type, negate bool) script.Expr {
	op := "==="
	if negate {
		op = "!=="
	}

	if isStringType(leftType) || isStringType(rightType) {
		return &script.Binary{Op: op, Left: left, Right: right}
	}

	if leftType == nil {
		return e.nullSideCheck(right, negate)
	}
	if rightType == nil {
		return e.nullSideCheck(left, negate)
	}

	call := scriptCall("referenceEquals", left, right)
	if !negate {
		return call
	}
	return &script.Unary{Op: "!", Operand: call, Prefix: true}
}

func (e *Emitter) nullSideCheck(operand script.Expr, negate bool) script.Expr {
	name := "isNullOrUndefined"
	if negate {
		name = "isValue"
	}
	return scriptCall(name, operand)
}

func isStringType(t model.Type) bool {
	return t != nil && t.Namespace() == "System" && t.Name() == "String"
}
