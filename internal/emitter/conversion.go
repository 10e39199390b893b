package emitter

import (
	"xlate/pkg/errors"
	"xlate/pkg/model"
	"xlate/pkg/script"
)

// TypeIs builds a script `instanceof`-style runtime type test. Elides to
// `true` when the operand's static type is already identical to the target
// type under the importer's semantics.
func (e *Emitter) TypeIs(operand script.Expr, operandType, target model.Type) script.Expr {
	if e.sameScriptType(operandType, target) {
		return &script.Literal{Kind: script.LitBool, Bool: true}
	}
	return scriptCall("isInstanceOfType", operand, typeRef(target))
}

// TryDowncast builds the runtime helper that downcasts operand to target,
// yielding null on failure instead of throwing.
func (e *Emitter) TryDowncast(operand script.Expr, operandType, target model.Type) script.Expr {
	if e.sameScriptType(operandType, target) {
		return operand
	}
	return scriptCall("safeCast", operand, typeRef(target))
}

// Downcast builds the runtime helper that downcasts operand to target,
// throwing on failure. Elides both when the source and target types are
// already identical, and — when OmitDowncasts is set — unconditionally,
// since the caller has asserted the cast always succeeds.
func (e *Emitter) Downcast(operand script.Expr, operandType, target model.Type) script.Expr {
	if e.sameScriptType(operandType, target) || e.config.OmitDowncasts {
		return operand
	}
	return scriptCall("cast", operand, typeRef(target))
}

// Upcast builds a widening conversion from operand's static type to
// target. A widening reference conversion is a no-op on the script side —
// the runtime value doesn't change shape — so Upcast always elides to the
// operand, except that upcasting from the character type is illegal:
// script represents characters as plain numbers, so there is nothing to
// widen to, and the call is a mistake in the input program reported as a
// diagnostic.
func (e *Emitter) Upcast(operand script.Expr, operandType, target model.Type, report func(errors.Severity, errors.Code, string)) script.Expr {
	if isCharacterType(operandType) {
		report(errors.SeverityError, errors.CodeCharacterUpcast,
			"cannot upcast the character type "+operandType.Name()+" to "+target.Name())
	}
	return operand
}

// isCharacterType identifies the source language's character type by its
// well-known script name, since the model package carries no dedicated
// Kind for it (characters are an ordinary struct type at the model level).
func isCharacterType(t model.Type) bool {
	return t.Namespace() == "System" && t.Name() == "Char"
}
