package emitter

import (
	"xlate/pkg/model"
	"xlate/pkg/script"
)

// Bind builds a delegate construction that binds thisArg as the receiver
// of method, via the Script.mkdel helper.
func (e *Emitter) Bind(method, thisArg script.Expr) script.Expr {
	return scriptCall("mkdel", thisArg, method)
}

// BindFirstParameterToThis builds a delegate construction for a delegate
// type whose InstanceMethodOnFirstArgument semantics splice the receiver
// in as the callee's first argument rather than binding `this`, via the
// Script.thisFix helper.
func (e *Emitter) BindFirstParameterToThis(method script.Expr) script.Expr {
	return scriptCall("thisFix", method)
}

// CloneDelegate builds a delegate clone via Script.delegateClone, eliding
// to the operand unless the source and target delegate types differ under
// the importer's semantics — a same-type clone's only observable purpose
// is producing a distinct reference, which script's normal value
// semantics already give a call expression's result, so the runtime call
// would do nothing but waste a helper invocation.
func (e *Emitter) CloneDelegate(operand script.Expr, sourceType, targetType model.Type) script.Expr {
	if e.sameScriptType(sourceType, targetType) {
		return operand
	}
	return scriptCall("delegateClone", operand, typeRef(targetType))
}
