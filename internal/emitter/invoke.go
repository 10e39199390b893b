package emitter

import "xlate/pkg/script"

// ApplyConstructor builds a reflection-style construction: invoking a
// runtime-held constructor function against an argument array, used where
// the constructor to call is itself a value rather than a compile-time
// name (e.g. Activator.CreateInstance-style reflection).
func (e *Emitter) ApplyConstructor(ctor, argsArray script.Expr) script.Expr {
	return scriptCall("applyConstructor", ctor, argsArray)
}

// ShallowCopy builds a shallow-copy of a value (MemberwiseClone-style
// reflection).
func (e *Emitter) ShallowCopy(operand script.Expr) script.Expr {
	return scriptCall("shallowCopy", operand)
}

// Coalesce builds the null-coalescing operator's runtime call.
func (e *Emitter) Coalesce(left, right script.Expr) script.Expr {
	return scriptCall("coalesce", left, right)
}
