package emitter

import (
	"xlate/pkg/model"
	"xlate/pkg/script"
)

// scriptCall builds a call to one of the fixed top-level helpers on the
// Script object.
func scriptCall(name string, args ...script.Expr) *script.Call {
	return nsCall(runtimeNamespace, name, args...)
}

// nsCall builds a call to a typed helper hung off a well-known namespace
// object (Nullable, Int32, Exception) rather than the top-level Script
// object.
func nsCall(namespace, name string, args ...script.Expr) *script.Call {
	return &script.Call{
		Callee: &script.Member{Object: &script.Ident{Name: namespace}, Property: name},
		Args:   args,
	}
}

// typeRef wraps a model type for deferred resolution to its dotted script
// name at tree-serialization time.
func typeRef(t model.Type) *script.TypeReference {
	return &script.TypeReference{Type: t}
}

// sameScriptType reports whether a and b resolve to the same dotted script
// name under the same assembly — the identity test the elision rules for
// typeIs/tryDowncast/downcast and cloneDelegate key on.
func (e *Emitter) sameScriptType(a, b model.Type) bool {
	if a == b {
		return true
	}
	if a.Assembly() != b.Assembly() {
		return false
	}
	aSem, bSem := e.imp.GetTypeSemantics(a), e.imp.GetTypeSemantics(b)
	return aSem.DottedScriptName == bSem.DottedScriptName
}

// canonicalizesToRootObject reports whether t's type-reflection surface
// canonicalizes to the runtime's root object reference rather than a real
// type descriptor: an interface (its type identity is erased at runtime).
func canonicalizesToRootObject(t model.Type) bool {
	return t.Kind() == model.KindInterface
}
