package emitter

import (
	"xlate/pkg/model"
	"xlate/pkg/script"
)

// rootObjectRef is the deferred reference every erased-identity type
// reflection canonicalizes to.
var rootObjectRef = &script.Ident{Name: "Object"}

// TypeOf builds the expression reflecting t as a runtime type descriptor,
// with typeArgs supplying its generic arguments, if any. An open generic
// type or an interface canonicalizes to the root object reference rather
// than a real descriptor.
func (e *Emitter) TypeOf(t model.Type, typeArgs []model.Type) script.Expr {
	if canonicalizesToRootObject(t) || (t.IsGeneric() && len(typeArgs) == 0) {
		return rootObjectRef
	}
	if len(typeArgs) == 0 {
		return typeRef(t)
	}
	return e.makeGenericType(t, typeArgs)
}

// InstantiateType builds a runtime type descriptor for use as a value,
// e.g. as the argument to a reflection-style helper. Parameterized types
// whose script semantics do not erase generic arguments are wrapped in
// makeGenericType; every other reference is the raw type definition.
func (e *Emitter) InstantiateType(t model.Type, typeArgs []model.Type) script.Expr {
	return e.TypeOf(t, typeArgs)
}

// InstantiateTypeForUseAsGenericArgument mirrors InstantiateType but is the
// entry point callers use when the resulting descriptor itself becomes one
// of an outer type's generic arguments — kept as its own named entry point
// so a future differing elision rule for nested generic-argument descriptors
// has a home without disturbing InstantiateType's callers.
func (e *Emitter) InstantiateTypeForUseAsGenericArgument(t model.Type, typeArgs []model.Type) script.Expr {
	return e.InstantiateType(t, typeArgs)
}

// GetTypeParameterName resolves a source-language type parameter to the
// runtime expression carrying its script name at the current call site
// (the reserved name the importer assigned it).
func (e *Emitter) GetTypeParameterName(p model.TypeParameter) script.Expr {
	return &script.Ident{Name: e.imp.GetTypeParameterName(p)}
}

// makeGenericType wraps t's raw definition and its instantiated type
// arguments in the runtime's generic-type constructor, unless t's own
// semantics erase generic arguments entirely (IgnoreGenericArguments), in
// which case the raw definition alone is returned.
func (e *Emitter) makeGenericType(t model.Type, typeArgs []model.Type) script.Expr {
	sem := e.imp.GetTypeSemantics(t)
	if sem.IgnoreGenericArguments {
		return typeRef(t)
	}
	args := make([]script.Expr, len(typeArgs))
	for i, arg := range typeArgs {
		args[i] = e.InstantiateTypeForUseAsGenericArgument(arg, nil)
	}
	return scriptCall("makeGenericType", append([]script.Expr{typeRef(t)}, args...)...)
}
