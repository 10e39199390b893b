package emitter

import (
	"xlate/pkg/model"
	"xlate/pkg/script"
)

// AllocateSingleDimensionalArray builds a single-dimensional array
// allocation, which uses the native Array constructor directly rather
// than a runtime helper — the target runtime's native array already has
// the right shape and semantics for a single rank.
func (e *Emitter) AllocateSingleDimensionalArray(length script.Expr) script.Expr {
	return &script.NewExpr{Callee: &script.Ident{Name: "Array"}, Args: []script.Expr{length}}
}

// AllocateMultiDimensionalArray builds a multi-dimensional array
// allocation via Script.multidimArray, since the native array type has no
// notion of rank beyond one dimension.
func (e *Emitter) AllocateMultiDimensionalArray(dimensions []script.Expr) script.Expr {
	return scriptCall("multidimArray", dimensions...)
}

// GetMultiDimensional builds a multi-dimensional array element read via
// Script.arrayGet.
func (e *Emitter) GetMultiDimensional(array script.Expr, indices []script.Expr) script.Expr {
	return scriptCall("arrayGet", append([]script.Expr{array}, indices...)...)
}

// SetMultiDimensional builds a multi-dimensional array element write via
// Script.arraySet.
func (e *Emitter) SetMultiDimensional(array script.Expr, indices []script.Expr, value script.Expr) script.Expr {
	args := append([]script.Expr{array}, indices...)
	args = append(args, value)
	return scriptCall("arraySet", args...)
}

// DefaultValue builds the Script.getDefaultValue call producing a value
// type's zero value, used wherever the source language implicitly
// default-initializes a local or field.
func (e *Emitter) DefaultValue(t model.Type) script.Expr {
	return scriptCall("getDefaultValue", typeRef(t))
}
