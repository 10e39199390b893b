package emitter

import (
	"xlate/pkg/model"
	"xlate/pkg/script"
)

// BaseCall builds a base-virtual invocation: Type.prototype.method.call(this,
// args…). fixedArgs are the statically known leading arguments. When the target method's semantics expand a trailing
// params parameter (expandParams), restArgs supplies the individually known
// trailing arguments (spread directly into the .call argument list) OR, when
// the rest of the arguments are not statically known as a fixed list,
// restArray supplies the dynamic array to concatenate and the call falls
// back to .apply.
func (e *Emitter) BaseCall(baseType model.Type, methodName string, fixedArgs []script.Expr, expandParams bool, restArgs []script.Expr, restArray script.Expr) script.Expr {
	protoMethod := &script.Member{
		Object:   &script.Member{Object: typeRef(baseType), Property: "prototype"},
		Property: methodName,
	}

	if !expandParams {
		return &script.Call{
			Callee: &script.Member{Object: protoMethod, Property: "call"},
			Args:   append([]script.Expr{&script.This{}}, fixedArgs...),
		}
	}

	if restArray == nil {
		return &script.Call{
			Callee: &script.Member{Object: protoMethod, Property: "call"},
			Args:   append(append([]script.Expr{&script.This{}}, fixedArgs...), restArgs...),
		}
	}

	concatenated := &script.Call{
		Callee: &script.Member{Object: &script.ArrayLit{Elements: fixedArgs}, Property: "concat"},
		Args:   []script.Expr{restArray},
	}
	return &script.Call{
		Callee: &script.Member{Object: protoMethod, Property: "apply"},
		Args:   []script.Expr{&script.This{}, concatenated},
	}
}
