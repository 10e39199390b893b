package importer

import (
	"xlate/pkg/model"
)

// processField implements the field routing rules: a named-values
// enum field becomes a string constant carrying its own name; a const field
// in an enum, or any const field under minification, becomes a typed
// constant; any other const field still becomes a typed constant but
// inlines at every use site (the record's Name is left empty, per
// FieldSemantics' doc comment); everything else gets a reserved script name.
func (imp *Importer) processField(t model.Type, f model.Field) {
	if imp.isIgnored(f) {
		return
	}

	if isNonScriptable(f) {
		imp.fields[f] = &FieldSemantics{ImplKind: FieldNotUsable}
		return
	}

	typeSem := imp.typeSemanticsOrDefault(t)

	if t.Kind() == model.KindEnum && typeSem.IsNamedValues {
		imp.fields[f] = &FieldSemantics{ImplKind: FieldStringConstant, ConstantValue: imp.preferredName(f)}
		return
	}

	if f.IsConst() {
		kind, ok := constantFieldKind(f.ConstantValue())
		if ok {
			if t.Kind() == model.KindEnum || imp.config.Minify {
				pref := imp.preferredName(f)
				name := imp.names.uniqueName(t, pref, f.IsStatic())
				imp.names.reserve(t, name, f.IsStatic())
				imp.fields[f] = &FieldSemantics{ImplKind: kind, Name: name, ConstantValue: f.ConstantValue()}
				return
			}
			imp.fields[f] = &FieldSemantics{ImplKind: kind, ConstantValue: f.ConstantValue()}
			return
		}
	}

	pref := imp.preferredName(f)
	name := imp.names.uniqueName(t, pref, f.IsStatic())
	imp.names.reserve(t, name, f.IsStatic())
	imp.fields[f] = &FieldSemantics{ImplKind: FieldPlain, Name: name}
}

// constantFieldKind classifies a const field's compile-time value as one of
// the typed-constant kinds, or reports it is not a recognized literal kind
// (e.g. a reference-typed const), which still needs a named plain field.
func constantFieldKind(value interface{}) (FieldImplKind, bool) {
	switch value.(type) {
	case nil:
		return FieldNullConstant, true
	case bool:
		return FieldBooleanConstant, true
	case string:
		return FieldStringConstant, true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return FieldNumericConstant, true
	default:
		return FieldPlain, false
	}
}
