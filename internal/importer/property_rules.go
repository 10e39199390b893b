package importer

import (
	"xlate/pkg/model"
)

func accessorHasInlineCode(m model.Method, ok bool) bool {
	return ok && m.Attributes().Has(model.AttrInlineCode)
}

// processProperty implements the property routing rules.
func (imp *Importer) processProperty(t model.Type, p model.Property) {
	if imp.isIgnored(p) {
		return
	}

	if isNonScriptable(p) || imp.typeSemanticsOrDefault(t).ImplKind == TypeNotUsable {
		imp.props[p] = &PropertySemantics{ImplKind: PropertyNotUsable}
		return
	}

	pref := imp.preferredName(p)

	if imp.typeSemanticsOrDefault(t).IsSerializable && !p.IsStatic() && !bothAccessorsHaveMatchingInlineCode(p) {
		imp.props[p] = imp.fieldShapedProperty(t, p, pref)
		return
	}

	if p.Attributes().Has(model.AttrIntrinsicProperty) && eligibleForIntrinsicProperty(p) {
		if p.IsIndexer() {
			imp.props[p] = imp.nativeIndexerProperty(t, p)
			return
		}
		imp.props[p] = imp.fieldShapedProperty(t, p, pref)
		return
	}

	imp.props[p] = imp.getAndSetMethodsProperty(t, p, pref)
}

func bothAccessorsHaveMatchingInlineCode(p model.Property) bool {
	getter, hasGetter := p.Getter()
	setter, hasSetter := p.Setter()
	if !accessorHasInlineCode(getter, hasGetter) {
		return false
	}
	if hasSetter {
		return accessorHasInlineCode(setter, hasSetter)
	}
	return true // read-only property, getter alone carries InlineCode
}

// eligibleForIntrinsicProperty implements "a non-interface, non-override,
// non-overridable, non-interface-implementing ordinary property".
func eligibleForIntrinsicProperty(p model.Property) bool {
	if p.DeclaringType().Kind() == model.KindInterface {
		return false
	}
	if p.IsOverride() || p.IsOverridable() {
		return false
	}
	if len(p.ImplementedInterfaceMembers()) > 0 {
		return false
	}
	return true
}

func (imp *Importer) fieldShapedProperty(t model.Type, p model.Property, pref string) *PropertySemantics {
	name := imp.names.uniqueName(t, pref, p.IsStatic())
	imp.names.reserve(t, name, p.IsStatic())
	return &PropertySemantics{ImplKind: PropertyField, FieldName: name}
}

// nativeIndexerProperty handles an eligible IntrinsicProperty indexer: both
// accessors get MethodNativeIndexer semantics rather than a synthesized
// get_/set_ pair. The indexer's parameter count is not checked; every
// such indexer takes this path, whatever its number of parameters.
func (imp *Importer) nativeIndexerProperty(t model.Type, p model.Property) *PropertySemantics {
	sem := &PropertySemantics{ImplKind: PropertyGetAndSetMethods}
	if getter, ok := p.Getter(); ok {
		gs := imp.computeMethodSemantics(t, getter, "")
		gs.ImplKind = MethodNativeIndexer
		imp.methods[getter] = gs
		sem.GetMethod = gs
	}
	if setter, ok := p.Setter(); ok {
		ss := imp.computeMethodSemantics(t, setter, "")
		ss.ImplKind = MethodNativeIndexer
		imp.methods[setter] = ss
		sem.SetMethod = ss
	}
	return sem
}

func (imp *Importer) getAndSetMethodsProperty(t model.Type, p model.Property, pref string) *PropertySemantics {
	sem := &PropertySemantics{ImplKind: PropertyGetAndSetMethods}
	capitalized := capitalizeFirst(pref)
	if getter, ok := p.Getter(); ok {
		gs := imp.computeMethodSemantics(t, getter, "get_"+capitalized)
		imp.methods[getter] = gs
		sem.GetMethod = gs
	}
	if setter, ok := p.Setter(); ok {
		ss := imp.computeMethodSemantics(t, setter, "set_"+capitalized)
		imp.methods[setter] = ss
		sem.SetMethod = ss
	}
	return sem
}
