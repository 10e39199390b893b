package importer

import (
	"xlate/pkg/model"
)

// processEvent mirrors processProperty for events: a serializable instance
// event is disallowed (checkSerializableRules already reports that), so the
// only outcomes here are NotUsable or a synthesized add_<pref>/remove_<pref>
// method pair.
func (imp *Importer) processEvent(t model.Type, e model.Event) {
	if imp.isIgnored(e) {
		return
	}

	if isNonScriptable(e) || imp.typeSemanticsOrDefault(t).ImplKind == TypeNotUsable {
		imp.events[e] = &EventSemantics{ImplKind: PropertyNotUsable}
		return
	}

	pref := imp.preferredName(e)
	capitalized := capitalizeFirst(pref)

	sem := &EventSemantics{ImplKind: PropertyGetAndSetMethods}
	if add := e.AddMethod(); add != nil {
		as := imp.computeMethodSemantics(t, add, "add_"+capitalized)
		imp.methods[add] = as
		sem.AddMethod = as
	}
	if remove := e.RemoveMethod(); remove != nil {
		rs := imp.computeMethodSemantics(t, remove, "remove_"+capitalized)
		imp.methods[remove] = rs
		sem.RemoveMethod = rs
	}
	imp.events[e] = sem
}
