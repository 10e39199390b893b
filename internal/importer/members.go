package importer

import (
	"xlate/pkg/model"
)

// processTypeMembers runs the member-level decision algorithm over t's own
// members: ordinary members in the deterministic visitation order, then
// constructors through their own pipeline.
func (imp *Importer) processTypeMembers(t model.Type) {
	for _, m := range orderedMembers(t) {
		switch member := m.(type) {
		case model.Method:
			imp.processMethod(t, member)
		case model.Property:
			imp.processProperty(t, member)
		case model.Event:
			imp.processEvent(t, member)
		case model.Field:
			imp.processField(t, member)
		}
	}
	imp.processConstructors(t, constructors(t))
}
