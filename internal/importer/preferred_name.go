package importer

import (
	"strconv"

	"xlate/pkg/errors"
	"xlate/pkg/model"
)

// preferredName derives a member's preferred script name: an explicit
// ScriptName attribute if present and valid, else the source name passed
// through the minifier's casing convention when minifying (unless
// PreserveCase is set), else the source name verbatim.
func (imp *Importer) preferredName(m model.Member) string {
	if payload, ok := m.Attributes().Get(model.AttrScriptName); ok {
		name := payload.(model.ScriptNamePayload).Name
		if isValidScriptName(name) {
			return name
		}
		imp.report(errors.SeverityError, errors.CodeInvalidScriptName,
			"invalid script name "+strconv.Quote(name)+" on member "+m.MemberName())
	}
	if imp.config.Minify && !m.Attributes().Has(model.AttrPreserveCase) {
		return toMinifiedCasing(m.MemberName())
	}
	return m.MemberName()
}
