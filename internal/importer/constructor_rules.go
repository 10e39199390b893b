package importer

import (
	"strconv"
	"strings"

	"xlate/pkg/errors"
	"xlate/pkg/model"
)

// ctorMarkerName is the canonical name the source ecosystem uses for the
// unnamed-constructor marker.
const ctorMarkerName = "$ctor"

// processConstructors implements the full constructor pipeline for t's own
// constructors, in declaration order. Unlike the general member
// algorithm, nameless constructors share a dedicated numbering sequence
// ($ctor, $ctor2, $ctor3, …) rather than the type's general name table.
func (imp *Importer) processConstructors(t model.Type, ctors []model.Constructor) {
	namelessSeen := 0
	for _, c := range ctors {
		if imp.isIgnored(c) {
			continue
		}
		imp.ctors[c] = imp.decideConstructor(t, c, &namelessSeen)
	}
}

func (imp *Importer) decideConstructor(t model.Type, c model.Constructor, namelessSeen *int) *ConstructorSemantics {
	if c.IsSyntheticDefaultValueTypeMarker() {
		return &ConstructorSemantics{ImplKind: CtorNotUsable}
	}

	if c.IsStatic() {
		return &ConstructorSemantics{ImplKind: CtorUnnamed, GenerateCode: true}
	}

	if payload, ok := c.Attributes().Get(model.AttrInlineCode); ok {
		p := payload.(model.InlineCodePayload)
		if err := imp.validateInlineTemplate(p.Template, len(c.Parameters())); err != nil {
			imp.report(errors.SeverityError, errors.CodeInvalidInlineCodeTemplate,
				"invalid InlineCode template on constructor of "+t.Name()+": "+err.Error())
		} else {
			return &ConstructorSemantics{ImplKind: CtorInlineCode, InlineTemplate: p.Template, ExpandParams: hasParamsParameter(c.Parameters())}
		}
	}

	if c.Attributes().Has(model.AttrAlternateSignature) {
		return &ConstructorSemantics{ImplKind: CtorNamed, Name: c.Name(), GenerateCode: false}
	}

	typeSem := imp.typeSemanticsOrDefault(t)
	if c.Attributes().Has(model.AttrObjectLiteral) || (typeSem.IsSerializable && typeSem.IsImported) {
		return imp.jsonConstructor(t, c)
	}

	if typeSem.IsImported && hasSingleParamsOfObjectParameter(c.Parameters()) {
		return &ConstructorSemantics{
			ImplKind:       CtorInlineCode,
			InlineTemplate: dictionaryConstructionTemplate(),
			ExpandParams:   true,
			GenerateCode:   false,
		}
	}

	if name := c.Name(); name != "" {
		if name == ctorMarkerName {
			return &ConstructorSemantics{ImplKind: CtorUnnamed, GenerateCode: true}
		}
		return &ConstructorSemantics{ImplKind: CtorNamed, Name: name, GenerateCode: true}
	}

	*namelessSeen++
	if *namelessSeen == 1 {
		if imp.config.Minify && typeSem.IsSerializable {
			return &ConstructorSemantics{ImplKind: CtorNamed, Name: ctorMarkerName, GenerateCode: true}
		}
		return &ConstructorSemantics{ImplKind: CtorUnnamed, GenerateCode: true}
	}

	name := ctorMarkerName + strconv.Itoa(*namelessSeen)
	return &ConstructorSemantics{ImplKind: CtorNamed, Name: name, GenerateCode: true}
}

// jsonConstructor builds the Json record binding each parameter to the
// lowercase-matched property or field of the declaring type, reporting a
// diagnostic on each parameter that matches nothing.
func (imp *Importer) jsonConstructor(t model.Type, c model.Constructor) *ConstructorSemantics {
	members := make(map[string]string) // lowercased member name -> script name
	for _, m := range t.Members() {
		switch member := m.(type) {
		case model.Property:
			sem := imp.GetPropertySemantics(member)
			if sem.ImplKind == PropertyField {
				members[strings.ToLower(member.MemberName())] = sem.FieldName
			}
		case model.Field:
			sem := imp.GetFieldSemantics(member)
			if sem.Name != "" {
				members[strings.ToLower(member.MemberName())] = sem.Name
			}
		}
	}

	mapping := make(map[string]string)
	for _, p := range c.Parameters() {
		scriptName, ok := members[strings.ToLower(p.Name)]
		if !ok {
			imp.report(errors.SeverityError, errors.CodeConstructorParameterMismatch,
				"constructor parameter "+p.Name+" of "+t.Name()+" matches no serializable member")
			continue
		}
		mapping[p.Name] = scriptName
	}

	return &ConstructorSemantics{ImplKind: CtorJson, ParameterToMemberMap: mapping, GenerateCode: false}
}

func hasSingleParamsOfObjectParameter(params []model.Parameter) bool {
	return len(params) == 1 && params[0].IsParams
}

// dictionaryConstructionTemplate synthesizes the inline template building a
// plain object out of a trailing params array of name/value pairs.
func dictionaryConstructionTemplate() string {
	return "$dictionaryFromParams({0})"
}
