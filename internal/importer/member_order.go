package importer

import (
	"sort"
	"strings"

	"xlate/pkg/model"
)

// memberKindRank gives methods < properties < fields < events the total
// order member visitation follows.
func memberKindRank(m model.Member) int {
	switch m.(type) {
	case model.Method:
		return 0
	case model.Property:
		return 1
	case model.Field:
		return 2
	case model.Event:
		return 3
	default:
		return 4
	}
}

// hasExplicitName reports whether m carries an explicit ScriptName
// attribute — such members are visited before any member whose name must
// be derived.
func hasExplicitName(m model.Member) bool {
	return m.Attributes().Has(model.AttrScriptName)
}

// methodTieBreakKey builds the "ordinal name, parameter count, joined
// parameter type names, return type name, type-parameter count" tie-break
// string for two methods that would otherwise compare equal.
func methodTieBreakKey(m model.Method) string {
	var b strings.Builder
	b.WriteString(m.MemberName())
	b.WriteString("#")
	params := m.Parameters()
	b.WriteString(string(rune('0' + len(params))))
	b.WriteString("#")
	typeNames := make([]string, len(params))
	for i, p := range params {
		if p.Type != nil {
			typeNames[i] = p.Type.Name()
		}
	}
	b.WriteString(strings.Join(typeNames, ","))
	b.WriteString("#")
	if rt := m.ReturnType(); rt != nil {
		b.WriteString(rt.Name())
	}
	b.WriteString("#")
	b.WriteString(string(rune('0' + len(m.TypeParameters()))))
	return b.String()
}

// orderedMembers returns t's own members (excluding constructors, which run
// a separate pipeline) in a deterministic visitation order: explicit-name
// members first, then methods < properties < fields < events, with a
// stable within-kind tie-break.
func orderedMembers(t model.Type) []model.Member {
	var members []model.Member
	for _, m := range t.Members() {
		if _, isCtor := m.(model.Constructor); isCtor {
			continue
		}
		members = append(members, m)
	}

	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i], members[j]
		aExplicit, bExplicit := hasExplicitName(a), hasExplicitName(b)
		if aExplicit != bExplicit {
			return aExplicit
		}
		ra, rb := memberKindRank(a), memberKindRank(b)
		if ra != rb {
			return ra < rb
		}
		if ra == 0 {
			am, bm := a.(model.Method), b.(model.Method)
			return methodTieBreakKey(am) < methodTieBreakKey(bm)
		}
		return a.MemberName() < b.MemberName()
	})
	return members
}

// constructors returns t's own constructors in declaration order; the
// constructor pipeline imposes its own naming order, not the general member
// order.
func constructors(t model.Type) []model.Constructor {
	var ctors []model.Constructor
	for _, m := range t.Members() {
		if c, ok := m.(model.Constructor); ok {
			ctors = append(ctors, c)
		}
	}
	return ctors
}
