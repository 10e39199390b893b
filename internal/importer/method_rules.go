package importer

import (
	"fmt"
	"strings"

	"xlate/pkg/errors"
	"xlate/pkg/model"
	"xlate/internal/emitter/template"
)

// processMethod implements the method-level decision algorithm.
func (imp *Importer) processMethod(t model.Type, m model.Method) {
	if imp.isIgnored(m) {
		return // already authoritatively set via SetMethodSemantics
	}
	imp.methods[m] = imp.computeMethodSemantics(t, m, "")
}

// computeMethodSemantics runs the method-level algorithm for m, using
// fallbackName in place of the ordinarily-derived preferred name when the
// "otherwise, fresh name" branch is reached and fallbackName is non-empty.
// This lets the property/event rules recursively run the method algorithm
// against a synthesized get_<pref>/set_<pref> name.
func (imp *Importer) computeMethodSemantics(t model.Type, m model.Method, fallbackName string) *MethodSemantics {
	sem := imp.decideMethod(t, m, fallbackName)
	sem.ExpandParams = hasParamsParameter(m.Parameters())
	if sem.ImplKind != MethodNotUsable && sem.ImplKind != MethodNativeOperator {
		sem.IgnoreGenericArguments = imp.typeSemanticsOrDefault(t).IgnoreGenericArguments
	}
	imp.applyEnumerateAsArray(m, sem)
	return sem
}

func (imp *Importer) typeSemanticsOrDefault(t model.Type) *TypeSemantics {
	if sem, ok := imp.types[t]; ok {
		return sem
	}
	return &TypeSemantics{}
}

func (imp *Importer) decideMethod(t model.Type, m model.Method, fallbackName string) *MethodSemantics {
	if isNonScriptable(m) {
		return &MethodSemantics{ImplKind: MethodNotUsable}
	}

	if m.Attributes().Has(model.AttrIntrinsicOperator) {
		if !m.IsOperator() || m.IsConversionOperator() {
			imp.report(errors.SeverityError, errors.CodeIllegalIntrinsicOperator,
				"IntrinsicOperator is only legal on a non-conversion operator method ("+m.MemberName()+")")
		} else {
			return &MethodSemantics{ImplKind: MethodNativeOperator}
		}
	}

	if m.Attributes().Has(model.AttrScriptSkip) {
		params := m.Parameters()
		switch {
		case m.IsStatic() && len(params) == 1:
			return &MethodSemantics{ImplKind: MethodInlineCode, InlineTemplate: "{0}"}
		case !m.IsStatic() && len(params) == 0:
			return &MethodSemantics{ImplKind: MethodInlineCode, InlineTemplate: "{this}"}
		default:
			imp.report(errors.SeverityError, errors.CodeInvalidInlineCodeTemplate,
				"ScriptSkip requires a single-parameter static method or a zero-parameter instance method ("+m.MemberName()+")")
		}
	}

	if payload, ok := m.Attributes().Get(model.AttrScriptAlias); ok {
		alias := payload.(model.ScriptAliasPayload).Alias
		tmpl := alias + "(" + placeholderList(len(m.Parameters())) + ")"
		return &MethodSemantics{ImplKind: MethodInlineCode, InlineTemplate: tmpl}
	}

	if payload, ok := m.Attributes().Get(model.AttrInlineCode); ok {
		p := payload.(model.InlineCodePayload)
		if err := imp.validateInlineTemplate(p.Template, len(m.Parameters())); err != nil {
			imp.report(errors.SeverityError, errors.CodeInvalidInlineCodeTemplate,
				"invalid InlineCode template on "+m.MemberName()+": "+err.Error())
		} else {
			return &MethodSemantics{
				ImplKind:            MethodInlineCode,
				InlineTemplate:      p.Template,
				NonVirtualTemplate:  p.NonVirtualTemplate,
				GeneratedMethodName: p.GeneratedName,
			}
		}
	}

	if m.Attributes().Has(model.AttrInstanceMethodOnFirstArgument) {
		// Synthesize an inline template that calls the static method with
		// the receiver spliced in as its first argument.
		args := append([]string{"{this}"}, placeholderSlice(len(m.Parameters()))...)
		tmpl := fmt.Sprintf("%s(%s)", imp.preferredName(m), strings.Join(args, ", "))
		return &MethodSemantics{ImplKind: MethodInlineCode, InlineTemplate: tmpl}
	}

	if m.IsOverride() {
		if base, ok := m.OverriddenMethod(); ok {
			return imp.inheritMethodSemantics(t, m, base)
		}
	} else if impls := m.ImplementedInterfaceMembers(); len(impls) > 0 {
		first := impls[0]
		for _, other := range impls[1:] {
			if !imp.methodSemanticsAgree(first, other) {
				imp.report(errors.SeverityError, errors.CodeAmbiguousBaseMemberName,
					"method "+m.MemberName()+" implements interface members with disagreeing script semantics")
			}
		}
		return imp.inheritMethodSemantics(t, m, first)
	}

	name := fallbackName
	if name == "" {
		name = imp.preferredName(m)
	}
	unique := imp.names.uniqueName(t, name, m.IsStatic())
	imp.names.reserve(t, unique, m.IsStatic())
	return &MethodSemantics{ImplKind: MethodNormal, Name: unique, GenerateCode: true}
}

// inheritMethodSemantics copies a base/interface method's semantics onto an
// override or interface implementation, collapsing InlineCode-with-a-
// generated-name to a plain Normal method addressing that generated name.
func (imp *Importer) inheritMethodSemantics(t model.Type, m model.Method, base model.Method) *MethodSemantics {
	baseSem := imp.GetMethodSemantics(base)
	if baseSem.ImplKind == MethodInlineCode && baseSem.GeneratedMethodName != "" {
		return &MethodSemantics{ImplKind: MethodNormal, Name: baseSem.GeneratedMethodName, GenerateCode: true, EnumerateAsArray: baseSem.EnumerateAsArray}
	}
	copySem := *baseSem
	return &copySem
}

func (imp *Importer) methodSemanticsAgree(a, b model.Method) bool {
	semA, semB := imp.GetMethodSemantics(a), imp.GetMethodSemantics(b)
	return semA.ImplKind == semB.ImplKind && semA.Name == semB.Name
}

func (imp *Importer) applyEnumerateAsArray(m model.Method, sem *MethodSemantics) {
	if !m.Attributes().Has(model.AttrEnumerateAsArray) {
		return
	}
	if !m.IsGetEnumerator() || m.IsStatic() || len(m.Parameters()) != 0 {
		imp.report(errors.SeverityError, errors.CodeUnsupportedAttributeOnInterface,
			"EnumerateAsArray is only legal on a zero-argument instance GetEnumerator ("+m.MemberName()+")")
		return
	}
	sem.EnumerateAsArray = true
}

func (imp *Importer) validateInlineTemplate(raw string, paramCount int) error {
	placeholders, err := template.Validate(raw)
	if err != nil {
		return err
	}
	if template.MaxArgIndex(placeholders) >= paramCount {
		return fmt.Errorf("template references argument %d but the method only has %d parameter(s)", template.MaxArgIndex(placeholders), paramCount)
	}
	return nil
}

func hasParamsParameter(params []model.Parameter) bool {
	if len(params) == 0 {
		return false
	}
	return params[len(params)-1].IsParams
}

func placeholderList(n int) string {
	return strings.Join(placeholderSlice(n), ", ")
}

func placeholderSlice(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("{%d}", i)
	}
	return out
}
