package importer

import (
	"strconv"
	"strings"

	"xlate/pkg/errors"
	"xlate/pkg/model"
)

// AssemblyDefaults carries per-assembly fallbacks consulted during type-level
// resolution: the assembly-level include-generic-arguments default and the
// assembly-level namespace fallback. These live outside Config because,
// unlike Minify, they are keyed by assembly rather than being a single
// global switch.
type AssemblyDefaults struct {
	IncludeGenericArguments map[string]*bool
	Namespace               map[string]string
}

// SetAssemblyDefaults installs the per-assembly fallbacks used by step 2 and
// step 4 of the type-level algorithm. Called by the driver once, before any
// Prepare call, from the referenced-assembly metadata external to the core.
func (imp *Importer) SetAssemblyDefaults(d AssemblyDefaults) {
	imp.assemblyDefaults = d
}

func isImportedAttr(t model.Type) bool {
	return t.Attributes().Has(model.AttrImported)
}

func isNonScriptable(e model.Entity) bool {
	return e.Attributes().Has(model.AttrNonScriptable)
}

func isGloballyExposed(t model.Type) bool {
	return t.Attributes().Has(model.AttrGlobalMethods) || t.Attributes().Has(model.AttrMixin)
}

// processType implements the type-level decision algorithm.
func (imp *Importer) processType(t model.Type) {
	if t.Kind() == model.KindDelegate {
		imp.processDelegate(t)
		return
	}

	// Step 1: unusability propagation.
	if isNonScriptable(t) {
		imp.types[t] = &TypeSemantics{ImplKind: TypeNotUsable}
		return
	}
	if declaring, ok := t.DeclaringType(); ok {
		if declSem, known := imp.types[declaring]; known && declSem.ImplKind == TypeNotUsable {
			imp.types[t] = &TypeSemantics{ImplKind: TypeNotUsable}
			return
		}
	}

	sem := &TypeSemantics{ImplKind: TypeNormal, IsImported: isImportedAttr(t)}

	// Step 2: include-generic-arguments tri-state.
	include := imp.resolveIncludeGenericArguments(t)
	if include == nil {
		if t.IsGeneric() {
			imp.report(errors.SeverityWarning, errors.CodeGenericArgumentsUnspecified,
				"generic type "+t.Name()+" does not specify whether generic arguments are included; assuming yes")
		}
		yes := true
		include = &yes
	}
	sem.IgnoreGenericArguments = !*include

	// Step 3: script name.
	sem.DottedScriptName = imp.resolveTypeName(t, sem)

	// Step 4 + 5: namespace, then global-exposure override.
	namespace := imp.resolveTypeNamespace(t)
	name := lastSegment(sem.DottedScriptName)
	if isGloballyExposed(t) {
		namespace = ""
		name = ""
	}
	if namespace != "" {
		sem.DottedScriptName = namespace + "." + name
	} else {
		sem.DottedScriptName = name
	}

	// Named-values enum.
	if t.Kind() == model.KindEnum && t.Attributes().Has(model.AttrNamedValues) {
		sem.IsNamedValues = true
	}

	// Serializable rules (step 6): violations are diagnosed but never stop
	// processing.
	if t.Attributes().Has(model.AttrSerializable) {
		sem.IsSerializable = true
		imp.checkSerializableRules(t)
	}

	sem.GenerateCode = t.Kind() != model.KindInterface

	imp.types[t] = sem

	// Step 7: reserve type-parameter names.
	imp.reserveTypeParameterNames(t)
}

func (imp *Importer) processDelegate(t model.Type) {
	sem := &DelegateSemantics{}
	if _, ok := t.Attributes().Get(model.AttrInstanceMethodOnFirstArgument); ok {
		sem.BindThisToFirstParameter = true
	}
	if _, ok := t.Attributes().Get(model.AttrScriptSkip); ok {
		sem.ExpandParams = true
	}
	imp.delegates[t] = sem
}

func (imp *Importer) resolveIncludeGenericArguments(t model.Type) *bool {
	if payload, ok := t.Attributes().Get(model.AttrIgnoreGenericArguments); ok {
		p := payload.(model.IgnoreGenericArgumentsPayload)
		if p.Value != nil {
			include := !*p.Value
			return &include
		}
	}
	if imp.assemblyDefaults.IncludeGenericArguments != nil {
		if v, ok := imp.assemblyDefaults.IncludeGenericArguments[t.Assembly()]; ok && v != nil {
			return v
		}
	}
	return nil
}

// resolveTypeName implements step 3: explicit name, else minified anonymous
// name, else source name (with a generic-arity suffix), else nested-type
// join.
func (imp *Importer) resolveTypeName(t model.Type, sem *TypeSemantics) string {
	if declaring, ok := t.DeclaringType(); ok {
		if t.Attributes().Has(model.AttrScriptNamespace) {
			imp.report(errors.SeverityError, errors.CodeConflictingNamespace,
				"nested type "+t.Name()+" may not declare its own namespace")
		}
		outerSem := imp.types[declaring]
		outerName := t.Name()
		if outerSem != nil {
			outerName = lastSegment(outerSem.DottedScriptName)
		}
		return outerName + "$" + imp.resolveOwnTypeName(t, sem)
	}
	return imp.resolveOwnTypeName(t, sem)
}

func (imp *Importer) resolveOwnTypeName(t model.Type, sem *TypeSemantics) string {
	if payload, ok := t.Attributes().Get(model.AttrScriptName); ok {
		name := payload.(model.ScriptNamePayload).Name
		if isValidScriptName(name) {
			return name
		}
		imp.report(errors.SeverityError, errors.CodeInvalidScriptName,
			"invalid script name "+strconv.Quote(name)+" on type "+t.Name())
	}
	if imp.config.Minify && !sem.IsImported {
		idx := imp.names.nextAnonTypeIndex(t.Assembly(), t.Namespace())
		return anonTypeName(idx)
	}
	name := t.Name()
	if t.IsGeneric() {
		name += "$" + strconv.Itoa(len(t.TypeParameters()))
	}
	return name
}

func (imp *Importer) resolveTypeNamespace(t model.Type) string {
	if declaring, ok := t.DeclaringType(); ok {
		// nested types never carry their own namespace segment; they live in
		// their declaring type's namespace
		if outerSem := imp.types[declaring]; outerSem != nil {
			if idx := strings.LastIndex(outerSem.DottedScriptName, "."); idx >= 0 {
				return outerSem.DottedScriptName[:idx]
			}
		}
		return ""
	}
	if t.Attributes().Has(model.AttrIgnoreNamespace) {
		return ""
	}
	if payload, ok := t.Attributes().Get(model.AttrScriptNamespace); ok {
		return payload.(model.ScriptNamespacePayload).Namespace
	}
	if imp.assemblyDefaults.Namespace != nil {
		if ns, ok := imp.assemblyDefaults.Namespace[t.Assembly()]; ok {
			return ns
		}
	}
	return t.Namespace()
}

func (imp *Importer) checkSerializableRules(t model.Type) {
	bases := t.DirectBaseTypes()
	classBaseOK := true
	for _, base := range bases {
		if base.Kind() == model.KindInterface {
			continue
		}
		classBaseOK = false
		if baseSem, ok := imp.types[base]; ok {
			if baseSem.IsSerializable || base.Attributes().Has(model.AttrRecord) || len(base.DirectBaseTypes()) == 0 {
				classBaseOK = true
			}
		}
	}
	if len(bases) == 0 {
		classBaseOK = true
	}
	if !classBaseOK {
		imp.report(errors.SeverityError, errors.CodeSerializableViolation,
			"serializable type "+t.Name()+" must derive from a serializable type, a record type, or the root object type")
	}

	for _, base := range bases {
		if base.Kind() != model.KindInterface {
			continue
		}
		if baseSem, ok := imp.types[base]; !ok || !baseSem.IsSerializable {
			if !base.Attributes().Has(model.AttrSerializable) {
				imp.report(errors.SeverityError, errors.CodeSerializableViolation,
					"serializable type "+t.Name()+" implements non-serializable interface "+base.Name())
			}
		}
	}

	hasInstanceMethod := false
	for _, m := range t.Members() {
		switch member := m.(type) {
		case model.Event:
			if !member.IsStatic() {
				imp.report(errors.SeverityError, errors.CodeSerializableViolation,
					"serializable type "+t.Name()+" may not declare instance event "+member.MemberName())
			}
		case model.Method:
			if member.IsVirtual() || member.IsOverride() {
				imp.report(errors.SeverityError, errors.CodeSerializableViolation,
					"serializable type "+t.Name()+" may not declare virtual or override member "+member.MemberName())
			}
			if !member.IsStatic() {
				hasInstanceMethod = true
			}
		}
	}
	if t.Kind() == model.KindInterface && hasInstanceMethod {
		imp.report(errors.SeverityError, errors.CodeSerializableViolation,
			"serializable interface "+t.Name()+" may not declare instance methods")
	}
}

// reserveTypeParameterNames implements step 7. Under minification, type
// parameters are numbered sequentially across the declaring-type nesting
// (an outer type's parameters are numbered before a nested type's own);
// otherwise the source names are copied verbatim.
func (imp *Importer) reserveTypeParameterNames(t model.Type) {
	if !imp.config.Minify {
		for _, p := range t.TypeParameters() {
			imp.typeParams[p] = p.Name()
		}
		return
	}

	chain := nestingChain(t)
	counter := 0
	for _, owner := range chain {
		for _, p := range owner.TypeParameters() {
			if _, done := imp.typeParams[p]; !done {
				imp.typeParams[p] = "$" + strconv.Itoa(counter)
			}
			counter++
		}
	}
}

// nestingChain returns t's declaring-type chain from outermost to t itself.
func nestingChain(t model.Type) []model.Type {
	var chain []model.Type
	cur := t
	for {
		chain = append([]model.Type{cur}, chain...)
		outer, ok := cur.DeclaringType()
		if !ok {
			break
		}
		cur = outer
	}
	return chain
}

func lastSegment(dotted string) string {
	idx := strings.LastIndex(dotted, ".")
	if idx < 0 {
		return dotted
	}
	return dotted[idx+1:]
}

// isValidScriptName rejects an explicit ScriptName that is empty, contains
// whitespace, or collides with a script keyword — the "valid name" gate of
// step 3.
func isValidScriptName(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, " \t\n(){}[];,") {
		return false
	}
	return !scriptKeywords[name]
}
