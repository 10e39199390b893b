package importer

import (
	"xlate/pkg/errors"
	"xlate/pkg/model"
)

// Config carries the flags the driver resolves from the command line or
// project settings before importing begins. It never changes once an
// Importer is constructed — flags are read-only for the lifetime of the
// compilation.
type Config struct {
	// Minify enables minified naming: anonymous "$N" type names and
	// lowerCamelCase member names in place of source identifiers.
	Minify bool
}

// Importer is the Metadata Importer. Its dictionaries are the only mutable
// state in the compiler core; they are written exclusively during Prepare
// and the Set*Semantics overrides, and read thereafter. No lock is required
// because the client contract forbids concurrent use.
type Importer struct {
	config           Config
	assemblyDefaults AssemblyDefaults

	names *reservationTables

	types      map[model.Type]*TypeSemantics
	delegates  map[model.Type]*DelegateSemantics
	typeParams map[model.TypeParameter]string

	methods map[model.Method]*MethodSemantics
	ctors   map[model.Constructor]*ConstructorSemantics

	props        map[model.Property]*PropertySemantics
	propBacking  map[model.Property]string
	events       map[model.Event]*EventSemantics
	eventBacking map[model.Event]string
	fields       map[model.Field]*FieldSemantics

	prepared map[model.Type]bool
	ignored  map[interface{}]bool

	diagnostics []errors.Diagnostic
}

// New constructs an Importer for one compilation.
func New(config Config) *Importer {
	return &Importer{
		config:       config,
		names:        newReservationTables(),
		types:        make(map[model.Type]*TypeSemantics),
		delegates:    make(map[model.Type]*DelegateSemantics),
		typeParams:   make(map[model.TypeParameter]string),
		methods:      make(map[model.Method]*MethodSemantics),
		ctors:        make(map[model.Constructor]*ConstructorSemantics),
		props:        make(map[model.Property]*PropertySemantics),
		propBacking:  make(map[model.Property]string),
		events:       make(map[model.Event]*EventSemantics),
		eventBacking: make(map[model.Event]string),
		fields:       make(map[model.Field]*FieldSemantics),
		prepared:     make(map[model.Type]bool),
		ignored:      make(map[interface{}]bool),
	}
}

// Diagnostics returns every diagnostic accumulated so far. Errors
// accumulate without short-circuiting the type; the driver decides when to
// stop based on errors.HasErrors.
func (imp *Importer) Diagnostics() []errors.Diagnostic { return imp.diagnostics }

func (imp *Importer) report(sev errors.Severity, code errors.Code, msg string) {
	imp.diagnostics = append(imp.diagnostics, &errors.ImportDiagnostic{Sev: sev, C: code, Msg: msg})
}

// Prepare populates the type-level and member-level semantic records for
// one type. It must be called after every one of the type's base types has
// already been prepared; calling it out of order is a bug in the driver's
// topological walk, not a user-facing rule violation, so it panics with an
// InternalError.
func (imp *Importer) Prepare(t model.Type) {
	if imp.prepared[t] {
		return // idempotent: re-preparing an already-prepared type is a no-op
	}
	for _, base := range t.DirectBaseTypes() {
		if !imp.prepared[base] {
			errors.Panic("importer: Prepare(%s) called before base type %s was prepared", t.Name(), base.Name())
		}
	}

	imp.processType(t)
	imp.processTypeMembers(t)
	imp.prepared[t] = true
}

// --- Idempotent lookups; each panics if the record is missing. ---

func (imp *Importer) GetTypeSemantics(t model.Type) *TypeSemantics {
	sem, ok := imp.types[t]
	if !ok {
		errors.Panic("importer: type %s was never prepared", t.Name())
	}
	return sem
}

func (imp *Importer) GetDelegateSemantics(t model.Type) *DelegateSemantics {
	sem, ok := imp.delegates[t]
	if !ok {
		errors.Panic("importer: %s is not a prepared delegate type", t.Name())
	}
	return sem
}

func (imp *Importer) GetTypeParameterName(p model.TypeParameter) string {
	name, ok := imp.typeParams[p]
	if !ok {
		errors.Panic("importer: type parameter %s was never reserved", p.Name())
	}
	return name
}

func (imp *Importer) GetMethodSemantics(m model.Method) *MethodSemantics {
	sem, ok := imp.methods[m]
	if !ok {
		errors.Panic("importer: method %s.%s was never prepared", m.DeclaringType().Name(), m.MemberName())
	}
	return sem
}

func (imp *Importer) GetConstructorSemantics(c model.Constructor) *ConstructorSemantics {
	sem, ok := imp.ctors[c]
	if !ok {
		errors.Panic("importer: constructor of %s was never prepared", c.DeclaringType().Name())
	}
	return sem
}

func (imp *Importer) GetPropertySemantics(p model.Property) *PropertySemantics {
	sem, ok := imp.props[p]
	if !ok {
		errors.Panic("importer: property %s.%s was never prepared", p.DeclaringType().Name(), p.MemberName())
	}
	return sem
}

func (imp *Importer) GetEventSemantics(e model.Event) *EventSemantics {
	sem, ok := imp.events[e]
	if !ok {
		errors.Panic("importer: event %s.%s was never prepared", e.DeclaringType().Name(), e.MemberName())
	}
	return sem
}

func (imp *Importer) GetFieldSemantics(f model.Field) *FieldSemantics {
	sem, ok := imp.fields[f]
	if !ok {
		errors.Panic("importer: field %s.%s was never prepared", f.DeclaringType().Name(), f.MemberName())
	}
	return sem
}

// --- Stable, memoized synthesis for auto-implemented members. ---

func (imp *Importer) GetAutoPropertyBackingFieldName(p model.Property) string {
	if name, ok := imp.propBacking[p]; ok {
		return name
	}
	idx := imp.names.nextAnonFieldIndex(p.DeclaringType())
	name := anonFieldName(idx)
	imp.propBacking[p] = name
	return name
}

func (imp *Importer) GetAutoEventBackingFieldName(e model.Event) string {
	if name, ok := imp.eventBacking[e]; ok {
		return name
	}
	idx := imp.names.nextAnonFieldIndex(e.DeclaringType())
	name := anonFieldName(idx)
	imp.eventBacking[e] = name
	return name
}

// --- Cooperative reservation, usable by plugin extensions before Prepare. ---

func (imp *Importer) ReserveMemberName(t model.Type, name string, isStatic bool) {
	imp.names.reserve(t, name, isStatic)
}

func (imp *Importer) IsMemberNameAvailable(t model.Type, name string, isStatic bool) bool {
	return imp.names.available(t, name, isStatic)
}

// --- Authoritative overrides. Each also marks the member ignored so later
// member processing (e.g. a subsequent Prepare call surfacing the same
// member through a different traversal) never recomputes it. ---

func (imp *Importer) SetMethodSemantics(m model.Method, sem *MethodSemantics) {
	imp.methods[m] = sem
	imp.ignored[m] = true
}

func (imp *Importer) SetConstructorSemantics(c model.Constructor, sem *ConstructorSemantics) {
	imp.ctors[c] = sem
	imp.ignored[c] = true
}

func (imp *Importer) SetPropertySemantics(p model.Property, sem *PropertySemantics) {
	imp.props[p] = sem
	imp.ignored[p] = true
}

func (imp *Importer) SetEventSemantics(e model.Event, sem *EventSemantics) {
	imp.events[e] = sem
	imp.ignored[e] = true
}

func (imp *Importer) SetFieldSemantics(f model.Field, sem *FieldSemantics) {
	imp.fields[f] = sem
	imp.ignored[f] = true
}

func (imp *Importer) isIgnored(m interface{}) bool {
	return imp.ignored[m]
}
