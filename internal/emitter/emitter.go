// Package emitter turns already-checked source-language operations into
// script expression trees invoking the output runtime's well-known
// helpers. It is a stateless builder, keyed only by its Config, that
// prefers an optimized elision over a helper call whenever the importer's
// semantics make the runtime check unnecessary.
package emitter

import "xlate/internal/importer"

// runtimeNamespace is the script identifier the fixed top-level helpers
// hang off: makeGenericType, isInstanceOfType, safeCast, cast,
// isNullOrUndefined, isValue, referenceEquals, coalesce, mkdel, thisFix,
// delegateClone, applyConstructor, shallowCopy, multidimArray, arrayGet,
// arraySet, getDefaultValue. Nullable, Int32, and Exception carry their own
// typed helpers under their own namespace.
const runtimeNamespace = "Script"

// Config carries the flags the emitter's elision rules consult.
type Config struct {
	// OmitDowncasts disables the runtime type check a downcast would
	// otherwise perform, eliding straight to the operand.
	OmitDowncasts bool
	// OmitNullableChecks is stored with the configuration; no builder in
	// this package reads it, so lifted operators are built the same way
	// whether it is set or not.
	OmitNullableChecks bool
}

// Emitter builds script expressions for one compilation. It consults the
// Importer's semantic records to decide same-type elisions but never
// mutates them.
type Emitter struct {
	config Config
	imp    *importer.Importer
}

// New constructs an Emitter over an already-prepared Importer.
func New(config Config, imp *importer.Importer) *Emitter {
	return &Emitter{config: config, imp: imp}
}
