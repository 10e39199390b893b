package importer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"xlate/pkg/model"
)

// nameTable is one type's reservation table: the set of instance (or
// static) script names already consumed by processed members, explicit
// reservations, and — for the instance table — base types.
type nameTable map[string]bool

// reservationTables owns the two per-type name tables plus the anonymous
// naming counters.
type reservationTables struct {
	instance map[model.Type]nameTable
	static   map[model.Type]nameTable

	// one counter per (assembly, namespace) pair for anonymous minified
	// type names, keyed by "assembly\x00namespace"
	anonTypeCounters map[string]int

	// one counter per declaring type for anonymous backing-field names
	anonFieldCounters map[model.Type]int
}

func newReservationTables() *reservationTables {
	return &reservationTables{
		instance:          make(map[model.Type]nameTable),
		static:            make(map[model.Type]nameTable),
		anonTypeCounters:  make(map[string]int),
		anonFieldCounters: make(map[model.Type]int),
	}
}

func (r *reservationTables) tableFor(t model.Type, isStatic bool) nameTable {
	tables := r.instance
	if isStatic {
		tables = r.static
	}
	tbl, ok := tables[t]
	if !ok {
		tbl = make(nameTable)
		tables[t] = tbl
	}
	return tbl
}

// reserve adds name to t's own table. This is the mechanism behind both
// ordinary member processing and the cooperative ReserveMemberName API.
func (r *reservationTables) reserve(t model.Type, name string, isStatic bool) {
	r.tableFor(t, isStatic)[name] = true
}

// available reports whether name is free for t. The static case only ever
// consults t's own table — statics are not reachable through the prototype
// chain in the target runtime. The instance case also consults every base
// type's instance table: a name reserved on a base type must stay
// unavailable on every transitively derived type, or an override would
// silently shadow an unrelated member.
func (r *reservationTables) available(t model.Type, name string, isStatic bool) bool {
	if isReserved(name, isStatic) {
		return false
	}
	if r.tableFor(t, isStatic)[name] {
		return false
	}
	if isStatic {
		return true
	}
	for _, base := range t.AllBaseTypes() {
		if r.tableFor(base, false)[name] {
			return false
		}
	}
	return true
}

// uniqueName returns preferred if it is available, else the first
// "preferredN" (N starting at 2) that is. Matches the constructor
// pipeline's "$ctor2", "$ctor3", …" numbering and the general member
// fallback of "a unique derivative against the reservation table."
func (r *reservationTables) uniqueName(t model.Type, preferred string, isStatic bool) string {
	if r.available(t, preferred, isStatic) {
		return preferred
	}
	for n := 2; ; n++ {
		candidate := preferred + strconv.Itoa(n)
		if r.available(t, candidate, isStatic) {
			return candidate
		}
	}
}

// nextAnonTypeIndex allocates the next minified numeric type name within
// an (assembly, namespace) pair, producing names "$0", "$1", ….
func (r *reservationTables) nextAnonTypeIndex(assembly, namespace string) int {
	key := assembly + "\x00" + namespace
	idx := r.anonTypeCounters[key]
	r.anonTypeCounters[key] = idx + 1
	return idx
}

// nextAnonFieldIndex allocates the next anonymous backing-field suffix for
// a declaring type; anonFieldName turns it into "$0", "$1", ….
func (r *reservationTables) nextAnonFieldIndex(t model.Type) int {
	idx := r.anonFieldCounters[t]
	r.anonFieldCounters[t] = idx + 1
	return idx
}

var titleCaser = cases.Title(language.Und)
var lowerCaser = cases.Lower(language.Und)

// toMinifiedCasing applies the minifier's casing convention (camelCase) to
// a source identifier, used for the member-level *PreserveCase* rule's
// opposite: when PreserveCase is absent and minification is on, a member's
// preferred name is lowerCamelCase rather than the source's PascalCase.
// Built on golang.org/x/text/cases rather than a hand-rolled ASCII
// uppercase/lowercase of the first rune, matching a project that already
// depends on x/text for Unicode-aware casing.
func toMinifiedCasing(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	first := string(r)
	rest := name[size:]
	return lowerCaser.String(first) + rest
}

// anonTypeName synthesizes a minified numeric type name "$N".
func anonTypeName(index int) string {
	return fmt.Sprintf("$%d", index)
}

// anonFieldName synthesizes an anonymous auto-property/event backing field
// name from its owner's counter.
func anonFieldName(index int) string {
	return fmt.Sprintf("$%d", index)
}

// capitalizeFirst upper-cases the first rune of name, used when synthesizing
// get_<Pref>/set_<Pref> and add_<Pref>/remove_<Pref> accessor names so the
// suffix reads as a proper identifier regardless of the source member's own
// casing (a lowerCamelCase auto-property under minification would otherwise
// produce "get_foo" instead of the more conventional "get_Foo").
func capitalizeFirst(name string) string {
	if name == "" {
		return name
	}
	_, size := utf8.DecodeRuneInString(name)
	return titleCaser.String(name[:size]) + name[size:]
}
