package importer

// Reserved script identifiers. Static context excludes the function-
// object-specific names in addition to the instance set; instance context
// excludes only the subset that applies to any prototype-inherited object.
var scriptKeywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
	"let": true, "static": true, "enum": true, "await": true, "implements": true,
	"package": true, "protected": true, "private": true, "public": true,
	"interface": true, "null": true, "true": true, "false": true,
}

var staticOnlyReserved = map[string]bool{
	"__defineGetter__": true, "__defineSetter__": true, "apply": true,
	"arguments": true, "bind": true, "call": true, "caller": true,
	"constructor": true, "hasOwnProperty": true, "isPrototypeOf": true,
	"length": true, "name": true, "propertyIsEnumerable": true,
	"prototype": true, "toLocaleString": true, "valueOf": true,
}

var instanceOnlyReserved = map[string]bool{
	"__defineGetter__": true, "__defineSetter__": true, "constructor": true,
	"hasOwnProperty": true, "isPrototypeOf": true,
	"propertyIsEnumerable": true, "toLocaleString": true, "valueOf": true,
}

// isReserved reports whether name is excluded from the given namespace
// before any uniqueness check runs against the reservation tables.
func isReserved(name string, isStatic bool) bool {
	if scriptKeywords[name] {
		return true
	}
	if isStatic {
		return staticOnlyReserved[name]
	}
	return instanceOnlyReserved[name]
}
