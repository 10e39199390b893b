// Package template validates and expands the inline-code template strings
// the Metadata Importer attaches to InlineCode methods, constructors, and
// ScriptAlias members: a string of script source with typed placeholders
// for the receiver and arguments, expanded at each use site. It is a small
// domain library in its own right, built on github.com/dlclark/regexp2.
// The balanced-brace check below counts every brace character and compares
// the count with two braces per recognized placeholder.
package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var placeholderPattern = regexp2.MustCompile(`\{(this|[0-9]+)\}`, regexp2.None)

// bracePattern finds every brace character so Validate can detect an
// unmatched or malformed placeholder (e.g. "{self}" or a lone "{").
var bracePattern = regexp2.MustCompile(`[{}]`, regexp2.None)

// Placeholder is one `{this}` or `{N}` occurrence found in a template.
type Placeholder struct {
	IsThis       bool
	ArgIndex     int // meaningful only when !IsThis
	Start, End   int // byte offsets within the raw template
}

// Validate scans raw for `{this}` / `{0}` / `{1}` / … placeholders. It
// returns an error when a brace is not part of a recognized placeholder,
// since the importer must reject such malformed templates rather than let
// one reach the output.
func Validate(raw string) ([]Placeholder, error) {
	var placeholders []Placeholder

	// First, make sure every brace belongs to a placeholder match; any
	// stray brace means the template is malformed.
	braceCount := 0
	for m, _ := bracePattern.FindStringMatch(raw); m != nil; m, _ = bracePattern.FindNextMatch(m) {
		braceCount++
	}

	expectedBraces := 0
	for m, _ := placeholderPattern.FindStringMatch(raw); m != nil; {
		g := m.Groups()[1]
		text := g.String()
		p := Placeholder{Start: m.Index, End: m.Index + m.Length}
		if text == "this" {
			p.IsThis = true
		} else {
			idx, err := strconv.Atoi(text)
			if err != nil {
				return nil, fmt.Errorf("malformed placeholder %q in inline-code template", m.String())
			}
			p.ArgIndex = idx
		}
		placeholders = append(placeholders, p)
		expectedBraces += 2

		next, err := placeholderPattern.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("error scanning inline-code template: %w", err)
		}
		m = next
	}

	if expectedBraces != braceCount {
		return nil, fmt.Errorf("inline-code template %q contains an unrecognized or unbalanced placeholder", raw)
	}

	return placeholders, nil
}

// MaxArgIndex returns the highest {N} index referenced, or -1 if the
// template references no positional argument.
func MaxArgIndex(placeholders []Placeholder) int {
	max := -1
	for _, p := range placeholders {
		if !p.IsThis && p.ArgIndex > max {
			max = p.ArgIndex
		}
	}
	return max
}

// ReferencesThis reports whether the template contains a {this} placeholder.
func ReferencesThis(placeholders []Placeholder) bool {
	for _, p := range placeholders {
		if p.IsThis {
			return true
		}
	}
	return false
}

// Expand substitutes {this} with receiverText and {N} with argTexts[N],
// producing the raw script source for one use site. Expand assumes raw
// already passed Validate; it panics on a malformed template rather than
// silently emitting garbage, since that indicates the importer let an
// invalid template through.
func Expand(raw string, receiverText string, argTexts []string) string {
	var out strings.Builder
	last := 0
	for m, _ := placeholderPattern.FindStringMatch(raw); m != nil; {
		out.WriteString(raw[last:m.Index])
		g := m.Groups()[1].String()
		if g == "this" {
			out.WriteString(receiverText)
		} else {
			idx, err := strconv.Atoi(g)
			if err != nil || idx < 0 || idx >= len(argTexts) {
				panic(fmt.Sprintf("template.Expand: invalid or out-of-range placeholder {%s} in %q", g, raw))
			}
			out.WriteString(argTexts[idx])
		}
		last = m.Index + m.Length

		next, err := placeholderPattern.FindNextMatch(m)
		if err != nil {
			panic(fmt.Sprintf("template.Expand: %v", err))
		}
		m = next
	}
	out.WriteString(raw[last:])
	return out.String()
}
