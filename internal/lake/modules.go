// SPDX-License-Identifier: MPL-2.0

package lake

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// knownModules maps manifest package names to the top-level modules they
// document, for packages whose modules the name heuristic would get wrong
// or that contribute more than one module.
var knownModules = map[string][]string{
	"BibtexQuery":      {"BibtexQuery"},
	"LeanSearchClient": {"LeanSearchClient"},
	"MD4Lean":          {"MD4Lean"},
	"Qq":               {"Qq"},
	"UnicodeBasic":     {"UnicodeBasic"},
	"doc-gen4":         {"DocGen4"},
	"importGraph":      {"ImportGraph"},
	"lean4checker":     {"Lean4Checker"},
	"mathlib":          {"Mathlib", "Archive", "Counterexamples"},
	"proofwidgets":     {"ProofWidgets"},
}

// MapPackageToModules returns the modules documented for the manifest package
// name. Names in the known table map to their fixed module list; any other name
// is turned into a single guessed module (see GuessModuleName) and guessed is true.
//
// The result is always non-empty and owned by the caller.
func MapPackageToModules(name string) (modules []string, guessed bool) {
	if known, ok := knownModules[name]; ok {
		return slices.Clone(known), false
	}
	return []string{GuessModuleName(name)}, true
}

// GuessModuleName upper-camel-cases a package name: it splits on '-' and '_',
// upper-cases the first letter of each segment, keeps the rest of the segment
// as is, and joins the segments. "import-graph" becomes "ImportGraph".
// A name without any non-delimiter characters is returned unchanged, and a
// segment starting with an invalid UTF-8 byte is kept as is.
func GuessModuleName(name string) string {
	segments := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(segments) == 0 {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, seg := range segments {
		first, size := utf8.DecodeRuneInString(seg)
		if first == utf8.RuneError && size == 1 {
			b.WriteString(seg)
			continue
		}
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(seg[size:])
	}
	return b.String()
}
