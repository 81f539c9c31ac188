package clone

import "strings"

// SelectorIndex maps each selector to the identifiers of the profiles
// exposing it.
type SelectorIndex map[string][]string

// BuildSelectorIndex indexes profiles by selector. Selectors seen in a
// single profile are kept: the index answers lookups, it is not a
// candidate-pair filter.
func BuildSelectorIndex(profiles []Profile) SelectorIndex {
	idx := make(SelectorIndex)
	for _, p := range profiles {
		for _, sel := range p.Selectors {
			idx[sel] = append(idx[sel], p.File)
		}
	}
	return idx
}

// Lookup returns the profiles exposing a selector. The selector is accepted
// with or without its 0x prefix, case-insensitively.
func (idx SelectorIndex) Lookup(selector string) []string {
	return idx[NormalizeSelector(selector)]
}

// NormalizeSelector lowercases a selector and ensures its 0x prefix.
func NormalizeSelector(selector string) string {
	sel := strings.ToLower(selector)
	if !strings.HasPrefix(sel, "0x") {
		sel = "0x" + sel
	}
	return sel
}
