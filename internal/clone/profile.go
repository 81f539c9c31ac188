package clone

import (
	"sort"

	"github.com/clonelens/clonelens/internal/abi"
)

// Profile is the comparable digest of one contract interface: its ordered
// signature lists, sorted distinct selector set, and 64-bit fingerprint.
type Profile struct {
	File      string
	NameHint  string
	Functions []string
	Events    []string
	Selectors []string
	Simhash   uint64
}

// BuildProfile extracts the comparable digest from one interface. The
// Functions list keeps source order and includes the pseudo-signatures of
// constructor/fallback/receive members; selectors are computed for
// function members only.
func BuildProfile(iface abi.Interface) Profile {
	fns := make([]string, 0)
	evs := make([]string, 0)
	selSet := make(map[string]bool)

	for _, m := range iface.Members {
		switch {
		case m.IsFunction():
			sig := m.Signature()
			fns = append(fns, sig)
			selSet[abi.Selector(sig)] = true
		case m.Kind == abi.KindEvent:
			evs = append(evs, m.Signature())
		case m.IsPseudo():
			fns = append(fns, m.Signature())
		}
	}

	selectors := make([]string, 0, len(selSet))
	for sel := range selSet {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	return Profile{
		File:      iface.Identifier,
		NameHint:  iface.NameHint,
		Functions: fns,
		Events:    evs,
		Selectors: selectors,
		Simhash:   Simhash64(Tokenize(iface)),
	}
}
