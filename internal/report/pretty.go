package report

import (
	"github.com/pterm/pterm"

	"github.com/clonelens/clonelens/internal/clone"
)

// topFunctionLines caps how many signatures the per-contract summary shows.
const topFunctionLines = 8

// PrintProfiles renders a human-readable summary of each loaded contract.
func PrintProfiles(profiles []clone.Profile) {
	for _, p := range profiles {
		pterm.DefaultSection.Println(p.File)
		pterm.Printf("  simhash64: %s\n", clone.FormatFingerprint(p.Simhash))
		pterm.Printf("  selectors: %d unique\n", len(p.Selectors))
		pterm.Println("  top functions:")

		shown := p.Functions
		if len(shown) > topFunctionLines {
			shown = shown[:topFunctionLines]
		}
		for _, sig := range shown {
			pterm.Printf("    - %s\n", sig)
		}
		if rest := len(p.Functions) - topFunctionLines; rest > 0 {
			pterm.Printf("    … +%d more\n", rest)
		}
		pterm.Println()
	}
}

// PrintPairs renders the ranked near-clone pairs.
func PrintPairs(pairs []clone.PairReport) {
	pterm.Printf("clonelens — top %d near-clone pairs\n", len(pairs))
	for _, p := range pairs {
		pterm.Printf("  %s  ↔  %s\n", p.A, p.B)
		pterm.Printf("     score=%.3f  simhash=%.3f  selectors=%.3f  common=%d\n",
			p.Score, p.SimhashSim, p.SelectorJaccard, len(p.CommonSelectors))
	}
	if len(pairs) == 0 {
		pterm.Println("  (no pairs)")
	}
}
