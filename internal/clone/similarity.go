package clone

import "sort"

// Score blend between the fuzzy structural signal and the exact selector
// overlap. Selector sets diverge sharply on trivial renames while
// fingerprints degrade gracefully, so the fingerprint carries more weight.
const (
	fingerprintWeight = 0.6
	selectorWeight    = 0.4
)

// PairReport holds the comparison outcome for one unordered profile pair.
type PairReport struct {
	A               string   `json:"a"`
	B               string   `json:"b"`
	AName           string   `json:"a_name"`
	BName           string   `json:"b_name"`
	SimhashSim      float64  `json:"simhash_sim"`
	SelectorJaccard float64  `json:"selector_jaccard"`
	Score           float64  `json:"score"`
	CommonSelectors []string `json:"common_selectors"`
	OnlyA           int      `json:"only_a"`
	OnlyB           int      `json:"only_b"`
}

// Jaccard computes set overlap between two selector lists.
func Jaccard(a, b []string) float64 {
	sa := toSet(a)
	sb := toSet(b)

	// Edge Case: two empty sets are identical, exactly one empty is disjoint
	if len(sa) == 0 && len(sb) == 0 {
		return 1.0
	}
	if len(sa) == 0 || len(sb) == 0 {
		return 0.0
	}

	shared := 0
	for s := range sa {
		if sb[s] {
			shared++
		}
	}

	union := len(sa) + len(sb) - shared
	return float64(shared) / float64(union)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

// commonSelectors returns the sorted intersection of two selector lists.
func commonSelectors(a, b []string) []string {
	sb := toSet(b)
	seen := make(map[string]bool)
	common := make([]string, 0)
	for _, s := range a {
		if sb[s] && !seen[s] {
			common = append(common, s)
			seen[s] = true
		}
	}
	sort.Strings(common)
	return common
}

// Compare scores one pair of profiles.
func Compare(a, b Profile) PairReport {
	sim := FingerprintSimilarity(a.Simhash, b.Simhash)
	jac := Jaccard(a.Selectors, b.Selectors)
	common := commonSelectors(a.Selectors, b.Selectors)

	return PairReport{
		A:               a.File,
		B:               b.File,
		AName:           a.NameHint,
		BName:           b.NameHint,
		SimhashSim:      sim,
		SelectorJaccard: jac,
		Score:           fingerprintWeight*sim + selectorWeight*jac,
		CommonSelectors: common,
		OnlyA:           max(0, len(a.Selectors)-len(common)),
		OnlyB:           max(0, len(b.Selectors)-len(common)),
	}
}

// Rank orders pairs best-first: score rules, selector overlap then
// fingerprint similarity break ties. The sort is stable so fully tied
// pairs keep their enumeration order.
func Rank(pairs []PairReport) {
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Score != pairs[j].Score {
			return pairs[i].Score > pairs[j].Score
		}
		if pairs[i].SelectorJaccard != pairs[j].SelectorJaccard {
			return pairs[i].SelectorJaccard > pairs[j].SelectorJaccard
		}
		return pairs[i].SimhashSim > pairs[j].SimhashSim
	})
}

// Top returns at most k ranked pairs.
func Top(pairs []PairReport, k int) []PairReport {
	if k >= len(pairs) {
		return pairs
	}
	return pairs[:k]
}
