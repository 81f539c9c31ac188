package clone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardBoundaries(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard(nil, nil))
	assert.Equal(t, 1.0, Jaccard([]string{}, []string{}))
	assert.Equal(t, 0.0, Jaccard([]string{"0xa9059cbb"}, nil))
	assert.Equal(t, 0.0, Jaccard(nil, []string{"0xa9059cbb"}))
}

func TestJaccardOverlap(t *testing.T) {
	a := []string{"0x01", "0x02", "0x03"}
	b := []string{"0x02", "0x03", "0x04"}
	assert.Equal(t, 0.5, Jaccard(a, b)) // 2 shared / 4 union

	assert.Equal(t, 1.0, Jaccard(a, a))
	assert.Equal(t, 0.0, Jaccard(a, []string{"0x09"}))
}

func TestJaccardIgnoresDuplicates(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard([]string{"0x01", "0x01"}, []string{"0x01"}))
}

func TestCommonSelectors(t *testing.T) {
	a := []string{"0x03", "0x01", "0x02"}
	b := []string{"0x02", "0x04", "0x03"}
	assert.Equal(t, []string{"0x02", "0x03"}, commonSelectors(a, b))
	assert.Empty(t, commonSelectors(a, []string{"0x09"}))
}

func TestCompareSelfSimilarity(t *testing.T) {
	p := BuildProfile(erc20Interface())
	rep := Compare(p, p)

	assert.Equal(t, 1.0, rep.SimhashSim)
	assert.Equal(t, 1.0, rep.SelectorJaccard)
	assert.Equal(t, 1.0, rep.Score)
	assert.Equal(t, p.Selectors, rep.CommonSelectors)
	assert.Equal(t, 0, rep.OnlyA)
	assert.Equal(t, 0, rep.OnlyB)
}

func TestCompareSymmetry(t *testing.T) {
	a := BuildProfile(erc20Interface())
	b := BuildProfile(mintInterface())

	ab := Compare(a, b)
	ba := Compare(b, a)

	assert.Equal(t, ab.Score, ba.Score)
	assert.Equal(t, ab.SimhashSim, ba.SimhashSim)
	assert.Equal(t, ab.SelectorJaccard, ba.SelectorJaccard)
	assert.Equal(t, ab.CommonSelectors, ba.CommonSelectors)
	assert.Equal(t, ab.OnlyA, ba.OnlyB)
	assert.Equal(t, ab.OnlyB, ba.OnlyA)
}

func TestCompareDisjointInterfaces(t *testing.T) {
	rep := Compare(BuildProfile(erc20Interface()), BuildProfile(mintInterface()))

	assert.Equal(t, 0.546875, rep.SimhashSim) // hamming 29
	assert.Equal(t, 0.0, rep.SelectorJaccard)
	assert.InDelta(t, 0.328125, rep.Score, 1e-15)
	assert.Empty(t, rep.CommonSelectors)
	assert.Equal(t, 3, rep.OnlyA)
	assert.Equal(t, 1, rep.OnlyB)
}

func TestRankOrdersByScoreThenTieBreaks(t *testing.T) {
	pairs := []PairReport{
		{A: "a", B: "b", Score: 0.8, SelectorJaccard: 0.5, SimhashSim: 0.9},
		{A: "a", B: "c", Score: 0.9, SelectorJaccard: 0.2, SimhashSim: 0.4},
		{A: "b", B: "c", Score: 0.8, SelectorJaccard: 0.7, SimhashSim: 0.1},
		{A: "c", B: "d", Score: 0.8, SelectorJaccard: 0.5, SimhashSim: 0.95},
		{A: "d", B: "e", Score: 0.8, SelectorJaccard: 0.5, SimhashSim: 0.9},
	}

	Rank(pairs)

	order := make([][2]string, 0, len(pairs))
	for _, p := range pairs {
		order = append(order, [2]string{p.A, p.B})
	}
	assert.Equal(t, [][2]string{
		{"a", "c"}, // highest score
		{"b", "c"}, // score tie, higher jaccard
		{"c", "d"}, // jaccard tie, higher simhash
		{"a", "b"}, // full tie with d-e, enumerated first
		{"d", "e"},
	}, order)
}

func TestTopTruncates(t *testing.T) {
	pairs := []PairReport{{A: "a"}, {A: "b"}, {A: "c"}}

	assert.Len(t, Top(pairs, 2), 2)
	assert.Equal(t, "a", Top(pairs, 1)[0].A)
	assert.Len(t, Top(pairs, 3), 3)
	assert.Len(t, Top(pairs, 10), 3)
}
