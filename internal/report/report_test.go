package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clonelens/clonelens/internal/clone"
)

func fixturePairs() []clone.PairReport {
	return []clone.PairReport{{
		A:               "a.json",
		B:               "b.json",
		AName:           "a",
		BName:           "b",
		SimhashSim:      0.5,
		SelectorJaccard: 1,
		Score:           0.75,
		CommonSelectors: []string{"0xa9059cbb"},
		OnlyA:           1,
		OnlyB:           0,
	}}
}

func TestWriteProfilesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json")
	profiles := []clone.Profile{{
		File:      "t.json",
		NameHint:  "t",
		Functions: []string{"transfer(address,uint256)"},
		Events:    []string{},
		Selectors: []string{"0xa9059cbb"},
		Simhash:   0xc41109ada1f34958,
	}}

	require.NoError(t, WriteProfilesJSON(path, profiles))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "file": "t.json",
    "name_hint": "t",
    "simhash64": "0xc41109ada1f34958",
    "selectors": [
      "0xa9059cbb"
    ],
    "functions": [
      "transfer(address,uint256)"
    ],
    "events": []
  }
]`, string(data))
}

func TestWritePairsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.json")
	require.NoError(t, WritePairsJSON(path, fixturePairs()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "a": "a.json",
    "b": "b.json",
    "a_name": "a",
    "b_name": "b",
    "simhash_sim": 0.5,
    "selector_jaccard": 1,
    "score": 0.75,
    "common_selectors": [
      "0xa9059cbb"
    ],
    "only_a": 1,
    "only_b": 0
  }
]`, string(data))
}

func TestRenderPairsJSONMatchesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.json")
	require.NoError(t, WritePairsJSON(path, fixturePairs()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	rendered, err := RenderPairsJSON(fixturePairs())
	require.NoError(t, err)
	assert.Equal(t, string(data), rendered)
}

func TestWritePairsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.csv")
	require.NoError(t, WritePairsCSV(path, fixturePairs()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"a,b,score,simhash_sim,selector_jaccard,common_selectors,only_a,only_b\r\n"+
			"a.json,b.json,0.750,0.500,1.000,1,1,0\r\n",
		string(data))
}

func TestBadgeColor(t *testing.T) {
	assert.Equal(t, badgeGreen, BadgeColor(0.85))
	assert.Equal(t, badgeGreen, BadgeColor(0.99))
	assert.Equal(t, badgeAmber, BadgeColor(0.6))
	assert.Equal(t, badgeAmber, BadgeColor(0.84))
	assert.Equal(t, badgeRed, BadgeColor(0.59))
	assert.Equal(t, badgeRed, BadgeColor(0))
}

func TestWriteBadge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.svg")
	require.NoError(t, WriteBadge(path, fixturePairs()[0]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	svg := string(data)

	assert.Contains(t, svg, `width="800" height="48"`)
	assert.Contains(t, svg, `fill="#0d1117"`)
	assert.Contains(t, svg, "clonelens: a.json ↔ b.json  score 0.750")
	assert.Contains(t, svg, `fill="#d29922"`)
}
