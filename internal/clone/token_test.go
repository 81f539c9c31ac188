package clone

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clonelens/clonelens/internal/abi"
)

func TestTokenizeWeightTable(t *testing.T) {
	want := []Token{
		{"transfer", 3},
		{"transfer(address,uint256)", 5},
		{"mut:nonpayable", 2},
		{"type:address", 1},
		{"type:uint256", 1},
		{"balanceof", 3},
		{"balanceof(address)", 5},
		{"mut:view", 2},
		{"type:address", 1},
		{"totalsupply", 3},
		{"totalsupply()", 5},
		{"mut:view", 2},
		{"__constructor__(nonpayable)", 3},
		{"ev:transfer", 2},
		{"evsig:transfer(address,address,uint256)", 3},
		{"nfunc:4", 1},
		{"nevent:1", 1},
		{"nsel:3", 1},
	}
	assert.Equal(t, want, Tokenize(erc20Interface()))
}

func TestTokenizeNormalizesAliasedTypes(t *testing.T) {
	iface := abi.Interface{
		Members: []abi.Member{
			{Kind: abi.KindFunction, Name: "f", Inputs: []abi.Input{{Type: "uint"}}},
		},
	}
	tokens := Tokenize(iface)
	assert.Contains(t, tokens, Token{"f(uint256)", 5})
	assert.Contains(t, tokens, Token{"type:uint256", 1})
}

func TestTokenizeCountsDistinctSelectors(t *testing.T) {
	// Two members spelling the same canonical signature collapse into one
	// selector for the nsel counter, while nfunc still counts both.
	iface := abi.Interface{
		Members: []abi.Member{
			{Kind: abi.KindFunction, Name: "f", Inputs: []abi.Input{{Type: "uint"}}},
			{Kind: abi.KindFunction, Name: "f", Inputs: []abi.Input{{Type: "uint256"}}},
		},
	}
	tokens := Tokenize(iface)
	assert.Contains(t, tokens, Token{"nfunc:2", 1})
	assert.Contains(t, tokens, Token{"nsel:1", 1})
}

func TestTokenizeSkipsUnknownKinds(t *testing.T) {
	iface := abi.Interface{
		Members: []abi.Member{
			{Kind: "error", Name: "NotOwner"},
		},
	}
	want := []Token{
		{"nfunc:0", 1},
		{"nevent:0", 1},
		{"nsel:0", 1},
	}
	assert.Equal(t, want, Tokenize(iface))
}

func TestTokenizeDefaultsMissingFields(t *testing.T) {
	iface := abi.Interface{
		Members: []abi.Member{
			{Kind: abi.KindFunction},
		},
	}
	tokens := Tokenize(iface)
	assert.Contains(t, tokens, Token{"", 3})
	assert.Contains(t, tokens, Token{"()", 5})
	assert.Contains(t, tokens, Token{"mut:nonpayable", 2})
}
