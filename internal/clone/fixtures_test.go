package clone

import (
	"github.com/clonelens/clonelens/internal/abi"
)

// Minimal ERC-20 style interface used across the package tests. The
// expected fingerprint and selectors were computed with an independent
// Keccak-256 implementation.
func erc20Interface() abi.Interface {
	return abi.Interface{
		Identifier: "erc20.json",
		NameHint:   "erc20",
		Members: []abi.Member{
			{Kind: abi.KindFunction, Name: "transfer", Inputs: []abi.Input{{Type: "address"}, {Type: "uint256"}}, StateMutability: "nonpayable"},
			{Kind: abi.KindFunction, Name: "balanceOf", Inputs: []abi.Input{{Type: "address"}}, StateMutability: "view"},
			{Kind: abi.KindFunction, Name: "totalSupply", StateMutability: "view"},
			{Kind: abi.KindEvent, Name: "Transfer", Inputs: []abi.Input{{Type: "address"}, {Type: "address"}, {Type: "uint256"}}},
			{Kind: abi.KindConstructor, Inputs: []abi.Input{{Type: "uint256"}}},
		},
	}
}

const erc20Fingerprint = uint64(0xc41109ada1f34958)

func mintInterface() abi.Interface {
	return abi.Interface{
		Identifier: "mint.json",
		NameHint:   "mint",
		Members: []abi.Member{
			{Kind: abi.KindFunction, Name: "mint", Inputs: []abi.Input{{Type: "address"}}, StateMutability: "nonpayable"},
		},
	}
}

const mintFingerprint = uint64(0xa2f13039c0666837)
