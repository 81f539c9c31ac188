package abi

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes data with the pre-NIST Keccak-256 variant used for
// contract selectors.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// Selector derives the 4-byte dispatch selector for a canonical function
// signature, rendered as 0x followed by 8 lowercase hex digits. Only
// function members have selectors.
func Selector(signature string) string {
	sum := Keccak256([]byte(signature))
	return "0x" + hex.EncodeToString(sum[:4])
}
