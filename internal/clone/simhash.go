package clone

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/clonelens/clonelens/internal/abi"
)

// Fold64 compresses a 256-bit digest into 64 bits by XOR-ing its four
// big-endian chunks, so every digest byte keeps a say in the result.
func Fold64(digest []byte) uint64 {
	return binary.BigEndian.Uint64(digest[0:8]) ^
		binary.BigEndian.Uint64(digest[8:16]) ^
		binary.BigEndian.Uint64(digest[16:24]) ^
		binary.BigEndian.Uint64(digest[24:32])
}

// TokenHash64 maps a token string into the 64-bit fingerprint space.
func TokenHash64(s string) uint64 {
	return Fold64(abi.Keccak256([]byte(s)))
}

// Simhash64 folds a weighted token multiset into a single 64-bit
// fingerprint. Each token votes on all 64 bit positions: +weight where its
// hash carries a 1 bit, -weight where it carries a 0. Bit i of the result
// is set when accumulator i finishes >= 0, so near-identical multisets
// land on near-identical fingerprints.
func Simhash64(tokens []Token) uint64 {
	var acc [64]int
	for _, t := range tokens {
		hv := TokenHash64(t.Text)
		for i := 0; i < 64; i++ {
			if (hv>>i)&1 == 1 {
				acc[i] += t.Weight
			} else {
				acc[i] -= t.Weight
			}
		}
	}

	var fp uint64
	for i := 0; i < 64; i++ {
		if acc[i] >= 0 {
			fp |= 1 << i
		}
	}
	return fp
}

// HammingDistance counts differing bit positions between two fingerprints.
func HammingDistance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// FingerprintSimilarity maps Hamming distance onto [0,1], 1.0 meaning
// identical fingerprints.
func FingerprintSimilarity(a, b uint64) float64 {
	return 1.0 - float64(HammingDistance(a, b))/64.0
}

// FormatFingerprint renders a fingerprint as 0x plus 16 lowercase hex digits.
func FormatFingerprint(fp uint64) string {
	return fmt.Sprintf("0x%016x", fp)
}

// ParseFingerprint reverses FormatFingerprint. The 0x prefix is optional.
func ParseFingerprint(s string) (uint64, error) {
	fp, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fingerprint %q: %w", s, err)
	}
	return fp, nil
}
