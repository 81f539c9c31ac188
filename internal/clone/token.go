package clone

import (
	"fmt"
	"strings"

	"github.com/clonelens/clonelens/internal/abi"
)

// Token weights bias the fingerprint toward exact-signature matches while
// still letting looser structural features vote. Tunable in principle, but
// changing them invalidates every stored fingerprint.
const (
	weightFnName     = 3
	weightFnSig      = 5
	weightMutability = 2
	weightInputType  = 1
	weightEvName     = 2
	weightEvSig      = 3
	weightCounter    = 1
)

// Token is one weighted feature extracted from an interface.
type Token struct {
	Text   string
	Weight int
}

// Tokenize converts an interface into the weighted token multiset consumed
// by Simhash64. Tokens are emitted functions first, then events, then the
// global counters, but the fingerprint does not depend on emission order.
// Repeated identical tokens are kept; each vote counts.
func Tokenize(iface abi.Interface) []Token {
	tokens := make([]Token, 0, 4*len(iface.Members)+3)

	memberCount := 0
	eventCount := 0
	selectors := make(map[string]bool)

	for _, m := range iface.Members {
		switch {
		case m.IsFunction():
			sig := m.Signature()
			tokens = append(tokens,
				Token{Text: strings.ToLower(m.Name), Weight: weightFnName},
				Token{Text: strings.ToLower(sig), Weight: weightFnSig},
				Token{Text: "mut:" + m.Mutability(), Weight: weightMutability},
			)
			for _, in := range m.Inputs {
				tokens = append(tokens, Token{Text: "type:" + abi.NormalizeType(in.Type), Weight: weightInputType})
			}
			selectors[abi.Selector(sig)] = true
			memberCount++
		case m.IsPseudo():
			// Constructor/fallback/receive have no selector but still
			// shape the fingerprint through their synthetic signature.
			tokens = append(tokens, Token{Text: m.Signature(), Weight: weightFnName})
			memberCount++
		}
	}

	for _, m := range iface.Members {
		if m.Kind != abi.KindEvent {
			continue
		}
		tokens = append(tokens,
			Token{Text: "ev:" + strings.ToLower(m.Name), Weight: weightEvName},
			Token{Text: "evsig:" + strings.ToLower(m.Signature()), Weight: weightEvSig},
		)
		eventCount++
	}

	tokens = append(tokens,
		Token{Text: fmt.Sprintf("nfunc:%d", memberCount), Weight: weightCounter},
		Token{Text: fmt.Sprintf("nevent:%d", eventCount), Weight: weightCounter},
		Token{Text: fmt.Sprintf("nsel:%d", len(selectors)), Weight: weightCounter},
	)

	return tokens
}
