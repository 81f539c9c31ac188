package abi

// Member kinds as they appear in ABI JSON documents. Documents that omit
// the type field are treated as declaring a function.
const (
	KindFunction    = "function"
	KindEvent       = "event"
	KindConstructor = "constructor"
	KindFallback    = "fallback"
	KindReceive     = "receive"
)

// DefaultMutability is assumed whenever a member omits stateMutability.
const DefaultMutability = "nonpayable"

// Input is a single parameter of a function or event.
type Input struct {
	Type string `json:"type"`
}

// Member is one entry of a contract ABI.
type Member struct {
	Kind            string  `json:"type"`
	Name            string  `json:"name,omitempty"`
	Inputs          []Input `json:"inputs,omitempty"`
	StateMutability string  `json:"stateMutability,omitempty"`
}

// Mutability returns the member's state mutability, defaulting to
// nonpayable when the source document omitted it.
func (m Member) Mutability() string {
	if m.StateMutability == "" {
		return DefaultMutability
	}
	return m.StateMutability
}

// IsFunction reports whether the member dispatches through a selector.
func (m Member) IsFunction() bool {
	return m.Kind == KindFunction
}

// IsPseudo reports whether the member is one of the special members that
// carry no conventional signature (constructor, fallback, receive).
func (m Member) IsPseudo() bool {
	switch m.Kind {
	case KindConstructor, KindFallback, KindReceive:
		return true
	}
	return false
}

// Interface is the canonical in-memory representation of one contract
// interface. Members preserve source declaration order; the fingerprint
// pipeline is order-insensitive but positional display is not.
type Interface struct {
	Identifier string
	NameHint   string
	Members    []Member
}
