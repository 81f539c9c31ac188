package abi

import (
	"fmt"
	"strings"
)

// NormalizeType canonicalizes the parameter type aliases Solidity accepts
// in source but canonical signatures do not. Only the bare aliases are
// rewritten; sized and composite types pass through unchanged.
func NormalizeType(t string) string {
	switch t {
	case "uint":
		return "uint256"
	case "int":
		return "int256"
	}
	return t
}

// Signature builds the canonical signature name(type1,type2,...) from a
// member name and its inputs, with each input type normalized. An absent
// name yields the form of an anonymous signature such as "(uint256)".
func Signature(name string, inputs []Input) string {
	types := make([]string, len(inputs))
	for i, in := range inputs {
		types[i] = NormalizeType(in.Type)
	}
	return name + "(" + strings.Join(types, ",") + ")"
}

// PseudoSignature builds the synthetic signature for constructor,
// fallback and receive members: __<kind>__(<mutability>). These members
// have no conventional signature but still shape the interface surface.
func PseudoSignature(kind, mutability string) string {
	if mutability == "" {
		mutability = DefaultMutability
	}
	return fmt.Sprintf("__%s__(%s)", kind, mutability)
}

// Signature returns the canonical signature for function and event
// members, and the pseudo-signature for the special members.
func (m Member) Signature() string {
	if m.IsPseudo() {
		return PseudoSignature(m.Kind, m.StateMutability)
	}
	return Signature(m.Name, m.Inputs)
}
