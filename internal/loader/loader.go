package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clonelens/clonelens/internal/abi"
)

// ErrUnrecognizedFormat marks a document that is none of the accepted ABI
// shapes.
var ErrUnrecognizedFormat = errors.New("unrecognized ABI format")

// memberDoc mirrors one raw ABI entry. Type is a pointer so an absent kind
// (defaults to function) can be told apart from an explicit empty string
// (matches nothing downstream).
type memberDoc struct {
	Type            *string     `json:"type"`
	Name            string      `json:"name"`
	Inputs          []abi.Input `json:"inputs"`
	StateMutability string      `json:"stateMutability"`
}

// Parse extracts ABI members from any of the accepted document shapes:
// a bare member array, an object carrying "abi": [...], or the
// Etherscan-style {"result": "<json string>"} envelope.
func Parse(data []byte) ([]abi.Member, error) {
	var arr []memberDoc
	if err := json.Unmarshal(data, &arr); err == nil {
		return convert(arr), nil
	}

	var doc struct {
		ABI    []memberDoc `json:"abi"`
		Result string      `json:"result"`
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		if doc.ABI != nil {
			return convert(doc.ABI), nil
		}
		if doc.Result != "" {
			var inner []memberDoc
			if err := json.Unmarshal([]byte(doc.Result), &inner); err == nil {
				return convert(inner), nil
			}
		}
	}

	return nil, ErrUnrecognizedFormat
}

func convert(docs []memberDoc) []abi.Member {
	members := make([]abi.Member, 0, len(docs))
	for _, d := range docs {
		kind := abi.KindFunction
		if d.Type != nil {
			kind = *d.Type
		}
		members = append(members, abi.Member{
			Kind:            kind,
			Name:            d.Name,
			Inputs:          d.Inputs,
			StateMutability: d.StateMutability,
		})
	}
	return members
}

// LoadFile reads one ABI file into an interface model. The identifier is
// the file's base name, the name hint the base name without extension.
func LoadFile(path string) (abi.Interface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return abi.Interface{}, fmt.Errorf("failed to read ABI file: %w", err)
	}

	members, err := Parse(data)
	if err != nil {
		return abi.Interface{}, fmt.Errorf("%w: %s", err, path)
	}

	base := filepath.Base(path)
	return abi.Interface{
		Identifier: base,
		NameHint:   strings.TrimSuffix(base, filepath.Ext(base)),
		Members:    members,
	}, nil
}

// LoadFiles loads every path in order, failing on the first unreadable or
// unrecognized file.
func LoadFiles(paths []string) ([]abi.Interface, error) {
	ifaces := make([]abi.Interface, 0, len(paths))
	for _, p := range paths {
		iface, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces, nil
}

// ExpandPaths expands glob patterns into file paths. Arguments that match
// no pattern but name an existing file are kept as-is; everything else is
// dropped silently.
func ExpandPaths(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if matches, err := filepath.Glob(p); err == nil && len(matches) > 0 {
			out = append(out, matches...)
			continue
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			out = append(out, p)
		}
	}
	return out
}
