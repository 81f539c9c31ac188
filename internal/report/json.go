package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clonelens/clonelens/internal/clone"
)

// scanView is the on-disk layout of one contract fingerprint.
type scanView struct {
	File      string   `json:"file"`
	NameHint  string   `json:"name_hint"`
	Simhash64 string   `json:"simhash64"`
	Selectors []string `json:"selectors"`
	Functions []string `json:"functions"`
	Events    []string `json:"events"`
}

// WriteProfilesJSON writes per-contract fingerprints as indented JSON.
func WriteProfilesJSON(path string, profiles []clone.Profile) error {
	views := make([]scanView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, scanView{
			File:      p.File,
			NameHint:  p.NameHint,
			Simhash64: clone.FormatFingerprint(p.Simhash),
			Selectors: p.Selectors,
			Functions: p.Functions,
			Events:    p.Events,
		})
	}
	return writeJSON(path, views)
}

// WritePairsJSON writes ranked pairs as indented JSON.
func WritePairsJSON(path string, pairs []clone.PairReport) error {
	return writeJSON(path, pairs)
}

// RenderPairsJSON renders ranked pairs as indented JSON for stdout use.
func RenderPairsJSON(pairs []clone.PairReport) (string, error) {
	data, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode pairs: %w", err)
	}
	return string(data), nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
