package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/clonelens/clonelens/internal/clone"
)

// WritePairsCSV writes ranked pairs as CSV. Scores carry three decimals and
// common_selectors is the count, not the list.
func WritePairsCSV(path string, pairs []clone.PairReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.UseCRLF = true

	header := []string{"a", "b", "score", "simhash_sim", "selector_jaccard", "common_selectors", "only_a", "only_b"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range pairs {
		record := []string{
			p.A,
			p.B,
			fmt.Sprintf("%.3f", p.Score),
			fmt.Sprintf("%.3f", p.SimhashSim),
			fmt.Sprintf("%.3f", p.SelectorJaccard),
			strconv.Itoa(len(p.CommonSelectors)),
			strconv.Itoa(p.OnlyA),
			strconv.Itoa(p.OnlyB),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
