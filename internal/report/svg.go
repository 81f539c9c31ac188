package report

import (
	"fmt"
	"os"

	"github.com/clonelens/clonelens/internal/clone"
)

// Badge dot colors by combined score.
const (
	badgeGreen = "#3fb950"
	badgeAmber = "#d29922"
	badgeRed   = "#f85149"
)

const badgeTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="48" role="img" aria-label="clonelens">
  <rect width="800" height="48" fill="#0d1117" rx="8"/>
  <text x="16" y="30" font-family="Segoe UI, Inter, Arial" font-size="16" fill="#e6edf3">
    clonelens: %s ↔ %s  score %.3f
  </text>
  <circle cx="775" cy="24" r="6" fill="%s"/>
</svg>`

// BadgeColor picks the status dot color for a combined score.
func BadgeColor(score float64) string {
	if score >= 0.85 {
		return badgeGreen
	}
	if score >= 0.6 {
		return badgeAmber
	}
	return badgeRed
}

// WriteBadge writes a small SVG badge for the closest pair.
func WriteBadge(path string, best clone.PairReport) error {
	svg := fmt.Sprintf(badgeTemplate, best.A, best.B, best.Score, BadgeColor(best.Score))
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
