// Package export renders the catalog as a Markdown report, for sharing the
// ratings outside the TUI.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/yonster100/brainrot/pkg/model"
	"github.com/yonster100/brainrot/pkg/query"
	"github.com/yonster100/brainrot/pkg/stats"
)

// Markdown renders a full catalog report: summary, then a table sorted from
// best to worst with the unrated at the bottom.
func Markdown(shows []model.ShowRecord) string {
	var sb strings.Builder

	sb.WriteString("# Brainrot Catalog\n\n")

	sum := stats.Summarize(shows)
	sb.WriteString(fmt.Sprintf("%d shows, %d rated", sum.Total, sum.Rated))
	if sum.HasMean {
		sb.WriteString(fmt.Sprintf(", mean score %.1f", sum.MeanNotes))
	}
	sb.WriteString("\n\n")

	if len(sum.Distribution) > 0 {
		sb.WriteString("| Level | Shows |\n|---|---|\n")
		for _, l := range append(append([]model.Label{}, model.Levels...), model.LabelNA) {
			if n := sum.Distribution[l]; n > 0 {
				sb.WriteString(fmt.Sprintf("| %s | %d |\n", l, n))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("| Show | Score | Level | Capture | Nutrition |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, rec := range query.SortShows(shows, query.SortTopRated) {
		score := "N/A"
		if rec.Notes != nil {
			score = fmt.Sprintf("%+.1f", *rec.Notes)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.1f | %.1f |\n",
			rec.TVShow, score, rec.Level(), rec.CognitiveCapture, rec.CognitiveNutrition))
	}

	return sb.String()
}

// WriteMarkdown writes the report to path.
func WriteMarkdown(shows []model.ShowRecord, path string) error {
	if err := os.WriteFile(path, []byte(Markdown(shows)), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
