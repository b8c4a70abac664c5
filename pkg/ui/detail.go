package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/yonster100/brainrot/pkg/imgres"
	"github.com/yonster100/brainrot/pkg/model"
)

// showCardMarkdown builds the Markdown detail card for one show. Both the
// browse and database detail views render it through glamour.
func showCardMarkdown(rec *model.ShowRecord) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", rec.TVShow)
	fmt.Fprintf(&sb, "**Overall:** %s (%s)\n\n", formatScore(rec.Notes), rec.Level())

	poster := imgres.Resolve(rec.Image, nil)
	if poster.Fallback {
		fmt.Fprintf(&sb, "Poster: %s _(unavailable)_\n\n", imgres.Placeholder)
	} else {
		fmt.Fprintf(&sb, "Poster: `%s`\n\n", poster.Path)
	}

	sb.WriteString("## Cognitive Capture\n\n")
	fmt.Fprintf(&sb, "Total: %.1f / 40\n\n", rec.CognitiveCapture)
	for _, m := range model.Metrics {
		if m.Capture {
			fmt.Fprintf(&sb, "- %s: %.1f / 10\n", m.Name, m.Value(rec))
		}
	}

	sb.WriteString("\n## Cognitive Nutrition\n\n")
	fmt.Fprintf(&sb, "Total: %.1f / 40\n\n", rec.CognitiveNutrition)
	for _, m := range model.Metrics {
		if !m.Capture {
			fmt.Fprintf(&sb, "- %s: %.1f / 10\n", m.Name, m.Value(rec))
		}
	}

	return sb.String()
}

// renderShowCard renders the detail card through glamour, falling back to
// the raw markdown when the renderer is unavailable.
func renderShowCard(rec *model.ShowRecord, width int) string {
	md := showCardMarkdown(rec)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
