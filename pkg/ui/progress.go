package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderProgress draws a horizontal bar for value out of max, width cells
// wide. The fill ratio is clamped to [0,1] so out-of-range values render a
// full or empty bar rather than overflowing.
func RenderProgress(value, max float64, width int, color lipgloss.AdaptiveColor, theme Theme) string {
	if width < 1 {
		width = 1
	}

	ratio := 0.0
	if max > 0 {
		ratio = value / max
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	bar := theme.Renderer.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := theme.Renderer.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled))
	return bar + rest
}
