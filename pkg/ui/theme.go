package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yonster100/brainrot/pkg/model"
)

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor

	// Score bands
	Excellent    lipgloss.AdaptiveColor
	Good         lipgloss.AdaptiveColor
	Neutral      lipgloss.AdaptiveColor
	Concerning   lipgloss.AdaptiveColor
	HighBrainrot lipgloss.AdaptiveColor
	Unrated      lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Styles
	Base     lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
}

// DefaultTheme returns the standard Dracula-inspired theme (adaptive)
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}, // Purple
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}, // Gray
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"}, // Dim

		Excellent:    lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}, // Green
		Good:         lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}, // Cyan
		Neutral:      lipgloss.AdaptiveColor{Light: "#808000", Dark: "#F1FA8C"}, // Yellow/olive
		Concerning:   lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}, // Orange
		HighBrainrot: lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}, // Red
		Unrated:      lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}, // Gray

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"})

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	return t
}

// LabelColor maps a classification band to its display color. Total over
// every label, the band-to-color bijection of the score model.
func (t Theme) LabelColor(l model.Label) lipgloss.AdaptiveColor {
	switch l {
	case model.LabelExcellent:
		return t.Excellent
	case model.LabelGood:
		return t.Good
	case model.LabelNeutral:
		return t.Neutral
	case model.LabelConcerning:
		return t.Concerning
	case model.LabelHighBrainrot:
		return t.HighBrainrot
	default:
		return t.Unrated
	}
}

// LabelIcon returns the marker glyph shown next to a band.
func (t Theme) LabelIcon(l model.Label) string {
	switch l {
	case model.LabelExcellent:
		return "★"
	case model.LabelGood:
		return "◆"
	case model.LabelNeutral:
		return "•"
	case model.LabelConcerning:
		return "▲"
	case model.LabelHighBrainrot:
		return "☠"
	default:
		return "·"
	}
}
