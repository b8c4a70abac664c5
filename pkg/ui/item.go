package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yonster100/brainrot/pkg/model"
)

// ShowItem adapts a ShowRecord for the bubbles list.
type ShowItem struct {
	Show model.ShowRecord
}

func (i ShowItem) FilterValue() string { return i.Show.TVShow }

// formatScore renders an overall score for display, N/A for the unrated.
func formatScore(notes *float64) string {
	if notes == nil {
		return "N/A"
	}
	return fmt.Sprintf("%+.1f", *notes)
}

// ShowDelegate renders one catalog row: band icon, score, level, name.
type ShowDelegate struct {
	Theme Theme
}

func (d ShowDelegate) Height() int  { return 1 }
func (d ShowDelegate) Spacing() int { return 0 }

func (d ShowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d ShowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(ShowItem)
	if !ok {
		return
	}
	t := d.Theme
	rec := si.Show
	level := rec.Level()

	badge := t.Renderer.NewStyle().
		Foreground(t.LabelColor(level)).
		Width(7).
		Render(formatScore(rec.Notes))
	icon := t.Renderer.NewStyle().
		Foreground(t.LabelColor(level)).
		Render(t.LabelIcon(level))
	band := t.Renderer.NewStyle().
		Foreground(t.Subtext).
		Width(15).
		Render(string(level))

	row := fmt.Sprintf("%s %s %s %s", icon, badge, band, rec.TVShow)

	if index == m.Index() {
		fmt.Fprint(w, t.Selected.Render(row))
		return
	}
	fmt.Fprint(w, t.Base.PaddingLeft(2).Render(row))
}
