package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yonster100/brainrot/pkg/model"
)

// compareSide identifies which selector has keyboard focus.
type compareSide int

const (
	sideLeft compareSide = iota
	sideRight
)

// CompareModel is the two-show head-to-head view. Both selections default to
// the first two records so the initial comparison is always valid. Every
// metric row scores higher-wins, capture factors included; the summary
// winner compares overall scores directly.
type CompareModel struct {
	shows []model.ShowRecord

	left    Dropdown
	right   Dropdown
	focused compareSide

	width  int
	height int
	theme  Theme
}

func NewCompareModel(shows []model.ShowRecord, theme Theme) CompareModel {
	names := make([]string, len(shows))
	for i := range shows {
		names[i] = shows[i].TVShow
	}

	left := NewDropdown(names, "Select a show...", theme)
	right := NewDropdown(names, "Select a show...", theme)
	if len(names) > 1 {
		right.Select(1)
	}

	return CompareModel{
		shows: shows,
		left:  left,
		right: right,
		theme: theme,
	}
}

func (c *CompareModel) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Left returns the record behind the left selector.
func (c *CompareModel) Left() *model.ShowRecord { return c.record(&c.left) }

// Right returns the record behind the right selector.
func (c *CompareModel) Right() *model.ShowRecord { return c.record(&c.right) }

func (c *CompareModel) record(d *Dropdown) *model.ShowRecord {
	i := d.SelectedIndex()
	if i < 0 || i >= len(c.shows) {
		return nil
	}
	rec := c.shows[i]
	return &rec
}

func (c *CompareModel) focusedDropdown() *Dropdown {
	if c.focused == sideRight {
		return &c.right
	}
	return &c.left
}

func (c *CompareModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	d := c.focusedDropdown()

	if d.Open() {
		switch keyMsg.String() {
		case "j", "down":
			d.MoveDown()
		case "k", "up":
			d.MoveUp()
		case "enter":
			d.SelectHighlighted()
		case "esc":
			d.Close()
		}
		return nil
	}

	switch keyMsg.String() {
	case "tab", "h", "l", "left", "right":
		if c.focused == sideLeft {
			c.focused = sideRight
		} else {
			c.focused = sideLeft
		}
	case "enter", " ":
		d.ToggleOpen()
	}
	return nil
}

func (c *CompareModel) View() string {
	t := c.theme

	left, right := c.Left(), c.Right()
	if left == nil || right == nil {
		return t.Renderer.NewStyle().Foreground(t.Muted).Render("  pick two shows to compare")
	}

	selectorWidth := c.width/2 - 4
	if selectorWidth < 20 {
		selectorWidth = 20
	}

	leftSel := c.left.View(selectorWidth)
	rightSel := c.right.View(selectorWidth)
	focusMark := t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render("▸ ")
	blank := "  "
	if c.focused == sideLeft {
		leftSel = lipgloss.JoinHorizontal(lipgloss.Top, focusMark, leftSel)
		rightSel = lipgloss.JoinHorizontal(lipgloss.Top, blank, rightSel)
	} else {
		leftSel = lipgloss.JoinHorizontal(lipgloss.Top, blank, leftSel)
		rightSel = lipgloss.JoinHorizontal(lipgloss.Top, focusMark, rightSel)
	}
	selectors := lipgloss.JoinHorizontal(lipgloss.Top, leftSel, " vs ", rightSel)

	var rows []string
	rows = append(rows, c.renderOverallRow(left, right))
	for _, m := range model.Metrics {
		rows = append(rows, c.renderMetricRow(m, left, right))
	}

	hint := t.Renderer.NewStyle().
		Foreground(t.Secondary).
		Render(" tab: switch side  enter: pick show")

	return lipgloss.JoinVertical(lipgloss.Left,
		selectors,
		"",
		strings.Join(rows, "\n"),
		"",
		hint,
	)
}

const compareBarWidth = 12

func (c *CompareModel) renderMetricRow(m model.Metric, left, right *model.ShowRecord) string {
	t := c.theme

	lv, rv := m.Value(left), m.Value(right)
	outcome := model.CompareMetric(m, left, right)

	barColor := t.Good
	if m.Capture {
		barColor = t.Concerning
	}

	leftBar := RenderProgress(lv, 10, compareBarWidth, barColor, t)
	rightBar := RenderProgress(rv, 10, compareBarWidth, barColor, t)

	name := t.Renderer.NewStyle().
		Foreground(t.Subtext).
		Width(20).
		Align(lipgloss.Center).
		Render(m.Name)

	return fmt.Sprintf(" %s %4.1f %s %s %s %4.1f %s",
		leftBar, lv, c.winnerMark(outcome, model.OutcomeLeft),
		name,
		c.winnerMark(outcome, model.OutcomeRight), rv, rightBar)
}

func (c *CompareModel) renderOverallRow(left, right *model.ShowRecord) string {
	t := c.theme

	outcome := model.CompareOverall(left, right)

	verdict := "tie"
	switch outcome {
	case model.OutcomeLeft:
		verdict = left.TVShow + " wins"
	case model.OutcomeRight:
		verdict = right.TVShow + " wins"
	}

	leftScore := t.Renderer.NewStyle().
		Foreground(t.LabelColor(left.Level())).
		Bold(true).
		Render(formatScore(left.Notes))
	rightScore := t.Renderer.NewStyle().
		Foreground(t.LabelColor(right.Level())).
		Bold(true).
		Render(formatScore(right.Notes))

	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Render(fmt.Sprintf("Overall: %s  vs  %s  —  %s", leftScore, rightScore, verdict))
}

// winnerMark renders the crown for side when it won the row.
func (c *CompareModel) winnerMark(outcome, side model.Outcome) string {
	if outcome == side {
		return c.theme.Renderer.NewStyle().Foreground(c.theme.Excellent).Render("♛")
	}
	return " "
}
