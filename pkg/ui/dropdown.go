package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dropdown is a closed-by-default select. Opening shows the option list;
// selecting an option closes the list and emits the chosen value.
type Dropdown struct {
	Options     []string
	Placeholder string
	OnChange    func(value string)

	open        bool
	selected    string
	highlighted int
	theme       Theme
}

// NewDropdown starts closed with the first option selected, or the
// placeholder when there are no options.
func NewDropdown(options []string, placeholder string, theme Theme) Dropdown {
	d := Dropdown{
		Options:     options,
		Placeholder: placeholder,
		selected:    placeholder,
		theme:       theme,
	}
	if len(options) > 0 {
		d.selected = options[0]
	}
	return d
}

func (d *Dropdown) Open() bool { return d.open }

func (d *Dropdown) Selected() string { return d.selected }

// SelectedIndex returns the index of the selected value, -1 while still on
// the placeholder.
func (d *Dropdown) SelectedIndex() int {
	for i, o := range d.Options {
		if o == d.selected {
			return i
		}
	}
	return -1
}

// ToggleOpen flips the open state. Opening positions the highlight on the
// current selection.
func (d *Dropdown) ToggleOpen() {
	d.open = !d.open
	if d.open {
		d.highlighted = 0
		if i := d.SelectedIndex(); i >= 0 {
			d.highlighted = i
		}
	}
}

func (d *Dropdown) Close() { d.open = false }

func (d *Dropdown) MoveDown() {
	if d.open && d.highlighted < len(d.Options)-1 {
		d.highlighted++
	}
}

func (d *Dropdown) MoveUp() {
	if d.open && d.highlighted > 0 {
		d.highlighted--
	}
}

// Select picks option i, closes the list, and emits the value.
func (d *Dropdown) Select(i int) {
	if i < 0 || i >= len(d.Options) {
		return
	}
	d.selected = d.Options[i]
	d.open = false
	if d.OnChange != nil {
		d.OnChange(d.selected)
	}
}

// SelectHighlighted confirms the keyboard highlight.
func (d *Dropdown) SelectHighlighted() {
	d.Select(d.highlighted)
}

func (d *Dropdown) View(width int) string {
	t := d.theme

	arrow := "▼"
	if d.open {
		arrow = "▲"
	}
	trigger := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width).
		Render(d.selected + strings.Repeat(" ", max(1, width-lipgloss.Width(d.selected)-lipgloss.Width(arrow)-2)) + arrow)

	if !d.open {
		return trigger
	}

	itemStyle := t.Renderer.NewStyle().PaddingLeft(1).Width(width)
	highlightStyle := itemStyle.
		Background(t.Highlight).
		Foreground(t.Primary).
		Bold(true)

	var items []string
	for i, o := range d.Options {
		if i == d.highlighted {
			items = append(items, highlightStyle.Render(o))
		} else {
			items = append(items, itemStyle.Render(o))
		}
	}
	menu := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Width(width).
		Render(strings.Join(items, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, trigger, menu)
}
