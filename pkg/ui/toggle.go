package ui

import "github.com/charmbracelet/lipgloss"

// Toggle is a two-state switch. Each activation flips it and reports the new
// state to OnChange as the literal strings "ON" and "OFF".
type Toggle struct {
	Label    string
	OnChange func(state string)

	active bool
	theme  Theme
}

func NewToggle(label string, theme Theme) Toggle {
	return Toggle{Label: label, theme: theme}
}

// Activate flips the switch and emits the new state.
func (t *Toggle) Activate() {
	t.active = !t.active
	if t.OnChange != nil {
		t.OnChange(t.State())
	}
}

func (t *Toggle) Active() bool { return t.active }

// State returns "ON" or "OFF", the wire form every listener receives.
func (t *Toggle) State() string {
	if t.active {
		return "ON"
	}
	return "OFF"
}

func (t *Toggle) View() string {
	th := t.theme
	knob := "○──"
	color := th.Muted
	if t.active {
		knob = "──●"
		color = th.Excellent
	}
	sw := th.Renderer.NewStyle().Foreground(color).Bold(true).Render("[" + knob + "]")
	label := th.Renderer.NewStyle().Foreground(th.Subtext).Render(" " + t.Label + ": " + t.State())
	return lipgloss.JoinHorizontal(lipgloss.Top, sw, label)
}
