package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TooltipDelay is how long focus must rest on the anchor before the tooltip
// shows.
const TooltipDelay = 500 * time.Millisecond

// TooltipShowMsg fires when a tooltip's arm timer elapses. Seq ties the
// message to the arming that scheduled it; a stale Seq is ignored.
type TooltipShowMsg struct {
	Seq int
}

// Tooltip shows Text after focus has rested on its anchor for TooltipDelay.
// Leaving before the timer fires cancels the pending show; leaving while
// visible hides immediately.
type Tooltip struct {
	Text string

	visible bool
	armed   bool
	seq     int
	theme   Theme
}

func NewTooltip(text string, theme Theme) Tooltip {
	return Tooltip{Text: text, theme: theme}
}

// Enter arms the show timer and returns the command that will fire it.
func (t *Tooltip) Enter() tea.Cmd {
	t.seq++
	t.armed = true
	seq := t.seq
	return tea.Tick(TooltipDelay, func(time.Time) tea.Msg {
		return TooltipShowMsg{Seq: seq}
	})
}

// Leave cancels any pending show and hides the tooltip immediately. Bumping
// seq invalidates a tick already in flight.
func (t *Tooltip) Leave() {
	t.seq++
	t.armed = false
	t.visible = false
}

// Advance handles a fired timer. Only the tick from the latest arming may
// show the tooltip.
func (t *Tooltip) Advance(msg TooltipShowMsg) {
	if t.armed && msg.Seq == t.seq {
		t.visible = true
		t.armed = false
	}
}

func (t *Tooltip) Visible() bool { return t.visible }

func (t *Tooltip) View() string {
	if !t.visible {
		return ""
	}
	th := t.theme
	return th.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Secondary).
		Foreground(th.Subtext).
		Padding(0, 1).
		Render(t.Text)
}
