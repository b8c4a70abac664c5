package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yonster100/brainrot/pkg/query"
)

func newTestShell(t *testing.T) Model {
	t.Helper()
	m := NewModel(testShows(), query.SortTopRated)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func TestShellNumberKeysSwitchTabs(t *testing.T) {
	m := newTestShell(t)

	for i, k := range []string{"1", "2", "3", "4"} {
		updated, _ := m.Update(key(k))
		m = updated.(Model)
		if m.ActiveTab() != i {
			t.Fatalf("key %q activated tab %d, want %d", k, m.ActiveTab(), i)
		}
	}
}

func TestShellReselectingActiveTabIsNoOp(t *testing.T) {
	m := newTestShell(t)

	updated, _ := m.Update(key("2"))
	m = updated.(Model)
	seq := m.tabTooltip.seq

	updated, cmd := m.Update(key("2"))
	m = updated.(Model)
	if m.ActiveTab() != TabDatabase {
		t.Fatalf("reselect changed active tab to %d", m.ActiveTab())
	}
	if cmd != nil {
		t.Fatalf("reselect produced a command")
	}
	if m.tabTooltip.seq != seq {
		t.Fatalf("reselect re-armed the tab tooltip")
	}
}

func TestShellTabKeyCyclesForwardAndBack(t *testing.T) {
	m := newTestShell(t)

	updated, _ := m.Update(key("tab"))
	m = updated.(Model)
	if m.ActiveTab() != TabDatabase {
		t.Fatalf("tab moved to %d, want database", m.ActiveTab())
	}

	updated, _ = m.Update(key("["))
	m = updated.(Model)
	if m.ActiveTab() != TabBrowse {
		t.Fatalf("[ moved to %d, want browse", m.ActiveTab())
	}

	// Wraps around backwards from the first tab.
	updated, _ = m.Update(key("["))
	m = updated.(Model)
	if m.ActiveTab() != TabAbout {
		t.Fatalf("[ from first tab moved to %d, want about", m.ActiveTab())
	}
}

func TestShellQuitConfirmFlow(t *testing.T) {
	m := newTestShell(t)

	updated, _ := m.Update(key("q"))
	m = updated.(Model)
	if !m.showQuitConfirm {
		t.Fatalf("expected quit confirm after q")
	}

	// Any non-confirm key cancels.
	updated, cmd := m.Update(key("x"))
	m = updated.(Model)
	if m.showQuitConfirm {
		t.Fatalf("expected quit confirm dismissed")
	}
	if cmd != nil {
		t.Fatalf("cancel produced a command")
	}

	updated, _ = m.Update(key("esc"))
	m = updated.(Model)
	updated, cmd = m.Update(key("y"))
	_ = updated
	if cmd == nil {
		t.Fatalf("expected quit command after confirming")
	}
}

func TestShellHelpOverlayToggles(t *testing.T) {
	m := newTestShell(t)

	updated, _ := m.Update(key("?"))
	m = updated.(Model)
	if !m.showHelp {
		t.Fatalf("expected help overlay after ?")
	}
	updated, _ = m.Update(key("j"))
	m = updated.(Model)
	if m.showHelp {
		t.Fatalf("expected help overlay dismissed by any key")
	}
}

func TestShellTabHintTooltipLifecycle(t *testing.T) {
	m := newTestShell(t)

	// Hints off: switching tabs arms nothing.
	updated, cmd := m.Update(key("2"))
	m = updated.(Model)
	if cmd != nil {
		t.Fatalf("tab switch armed a tooltip with hints off")
	}

	updated, _ = m.Update(key("1"))
	m = updated.(Model)
	updated, _ = m.Update(key("t"))
	m = updated.(Model)
	if !m.hints.Active() {
		t.Fatalf("expected hints toggle on after t")
	}

	updated, cmd = m.Update(key("3"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("expected arm command from tab switch with hints on")
	}
	if m.tabTooltip.Visible() {
		t.Fatalf("tooltip visible before delay elapsed")
	}

	updated, _ = m.Update(TooltipShowMsg{Seq: m.tabTooltip.seq})
	m = updated.(Model)
	if !m.tabTooltip.Visible() {
		t.Fatalf("tooltip not shown after held focus")
	}
	if m.tabTooltip.Text != tabs[TabCompare].desc {
		t.Fatalf("tooltip text = %q, want compare hint", m.tabTooltip.Text)
	}

	// Switching away hides and re-arms for the new tab.
	updated, _ = m.Update(key("4"))
	m = updated.(Model)
	if m.tabTooltip.Visible() {
		t.Fatalf("tooltip still visible after leaving the tab")
	}
}

func TestShellRoutesKeysToActivePanel(t *testing.T) {
	m := newTestShell(t)

	// Sort cycling is a browse concern; the shell must pass it through.
	updated, _ := m.Update(key("s"))
	m = updated.(Model)
	if m.browse.sortMode != query.SortWorstRated {
		t.Fatalf("browse sortMode = %v, want worst rated after routed s", m.browse.sortMode)
	}

	updated, _ = m.Update(key("2"))
	m = updated.(Model)
	updated, _ = m.Update(key("v"))
	m = updated.(Model)
	if m.database.Mode() != ViewGrid {
		t.Fatalf("database mode = %v, want grid after routed v", m.database.Mode())
	}
}

func TestShellDetailCapturesEscFromQuit(t *testing.T) {
	m := newTestShell(t)

	updated, _ := m.Update(key("enter"))
	m = updated.(Model)
	if !m.browse.InDetail() {
		t.Fatalf("expected browse detail after enter")
	}

	// esc inside detail goes back to the list instead of prompting to quit.
	updated, _ = m.Update(key("esc"))
	m = updated.(Model)
	if m.showQuitConfirm {
		t.Fatalf("esc in detail raised the quit confirm")
	}
	if m.browse.InDetail() {
		t.Fatalf("esc did not leave the detail view")
	}
}

func TestShellInitialSortApplied(t *testing.T) {
	m := NewModel(testShows(), query.SortByName)
	if m.browse.sortMode != query.SortByName {
		t.Fatalf("initial sortMode = %v, want by name", m.browse.sortMode)
	}
	if got := m.browse.Selected(); got == nil || got.TVShow != "Blipz" {
		t.Fatalf("first by-name record = %v, want Blipz", got)
	}
}
