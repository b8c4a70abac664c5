package ui

import (
	"strings"
	"testing"
)

func TestToggleEmitsLiteralStates(t *testing.T) {
	var got []string
	tg := NewToggle("hints", DefaultTheme(nil))
	tg.OnChange = func(state string) { got = append(got, state) }

	tg.Activate()
	tg.Activate()
	tg.Activate()

	want := []string{"ON", "OFF", "ON"}
	if len(got) != len(want) {
		t.Fatalf("expected %d emissions, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("emission %d = %q, want %q", i, got[i], want[i])
		}
	}
	if !tg.Active() {
		t.Errorf("expected toggle active after odd number of activations")
	}
}

func TestDropdownDefaultsToFirstOption(t *testing.T) {
	d := NewDropdown([]string{"Alpha", "Beta", "Gamma"}, "Pick...", DefaultTheme(nil))
	if d.Selected() != "Alpha" {
		t.Errorf("Selected() = %q, want Alpha", d.Selected())
	}
	if d.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", d.SelectedIndex())
	}
}

func TestDropdownEmptyOptionsShowsPlaceholder(t *testing.T) {
	d := NewDropdown(nil, "Pick...", DefaultTheme(nil))
	if d.Selected() != "Pick..." {
		t.Errorf("Selected() = %q, want placeholder", d.Selected())
	}
	if d.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex() = %d, want -1 on placeholder", d.SelectedIndex())
	}
}

func TestDropdownSelectClosesAndEmits(t *testing.T) {
	var emitted []string
	d := NewDropdown([]string{"Alpha", "Beta", "Gamma"}, "Pick...", DefaultTheme(nil))
	d.OnChange = func(v string) { emitted = append(emitted, v) }

	d.ToggleOpen()
	if !d.Open() {
		t.Fatalf("expected dropdown open after ToggleOpen")
	}
	d.MoveDown()
	d.MoveDown()
	d.SelectHighlighted()

	if d.Open() {
		t.Errorf("expected dropdown closed after selection")
	}
	if d.Selected() != "Gamma" {
		t.Errorf("Selected() = %q, want Gamma", d.Selected())
	}
	if len(emitted) != 1 || emitted[0] != "Gamma" {
		t.Errorf("emitted %v, want [Gamma]", emitted)
	}
}

func TestDropdownOpensOnCurrentSelection(t *testing.T) {
	d := NewDropdown([]string{"Alpha", "Beta", "Gamma"}, "Pick...", DefaultTheme(nil))
	d.Select(2)
	d.ToggleOpen()
	if d.highlighted != 2 {
		t.Errorf("highlighted = %d, want 2 (current selection)", d.highlighted)
	}
}

func TestDropdownSelectOutOfRangeIgnored(t *testing.T) {
	var emitted int
	d := NewDropdown([]string{"Alpha"}, "Pick...", DefaultTheme(nil))
	d.OnChange = func(string) { emitted++ }
	d.Select(-1)
	d.Select(5)
	if emitted != 0 {
		t.Errorf("expected no emissions for out-of-range Select, got %d", emitted)
	}
	if d.Selected() != "Alpha" {
		t.Errorf("Selected() = %q, want Alpha unchanged", d.Selected())
	}
}

func TestSearchBarLiveEmitsPerKeystroke(t *testing.T) {
	var emitted []string
	s := NewSearchBar("Search...", []string{"Bluey", "Blipz", "Gizmo Grove"}, EmitLive, DefaultTheme(nil))
	s.OnChange = func(text string) { emitted = append(emitted, text) }
	s.Focus()

	s.Update(key("b"))
	s.Update(key("l"))

	if len(emitted) != 2 || emitted[0] != "b" || emitted[1] != "bl" {
		t.Fatalf("live emissions = %v, want [b bl]", emitted)
	}
	sugs := s.Suggestions()
	if len(sugs) != 2 {
		t.Fatalf("suggestions = %v, want Bluey and Blipz", sugs)
	}
}

func TestSearchBarSubmitModeEmitsOnlyOnEnter(t *testing.T) {
	var emitted []string
	s := NewSearchBar("Search...", []string{"Gizmo Grove"}, EmitSubmit, DefaultTheme(nil))
	s.OnChange = func(text string) { emitted = append(emitted, text) }
	s.Focus()

	s.Update(key("x"))
	if len(emitted) != 0 {
		t.Fatalf("expected no emission before submit, got %v", emitted)
	}
	s.Update(key("enter"))
	if len(emitted) != 1 || emitted[0] != "x" {
		t.Fatalf("submit emissions = %v, want [x]", emitted)
	}
}

func TestSearchBarPickFillsInputAndHidesSuggestions(t *testing.T) {
	var emitted []string
	s := NewSearchBar("Search...", []string{"Bluey", "Blipz"}, EmitSubmit, DefaultTheme(nil))
	s.OnChange = func(text string) { emitted = append(emitted, text) }
	s.Focus()

	s.Update(key("b"))
	s.Update(key("down"))
	s.Update(key("enter"))

	if s.Value() != "Blipz" {
		t.Errorf("Value() = %q, want picked suggestion Blipz", s.Value())
	}
	if len(s.Suggestions()) != 0 {
		t.Errorf("expected suggestions hidden after pick, got %v", s.Suggestions())
	}
	if len(emitted) != 1 || emitted[0] != "Blipz" {
		t.Errorf("emitted %v, want [Blipz]", emitted)
	}
}

func TestSearchBarBlankInputNoSuggestions(t *testing.T) {
	s := NewSearchBar("Search...", []string{"Bluey"}, EmitLive, DefaultTheme(nil))
	s.Focus()
	s.Update(key("b"))
	s.Update(key("backspace"))
	if len(s.Suggestions()) != 0 {
		t.Errorf("expected no suggestions for blank input, got %v", s.Suggestions())
	}
}

func TestTooltipShowsOnlyAfterHeldFocus(t *testing.T) {
	tp := NewTooltip("hint", DefaultTheme(nil))
	tp.Enter()
	if tp.Visible() {
		t.Fatalf("tooltip visible before delay elapsed")
	}
	tp.Advance(TooltipShowMsg{Seq: tp.seq})
	if !tp.Visible() {
		t.Fatalf("tooltip not visible after its own timer fired")
	}
}

func TestTooltipLeaveBeforeDelayCancels(t *testing.T) {
	tp := NewTooltip("hint", DefaultTheme(nil))
	tp.Enter()
	staleSeq := tp.seq
	tp.Leave()
	tp.Advance(TooltipShowMsg{Seq: staleSeq})
	if tp.Visible() {
		t.Fatalf("tooltip shown by a tick canceled before the delay elapsed")
	}
}

func TestTooltipReenterInvalidatesEarlierTimer(t *testing.T) {
	tp := NewTooltip("hint", DefaultTheme(nil))
	tp.Enter()
	first := tp.seq
	tp.Leave()
	tp.Enter()
	tp.Advance(TooltipShowMsg{Seq: first})
	if tp.Visible() {
		t.Fatalf("stale timer from earlier arming showed the tooltip")
	}
	tp.Advance(TooltipShowMsg{Seq: tp.seq})
	if !tp.Visible() {
		t.Fatalf("current timer failed to show the tooltip")
	}
}

func TestTooltipLeaveWhileVisibleHides(t *testing.T) {
	tp := NewTooltip("hint", DefaultTheme(nil))
	tp.Enter()
	tp.Advance(TooltipShowMsg{Seq: tp.seq})
	tp.Leave()
	if tp.Visible() {
		t.Fatalf("tooltip still visible after Leave")
	}
	if tp.View() != "" {
		t.Fatalf("hidden tooltip rendered content")
	}
}

func TestRenderProgressClampsRatio(t *testing.T) {
	th := DefaultTheme(nil)
	full := RenderProgress(25, 10, 8, th.Good, th)
	if strings.Contains(full, "░") {
		t.Errorf("over-max bar should be entirely filled: %q", full)
	}
	empty := RenderProgress(-3, 10, 8, th.Good, th)
	if strings.Contains(empty, "█") {
		t.Errorf("negative value should render an empty bar: %q", empty)
	}
	if n := strings.Count(full, "█"); n != 8 {
		t.Errorf("full bar has %d filled cells, want 8", n)
	}
}

func TestRenderProgressZeroMax(t *testing.T) {
	th := DefaultTheme(nil)
	bar := RenderProgress(5, 0, 6, th.Good, th)
	if strings.Contains(bar, "█") {
		t.Errorf("zero max should render empty, got %q", bar)
	}
}
