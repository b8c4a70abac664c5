package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yonster100/brainrot/pkg/query"
)

// EmitMode controls when a SearchBar reports its text to OnChange.
type EmitMode int

const (
	// EmitLive reports on every keystroke (database-style live filtering).
	EmitLive EmitMode = iota
	// EmitSubmit reports only on explicit submit or suggestion pick.
	EmitSubmit
)

const maxSuggestions = 6

// SearchBar is a text input with a suggestion dropdown derived by substring
// match against a candidate list. Suggestions hide when the input is blank
// or nothing matches.
type SearchBar struct {
	Candidates []string
	Mode       EmitMode
	OnChange   func(text string)

	input       textinput.Model
	suggestions []string
	highlighted int
	theme       Theme
}

func NewSearchBar(placeholder string, candidates []string, mode EmitMode, theme Theme) SearchBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 60
	ti.Prompt = "🔍 "
	ti.PromptStyle = theme.Renderer.NewStyle().Foreground(theme.Primary)

	return SearchBar{
		Candidates: candidates,
		Mode:       mode,
		input:      ti,
		theme:      theme,
	}
}

func (s *SearchBar) Focus() tea.Cmd { return s.input.Focus() }

func (s *SearchBar) Blur() {
	s.input.Blur()
	s.suggestions = nil
}

func (s *SearchBar) Focused() bool { return s.input.Focused() }

func (s *SearchBar) Value() string { return s.input.Value() }

func (s *SearchBar) Suggestions() []string { return s.suggestions }

// SetValue sets the input programmatically without emitting.
func (s *SearchBar) SetValue(text string) {
	s.input.SetValue(text)
	s.refreshSuggestions()
}

// Update routes a key to the input and maintains the suggestion list.
func (s *SearchBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "down":
		if len(s.suggestions) > 0 && s.highlighted < len(s.suggestions)-1 {
			s.highlighted++
		}
		return nil
	case "up":
		if s.highlighted > 0 {
			s.highlighted--
		}
		return nil
	case "enter":
		if len(s.suggestions) > 0 {
			s.pick(s.highlighted)
		} else {
			s.submit()
		}
		return nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.refreshSuggestions()
		if s.Mode == EmitLive && s.OnChange != nil {
			s.OnChange(s.input.Value())
		}
	}
	return cmd
}

// pick fills the input with suggestion i and hides the list.
func (s *SearchBar) pick(i int) {
	if i < 0 || i >= len(s.suggestions) {
		return
	}
	s.input.SetValue(s.suggestions[i])
	s.input.CursorEnd()
	s.suggestions = nil
	s.highlighted = 0
	if s.OnChange != nil {
		s.OnChange(s.input.Value())
	}
}

func (s *SearchBar) submit() {
	s.suggestions = nil
	s.highlighted = 0
	if s.Mode == EmitSubmit && s.OnChange != nil {
		s.OnChange(s.input.Value())
	}
}

func (s *SearchBar) refreshSuggestions() {
	s.suggestions = query.Suggest(s.Candidates, s.input.Value(), maxSuggestions)
	if s.highlighted >= len(s.suggestions) {
		s.highlighted = 0
	}
}

func (s *SearchBar) View(width int) string {
	t := s.theme

	box := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width)
	if s.input.Focused() {
		box = box.BorderForeground(t.Primary)
	}

	parts := []string{box.Render(s.input.View())}

	if len(s.suggestions) > 0 {
		itemStyle := t.Renderer.NewStyle().PaddingLeft(1).Width(width)
		highlightStyle := itemStyle.
			Background(t.Highlight).
			Foreground(t.Primary).
			Bold(true)

		var rows []string
		for i, sug := range s.suggestions {
			if i == s.highlighted {
				rows = append(rows, highlightStyle.Render(sug))
			} else {
				rows = append(rows, itemStyle.Render(sug))
			}
		}
		menu := t.Renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Secondary).
			Width(width).
			Render(strings.Join(rows, "\n"))
		parts = append(parts, menu)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
