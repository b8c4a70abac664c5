package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yonster100/brainrot/pkg/model"
)

func fp(v float64) *float64 { return &v }

// testShows returns a small fixture spanning rated and unrated records.
// Overall scores: Bluey 20, Gizmo Grove 8, Blipz -18, Sugar Rush nil.
func testShows() []model.ShowRecord {
	return []model.ShowRecord{
		{
			ID: "t-01", TVShow: "Bluey", Image: "posters/bluey.jpg",
			SensoryHijack: 2, TimeSink: 3, AdPressure: 1, FrictionToIntent: 2,
			EducationalValue: 8, Quality: 9, MoralLesson: 6, Theme: 5,
			CognitiveCapture: 8, CognitiveNutrition: 28, Notes: fp(20),
		},
		{
			ID: "t-02", TVShow: "Gizmo Grove", Image: "posters/gizmo.jpg",
			SensoryHijack: 4, TimeSink: 4, AdPressure: 3, FrictionToIntent: 3,
			EducationalValue: 6, Quality: 6, MoralLesson: 5, Theme: 5,
			CognitiveCapture: 14, CognitiveNutrition: 22, Notes: fp(8),
		},
		{
			ID: "t-03", TVShow: "Blipz", Image: "posters/blipz.jpeg",
			SensoryHijack: 9, TimeSink: 8, AdPressure: 7, FrictionToIntent: 6,
			EducationalValue: 3, Quality: 4, MoralLesson: 3, Theme: 2,
			CognitiveCapture: 30, CognitiveNutrition: 12, Notes: fp(-18),
		},
		{
			ID: "t-04", TVShow: "Sugar Rush", Image: "",
			SensoryHijack: 5, TimeSink: 5, AdPressure: 5, FrictionToIntent: 5,
			EducationalValue: 5, Quality: 5, MoralLesson: 5, Theme: 5,
			CognitiveCapture: 20, CognitiveNutrition: 20, Notes: nil,
		},
	}
}

// key builds the KeyMsg for a single test keystroke.
func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
