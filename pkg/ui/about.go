package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const aboutMarkdown = `# About the Brainrot Score

Every show is rated on eight factors, each 0-10.

## Cognitive Capture (lower is better for the viewer)

- **Sensory Hijack** — rapid cuts, saturated color, constant motion
- **Time Sink** — autoplay pull and episode cliffhangers
- **Ad Pressure** — merchandising and in-show promotion
- **Friction to Intent** — how hard it is to stop watching on purpose

## Cognitive Nutrition (higher is better)

- **Educational Value** — letters, numbers, science, language
- **Quality** — writing, animation, and craft
- **Moral Lesson** — empathy, honesty, cooperation
- **Theme** — depth and age-appropriate substance

## The overall score

The overall score is **nutrition minus capture**, so it runs from -40 to
+40. Shows without enough data are unrated and display as N/A.

| Score | Level |
|---|---|
| 15 and up | Excellent |
| 5 to 15 | Good |
| 0 to 5 | Neutral |
| -10 to 0 | Concerning |
| below -10 | High Brainrot |

Each band's lower bound is inclusive: exactly 15 is Excellent, exactly 5 is
Good, exactly 0 is Neutral, exactly -10 is Concerning.
`

// AboutModel renders the static score-model explainer.
type AboutModel struct {
	viewport viewport.Model
	width    int
	height   int
	theme    Theme
}

func NewAboutModel(theme Theme) AboutModel {
	return AboutModel{theme: theme}
}

func (a *AboutModel) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.viewport = viewport.New(width, height)
	a.viewport.SetContent(a.rendered())
}

func (a *AboutModel) rendered() string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(a.width-2),
	)
	if err != nil {
		return aboutMarkdown
	}
	out, err := renderer.Render(aboutMarkdown)
	if err != nil {
		return aboutMarkdown
	}
	return out
}

func (a *AboutModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return cmd
}

func (a *AboutModel) View() string {
	return a.viewport.View()
}
