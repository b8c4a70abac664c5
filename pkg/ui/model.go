package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yonster100/brainrot/pkg/model"
	"github.com/yonster100/brainrot/pkg/query"
	"github.com/yonster100/brainrot/pkg/stats"
)

const sidebarWidth = 24

// tab indices; the panel set is fixed at startup.
const (
	TabBrowse = iota
	TabDatabase
	TabCompare
	TabAbout
	tabCount
)

type tabDef struct {
	label string
	desc  string
}

var tabs = [tabCount]tabDef{
	{"Browse", "Sortable catalog with drill-down"},
	{"Database", "Search, filter, and stats"},
	{"Compare", "Two shows head to head"},
	{"About", "How the score works"},
}

// Model is the main Bubble Tea model: a fixed sidebar of tabs and the
// active panel's content. The only transitions are tab selections.
type Model struct {
	shows   []model.ShowRecord
	summary stats.Summary

	browse   BrowseModel
	database DatabaseModel
	compare  CompareModel
	about    AboutModel

	active int

	hints      Toggle
	tabTooltip Tooltip

	showHelp        bool
	showQuitConfirm bool

	ready  bool
	width  int
	height int
	theme  Theme
}

// NewModel builds the shell over the loaded dataset. The initial tab is
// Browse with its default sort.
func NewModel(shows []model.ShowRecord, initialSort query.SortMode) Model {
	theme := DefaultTheme(lipgloss.NewRenderer(os.Stdout))

	browse := NewBrowseModel(shows, theme)
	for browse.sortMode != initialSort {
		browse.sortMode = browse.sortMode.Next()
	}
	browse.applySort()

	hints := NewToggle("tab hints", theme)

	return Model{
		shows:      shows,
		summary:    stats.Summarize(shows),
		browse:     browse,
		database:   NewDatabaseModel(shows, theme),
		compare:    NewCompareModel(shows, theme),
		about:      NewAboutModel(theme),
		hints:      hints,
		tabTooltip: NewTooltip(tabs[0].desc, theme),
		theme:      theme,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveTab returns the current tab index.
func (m Model) ActiveTab() int { return m.active }

// selectTab activates tab k. Selecting the already-active tab is a no-op.
func (m *Model) selectTab(k int) tea.Cmd {
	if k < 0 || k >= tabCount || k == m.active {
		return nil
	}
	m.active = k
	m.tabTooltip.Leave()
	if m.hints.Active() {
		m.tabTooltip.Text = tabs[k].desc
		return m.tabTooltip.Enter()
	}
	return nil
}

// panelCapturesKeys reports whether the active panel owns esc/q right now
// (detail open, search focused, or a dropdown unfolded).
func (m *Model) panelCapturesKeys() bool {
	switch m.active {
	case TabBrowse:
		return m.browse.InDetail()
	case TabDatabase:
		return m.database.InDetail() || m.database.search.Focused()
	case TabCompare:
		return m.compare.left.Open() || m.compare.right.Open()
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TooltipShowMsg:
		m.tabTooltip.Advance(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		bodyHeight := m.height - 1 // footer row
		if bodyHeight < 5 {
			bodyHeight = 5
		}
		contentWidth := m.width - sidebarWidth - 4
		if contentWidth < 20 {
			contentWidth = 20
		}

		m.browse.SetSize(contentWidth, bodyHeight-2)
		m.database.SetSize(contentWidth, bodyHeight-2)
		m.compare.SetSize(contentWidth, bodyHeight-2)
		m.about.SetSize(contentWidth, bodyHeight-2)
		return m, nil

	case tea.KeyMsg:
		if m.showQuitConfirm {
			switch msg.String() {
			case "esc", "y", "Y":
				return m, tea.Quit
			default:
				m.showQuitConfirm = false
				return m, nil
			}
		}

		if msg.String() == "?" {
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.panelCapturesKeys() {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit

			case "q", "esc":
				m.showQuitConfirm = true
				return m, nil

			case "1", "2", "3", "4":
				cmd := m.selectTab(int(msg.String()[0] - '1'))
				return m, cmd

			case "tab", "]":
				cmd := m.selectTab((m.active + 1) % tabCount)
				return m, cmd

			case "shift+tab", "[":
				cmd := m.selectTab((m.active + tabCount - 1) % tabCount)
				return m, cmd

			case "t":
				if m.active != TabDatabase { // database owns plain letters for search UX
					m.hints.Activate()
					if !m.hints.Active() {
						m.tabTooltip.Leave()
					}
					return m, nil
				}
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		cmd := m.updateActivePanel(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateActivePanel(msg tea.Msg) tea.Cmd {
	switch m.active {
	case TabBrowse:
		return m.browse.Update(msg)
	case TabDatabase:
		return m.database.Update(msg)
	case TabCompare:
		return m.compare.Update(msg)
	case TabAbout:
		return m.about.Update(msg)
	}
	return nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading catalog..."
	}

	var body string
	if m.showQuitConfirm {
		body = m.renderQuitConfirm()
	} else if m.showHelp {
		body = m.renderHelpOverlay()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderContent())
	}

	footer := m.renderFooter()

	finalStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height)

	return finalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

func (m Model) renderSidebar() string {
	t := m.theme

	titleStyle := t.Renderer.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Width(sidebarWidth - 4)

	activeStyle := t.Renderer.NewStyle().
		Background(t.Highlight).
		Foreground(t.Primary).
		Bold(true).
		PaddingLeft(1).
		Width(sidebarWidth - 4)

	inactiveStyle := t.Renderer.NewStyle().
		Foreground(t.Subtext).
		PaddingLeft(1).
		Width(sidebarWidth - 4)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("🧠 Brainrot"))
	sb.WriteString("\n\n")

	for i, tab := range tabs {
		line := fmt.Sprintf("%d %s", i+1, tab.label)
		if i == m.active {
			sb.WriteString(activeStyle.Render("▸ " + line))
		} else {
			sb.WriteString(inactiveStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.hints.View())
	if tip := m.tabTooltip.View(); tip != "" {
		sb.WriteString("\n")
		sb.WriteString(tip)
	}

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		Padding(0, 1).
		Width(sidebarWidth).
		Height(m.height - 1).
		MaxHeight(m.height - 1)

	return boxStyle.Render(sb.String())
}

func (m Model) renderContent() string {
	t := m.theme

	var view string
	switch m.active {
	case TabBrowse:
		view = m.browse.View()
	case TabDatabase:
		view = m.database.View()
	case TabCompare:
		view = m.compare.View()
	case TabAbout:
		view = m.about.View()
	}

	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(m.width - sidebarWidth - 2).
		Height(m.height - 1).
		MaxHeight(m.height - 1).
		Render(view)
}

func (m Model) renderQuitConfirm() string {
	t := m.theme

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.HighBrainrot).
		Padding(1, 3).
		Align(lipgloss.Center)

	titleStyle := t.Renderer.NewStyle().
		Foreground(t.HighBrainrot).
		Bold(true)

	textStyle := t.Renderer.NewStyle().
		Foreground(t.Base.GetForeground())

	keyStyle := t.Renderer.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	content := titleStyle.Render("Quit brt?") + "\n\n" +
		textStyle.Render("Press ") + keyStyle.Render("Esc") + textStyle.Render(" or ") + keyStyle.Render("Y") + textStyle.Render(" to quit\n") +
		textStyle.Render("Press any other key to cancel")

	return lipgloss.Place(
		m.width,
		m.height-1,
		lipgloss.Center,
		lipgloss.Center,
		boxStyle.Render(content),
	)
}

func (m Model) renderHelpOverlay() string {
	t := m.theme

	titleStyle := t.Renderer.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		MarginBottom(1)

	sectionStyle := t.Renderer.NewStyle().
		Foreground(t.Secondary).
		Bold(true).
		MarginTop(1)

	keyStyle := t.Renderer.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#BD93F9"}).
		Bold(true).
		Width(12)

	descStyle := t.Renderer.NewStyle().
		Foreground(t.Base.GetForeground())

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("⌨️  Keyboard Shortcuts"))
	sb.WriteString("\n\n")

	sb.WriteString(sectionStyle.Render("Tabs"))
	sb.WriteString("\n")
	for _, s := range []struct{ key, desc string }{
		{"1-4", "Jump to tab"},
		{"Tab / ]", "Next tab"},
		{"S-Tab / [", "Previous tab"},
		{"t", "Toggle tab hints"},
	} {
		sb.WriteString(keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("Browse"))
	sb.WriteString("\n")
	for _, s := range []struct{ key, desc string }{
		{"j / k", "Move down / up"},
		{"s", "Cycle sort mode"},
		{"Enter", "Show details"},
		{"Esc", "Back to list"},
		{"C", "Copy show card"},
	} {
		sb.WriteString(keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("Database"))
	sb.WriteString("\n")
	for _, s := range []struct{ key, desc string }{
		{"/", "Focus search"},
		{"f", "Cycle level filter"},
		{"v", "Table / grid view"},
		{"Enter", "Show details"},
	} {
		sb.WriteString(keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("Compare"))
	sb.WriteString("\n")
	for _, s := range []struct{ key, desc string }{
		{"h / l", "Switch side"},
		{"Enter", "Open show picker"},
		{"j / k", "Move in picker"},
	} {
		sb.WriteString(keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("General"))
	sb.WriteString("\n")
	for _, s := range []struct{ key, desc string }{
		{"?", "Toggle this help"},
		{"q / Esc", "Quit"},
		{"Ctrl+c", "Force quit"},
	} {
		sb.WriteString(keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(t.Renderer.NewStyle().Foreground(t.Secondary).Italic(true).Render("Press any key to close"))

	helpBox := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Render(sb.String())

	return lipgloss.Place(
		m.width,
		m.height-1,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
	)
}

func (m Model) renderFooter() string {
	t := m.theme

	// Prefer an active panel status message when one is pending.
	var status string
	var isError bool
	switch m.active {
	case TabBrowse:
		status, isError = m.browse.Status()
	case TabDatabase:
		status, isError = m.database.Status()
	}
	if status != "" {
		color := t.Excellent
		prefix := "✓ "
		if isError {
			color = t.HighBrainrot
			prefix = "✗ "
		}
		msg := t.Renderer.NewStyle().
			Foreground(color).
			Bold(true).
			Padding(0, 2).
			Render(prefix + status)
		remaining := m.width - lipgloss.Width(msg)
		if remaining < 0 {
			remaining = 0
		}
		return lipgloss.JoinHorizontal(lipgloss.Bottom, msg, strings.Repeat(" ", remaining))
	}

	tabBadge := t.Header.Render(tabs[m.active].label)

	countsStyle := t.Renderer.NewStyle().
		Foreground(t.Subtext).
		Padding(0, 1)
	counts := countsStyle.Render(fmt.Sprintf("%d shows · %d rated", m.summary.Total, m.summary.Rated))

	hintStyle := t.Renderer.NewStyle().
		Foreground(t.Secondary).
		Padding(0, 1)
	hints := hintStyle.Render("1-4 tabs · ? help · q quit")

	used := lipgloss.Width(tabBadge) + lipgloss.Width(counts) + lipgloss.Width(hints)
	remaining := m.width - used
	if remaining < 0 {
		remaining = 0
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		tabBadge, counts, strings.Repeat(" ", remaining), hints)
}
