package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yonster100/brainrot/pkg/model"
	"github.com/yonster100/brainrot/pkg/query"
	"github.com/yonster100/brainrot/pkg/stats"
)

// ViewMode selects how the database panel lays out the filtered records.
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewGrid
)

func (v ViewMode) String() string {
	if v == ViewGrid {
		return "grid"
	}
	return "table"
}

// levelFilters is the cycle order for the classification filter.
var levelFilters = []string{
	query.LevelAll,
	string(model.LabelExcellent),
	string(model.LabelGood),
	string(model.LabelNeutral),
	string(model.LabelConcerning),
	string(model.LabelHighBrainrot),
}

// DatabaseModel is the searchable, filterable records view with aggregate
// statistics. Substring search and level filter combine with AND; the
// filtered set is recomputed whenever either changes.
type DatabaseModel struct {
	shows []model.ShowRecord

	search   SearchBar
	levelIdx int
	viewMode ViewMode
	filtered []model.ShowRecord

	table    table.Model
	gridIdx  int
	detail   *model.ShowRecord
	viewport viewport.Model

	width  int
	height int
	theme  Theme

	status        string
	statusIsError bool
}

func NewDatabaseModel(shows []model.ShowRecord, theme Theme) DatabaseModel {
	names := make([]string, len(shows))
	for i := range shows {
		names[i] = shows[i].TVShow
	}

	columns := []table.Column{
		{Title: "Show", Width: 28},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 14},
		{Title: "Capture", Width: 8},
		{Title: "Nutrition", Width: 9},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(theme.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Background(theme.Highlight).
		Foreground(theme.Primary).
		Bold(true)
	tbl.SetStyles(styles)

	d := DatabaseModel{
		shows:  shows,
		search: NewSearchBar("Search shows...", names, EmitLive, theme),
		table:  tbl,
		theme:  theme,
	}
	d.refilter()
	return d
}

func (d *DatabaseModel) SetSize(width, height int) {
	d.width = width
	d.height = height
	tableHeight := height - 8 // search box, filter line, stats card
	if tableHeight < 3 {
		tableHeight = 3
	}
	d.table.SetHeight(tableHeight)
	d.viewport = viewport.New(width, height)
	if d.detail != nil {
		d.viewport.SetContent(renderShowCard(d.detail, width-2))
	}
}

// Level returns the active classification filter.
func (d *DatabaseModel) Level() string { return levelFilters[d.levelIdx] }

// Filtered returns the current filtered subset.
func (d *DatabaseModel) Filtered() []model.ShowRecord { return d.filtered }

// Mode returns the active layout mode.
func (d *DatabaseModel) Mode() ViewMode { return d.viewMode }

// InDetail reports whether the panel is showing a single record.
func (d *DatabaseModel) InDetail() bool { return d.detail != nil }

// Selected returns the record under the cursor in the active layout.
func (d *DatabaseModel) Selected() *model.ShowRecord {
	if len(d.filtered) == 0 {
		return nil
	}
	idx := d.table.Cursor()
	if d.viewMode == ViewGrid {
		idx = d.gridIdx
	}
	if idx < 0 || idx >= len(d.filtered) {
		return nil
	}
	rec := d.filtered[idx]
	return &rec
}

func (d *DatabaseModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	d.status = ""

	if d.detail != nil {
		switch keyMsg.String() {
		case "esc", "q":
			d.detail = nil
		case "C":
			d.copyDetail()
		default:
			var cmd tea.Cmd
			d.viewport, cmd = d.viewport.Update(msg)
			return cmd
		}
		return nil
	}

	if d.search.Focused() {
		switch keyMsg.String() {
		case "esc":
			d.search.Blur()
		default:
			cmd := d.search.Update(keyMsg)
			d.refilter()
			return cmd
		}
		return nil
	}

	switch keyMsg.String() {
	case "/":
		return d.search.Focus()
	case "f":
		d.levelIdx = (d.levelIdx + 1) % len(levelFilters)
		d.refilter()
	case "v":
		if d.viewMode == ViewTable {
			d.viewMode = ViewGrid
		} else {
			d.viewMode = ViewTable
		}
	case "enter":
		if rec := d.Selected(); rec != nil {
			d.detail = rec
			d.viewport.SetContent(renderShowCard(rec, d.width-2))
			d.viewport.GotoTop()
		}
	case "h", "left":
		if d.viewMode == ViewGrid && d.gridIdx > 0 {
			d.gridIdx--
		}
	case "l", "right":
		if d.viewMode == ViewGrid && d.gridIdx < len(d.filtered)-1 {
			d.gridIdx++
		}
	case "j", "down":
		if d.viewMode == ViewGrid {
			if d.gridIdx+gridColumns < len(d.filtered) {
				d.gridIdx += gridColumns
			}
		} else {
			var cmd tea.Cmd
			d.table, cmd = d.table.Update(msg)
			return cmd
		}
	case "k", "up":
		if d.viewMode == ViewGrid {
			if d.gridIdx-gridColumns >= 0 {
				d.gridIdx -= gridColumns
			}
		} else {
			var cmd tea.Cmd
			d.table, cmd = d.table.Update(msg)
			return cmd
		}
	default:
		if d.viewMode == ViewTable {
			var cmd tea.Cmd
			d.table, cmd = d.table.Update(msg)
			return cmd
		}
	}
	return nil
}

// refilter recomputes the filtered subset from the search term and level
// filter, then rebuilds the active layout's rows.
func (d *DatabaseModel) refilter() {
	d.filtered = query.Filter(d.shows, d.search.Value(), d.Level())

	rows := make([]table.Row, len(d.filtered))
	for i := range d.filtered {
		rec := &d.filtered[i]
		rows[i] = table.Row{
			rec.TVShow,
			formatScore(rec.Notes),
			string(rec.Level()),
			fmt.Sprintf("%.1f", rec.CognitiveCapture),
			fmt.Sprintf("%.1f", rec.CognitiveNutrition),
		}
	}
	d.table.SetRows(rows)

	if cursor := d.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		d.table.SetCursor(0)
	}
	if d.gridIdx >= len(d.filtered) {
		d.gridIdx = 0
	}
}

func (d *DatabaseModel) copyDetail() {
	if d.detail == nil {
		return
	}
	if err := clipboard.WriteAll(showCardMarkdown(d.detail)); err != nil {
		d.status = fmt.Sprintf("copy failed: %v", err)
		d.statusIsError = true
		return
	}
	d.status = fmt.Sprintf("copied %s", d.detail.TVShow)
	d.statusIsError = false
}

func (d *DatabaseModel) Status() (string, bool) { return d.status, d.statusIsError }

const gridColumns = 3

func (d *DatabaseModel) View() string {
	t := d.theme

	if d.detail != nil {
		return d.viewport.View()
	}

	searchView := d.search.View(min(d.width-2, 48))

	filterLine := t.Renderer.NewStyle().
		Foreground(t.Secondary).
		Render(fmt.Sprintf(" level: %s (f)  view: %s (v)  /: search", d.Level(), d.viewMode))

	var body string
	if d.viewMode == ViewGrid {
		body = d.renderGrid()
	} else {
		body = d.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		searchView,
		filterLine,
		body,
		d.renderStats(),
	)
}

func (d *DatabaseModel) renderGrid() string {
	t := d.theme

	if len(d.filtered) == 0 {
		return t.Renderer.NewStyle().Foreground(t.Muted).Render("  no shows match")
	}

	cardWidth := d.width/gridColumns - 4
	if cardWidth < 16 {
		cardWidth = 16
	}

	cardStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(cardWidth)
	selectedStyle := cardStyle.
		BorderForeground(t.Primary).
		Bold(true)

	var rows []string
	for start := 0; start < len(d.filtered); start += gridColumns {
		end := start + gridColumns
		if end > len(d.filtered) {
			end = len(d.filtered)
		}
		var cards []string
		for i := start; i < end; i++ {
			rec := &d.filtered[i]
			level := rec.Level()
			score := t.Renderer.NewStyle().
				Foreground(t.LabelColor(level)).
				Bold(true).
				Render(formatScore(rec.Notes))
			content := rec.TVShow + "\n" + score + " " + string(level)
			if i == d.gridIdx {
				cards = append(cards, selectedStyle.Render(content))
			} else {
				cards = append(cards, cardStyle.Render(content))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStats shows the aggregate card for the filtered subset.
func (d *DatabaseModel) renderStats() string {
	t := d.theme
	sum := stats.Summarize(d.filtered)

	mean := "N/A"
	if sum.HasMean {
		mean = fmt.Sprintf("%.1f", sum.MeanNotes)
	}

	parts := []string{
		fmt.Sprintf("%d shows (%d rated)", sum.Total, sum.Rated),
		"mean " + mean,
	}
	if sum.Best != "" {
		parts = append(parts, "best "+sum.Best)
	}
	if sum.Worst != "" {
		parts = append(parts, "worst "+sum.Worst)
	}

	var bands []string
	for _, l := range model.Levels {
		if n := sum.Distribution[l]; n > 0 {
			bands = append(bands, t.Renderer.NewStyle().
				Foreground(t.LabelColor(l)).
				Render(fmt.Sprintf("%s%d", t.LabelIcon(l), n)))
		}
	}
	if n := sum.Distribution[model.LabelNA]; n > 0 {
		bands = append(bands, t.Renderer.NewStyle().
			Foreground(t.Unrated).
			Render(fmt.Sprintf("·%d", n)))
	}

	line := strings.Join(parts, "  │  ")
	if len(bands) > 0 {
		line += "  │  " + strings.Join(bands, " ")
	}

	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Subtext).
		Padding(0, 1).
		Render(line)
}
