package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yonster100/brainrot/pkg/model"
	"github.com/yonster100/brainrot/pkg/query"
)

// BrowseModel is the sortable catalog with drill-down. Two states: list and
// detail. Selecting a record stores it and enters detail; back clears it.
// The detail view deliberately has no item picker.
type BrowseModel struct {
	shows    []model.ShowRecord
	sortMode query.SortMode

	list     list.Model
	viewport viewport.Model
	detail   *model.ShowRecord

	width  int
	height int
	theme  Theme

	status        string
	statusIsError bool
}

func NewBrowseModel(shows []model.ShowRecord, theme Theme) BrowseModel {
	l := list.New(nil, ShowDelegate{Theme: theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle()
	l.Styles.TitleBar = lipgloss.NewStyle()
	l.Styles.NoItems = lipgloss.NewStyle()
	l.Styles.PaginationStyle = lipgloss.NewStyle()
	l.Styles.HelpStyle = lipgloss.NewStyle()

	b := BrowseModel{
		shows:    shows,
		sortMode: query.SortTopRated,
		list:     l,
		theme:    theme,
	}
	b.applySort()
	return b
}

func (b *BrowseModel) SetSize(width, height int) {
	b.width = width
	b.height = height
	listHeight := height - 3 // header + sort line
	if listHeight < 3 {
		listHeight = 3
	}
	b.list.SetSize(width, listHeight)
	b.viewport = viewport.New(width, height)
	if b.detail != nil {
		b.viewport.SetContent(renderShowCard(b.detail, width-2))
	}
}

// InDetail reports whether the panel is showing a single record.
func (b *BrowseModel) InDetail() bool { return b.detail != nil }

// Selected returns the record under the cursor, nil on an empty list.
func (b *BrowseModel) Selected() *model.ShowRecord {
	item, ok := b.list.SelectedItem().(ShowItem)
	if !ok {
		return nil
	}
	rec := item.Show
	return &rec
}

func (b *BrowseModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	b.status = ""

	if b.detail != nil {
		switch keyMsg.String() {
		case "esc", "q":
			// Back to the list; no selection is retained.
			b.detail = nil
		case "C":
			b.copyDetail()
		default:
			var cmd tea.Cmd
			b.viewport, cmd = b.viewport.Update(msg)
			return cmd
		}
		return nil
	}

	switch keyMsg.String() {
	case "s":
		b.sortMode = b.sortMode.Next()
		b.applySort()
	case "enter":
		if rec := b.Selected(); rec != nil {
			b.detail = rec
			b.viewport.SetContent(renderShowCard(rec, b.width-2))
			b.viewport.GotoTop()
		}
	case "home":
		b.list.Select(0)
	case "G", "end":
		if len(b.list.Items()) > 0 {
			b.list.Select(len(b.list.Items()) - 1)
		}
	default:
		var cmd tea.Cmd
		b.list, cmd = b.list.Update(msg)
		return cmd
	}
	return nil
}

func (b *BrowseModel) applySort() {
	sorted := query.SortShows(b.shows, b.sortMode)
	items := make([]list.Item, len(sorted))
	for i := range sorted {
		items[i] = ShowItem{Show: sorted[i]}
	}
	b.list.SetItems(items)
	if len(items) > 0 && b.list.Index() >= len(items) {
		b.list.Select(0)
	}
}

func (b *BrowseModel) copyDetail() {
	if b.detail == nil {
		return
	}
	if err := clipboard.WriteAll(showCardMarkdown(b.detail)); err != nil {
		b.status = fmt.Sprintf("copy failed: %v", err)
		b.statusIsError = true
		return
	}
	b.status = fmt.Sprintf("copied %s", b.detail.TVShow)
	b.statusIsError = false
}

func (b *BrowseModel) Status() (string, bool) { return b.status, b.statusIsError }

func (b *BrowseModel) View() string {
	t := b.theme

	if b.detail != nil {
		return b.viewport.View()
	}

	header := t.Header.Width(b.width).Render("  SCORE  LEVEL           SHOW")
	sortLine := t.Renderer.NewStyle().
		Foreground(t.Secondary).
		Render(fmt.Sprintf(" sort: %s (s to cycle)", b.sortMode))

	return lipgloss.JoinVertical(lipgloss.Left, header, b.list.View(), sortLine)
}
