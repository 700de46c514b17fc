package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/waitroom/internal/journal"
)

// maxEntries is how many transitions the history screen loads.
const maxEntries = 100

// historyModel lists recorded status transitions.
type historyModel struct {
	store   *journal.Store
	session string
	entries []journal.Entry
	plays   map[string]int
	err     error
	table   table.Model
	width   int
	height  int
}

func newHistoryModel(store *journal.Store, session string, width, height int) *historyModel {
	h := &historyModel{store: store, session: session, width: width, height: height}
	h.table = h.createTable()
	h.load()
	return h
}

func (h *historyModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Game", Width: 12},
		{Title: "From", Width: 10},
		{Title: "To", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(h.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (h *historyModel) load() {
	if h.store == nil {
		return
	}
	h.entries, h.err = h.store.Recent(h.session, maxEntries)
	if h.err == nil {
		h.plays, h.err = h.store.Plays("playing")
	}
	h.updateRows()
}

func (h *historyModel) updateRows() {
	rows := make([]table.Row, len(h.entries))
	for i, e := range h.entries {
		rows[i] = table.Row{e.At.Local().Format("Jan 02 15:04"), e.Game, e.From, e.To}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

func (h *historyModel) resize(w, hgt int) {
	h.width, h.height = w, hgt
	h.table = h.createTable()
	h.updateRows()
}

func (h *historyModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return cmd
}

func (h *historyModel) view(st styles) string {
	var b strings.Builder
	b.WriteString(st.title.Render(centerText("HISTORY", h.width)))
	b.WriteString("\n\n")

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case h.store == nil:
		b.WriteString(st.rules.Render("History is disabled (no journal database)."))
	case h.err != nil:
		b.WriteString(st.rules.Render("Could not read history: " + h.err.Error()))
	case len(h.entries) == 0:
		b.WriteString(st.rules.Render("Nothing recorded yet. Play a game first!"))
	default:
		b.WriteString(border.Render(h.table.View()))
		b.WriteString("\n")
		b.WriteString(st.status.Render(h.summary()))
	}

	b.WriteString("\n\n")
	b.WriteString(st.help.Render("↑/↓ scroll · esc back · q quit"))
	return b.String()
}

// summary counts games started across every session.
func (h *historyModel) summary() string {
	if len(h.plays) == 0 {
		return ""
	}
	games := make([]string, 0, len(h.plays))
	for g := range h.plays {
		games = append(games, g)
	}
	sort.Strings(games)
	parts := make([]string, len(games))
	for i, g := range games {
		parts[i] = fmt.Sprintf("%s ×%d", g, h.plays[g])
	}
	return "played: " + strings.Join(parts, "  ")
}
