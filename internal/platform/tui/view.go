package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/lifecycle"
	"github.com/vovakirdan/waitroom/internal/registry"
)

type styles struct {
	title    lipgloss.Style
	status   lipgloss.Style
	score    lipgloss.Style
	cursor   lipgloss.Style
	item     lipgloss.Style
	rules    lipgloss.Style
	box      lipgloss.Style
	big      lipgloss.Style
	help     lipgloss.Style
	overlay  core.Color
	emphasis core.Color
}

func newStyles(p config.Palette) styles {
	accent := lipgloss.Color(p.Accent.Hex())
	light := lipgloss.Color(p.BodyLight.Hex())
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		score:  lipgloss.NewStyle().Bold(true).Foreground(light),
		cursor: lipgloss.NewStyle().Bold(true).Foreground(accent),
		item:   lipgloss.NewStyle(),
		rules:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 3),
		big:      lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 2),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		overlay:  p.Ink,
		emphasis: p.Accent,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.view(m.styles)
	}

	s := m.ctl.Session()
	_, rows := m.surface.Area()

	var body string
	switch s.Status {
	case lifecycle.StatusMenu:
		body = m.viewMenu(rows)
	case lifecycle.StatusReady:
		body = m.viewReady(s, rows)
	case lifecycle.StatusCountdown:
		body = m.place(rows, m.styles.box.Render(m.styles.big.Render(fmt.Sprint(*s.Countdown))))
	case lifecycle.StatusPlaying:
		body = m.viewFrame("")
	case lifecycle.StatusGameOver:
		body = m.viewFrame(fmt.Sprintf("GAME OVER  score %d", s.Score))
	}

	var b strings.Builder
	b.WriteString(m.viewHeader(s))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(m.styles.help.Render(m.helpLine(s.Status)))
	return b.String()
}

func (m Model) viewHeader(s lifecycle.Session) string {
	left := m.styles.title.Render("WAITING ROOM")
	right := m.styles.status.Render(s.Status.String())
	if info, ok := registry.Lookup(s.Game); ok {
		left += "  " + info.Icon + " " + info.Title
	}
	if s.Status == lifecycle.StatusPlaying || s.Status == lifecycle.StatusGameOver {
		right = m.styles.score.Render(fmt.Sprintf("score %d", s.Score)) + "  " + right
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) place(rows int, content string) string {
	return lipgloss.Place(m.width, max(rows, 1), lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewMenu(rows int) string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Pick a game while you wait"))
	b.WriteString("\n\n")
	for i, g := range m.games {
		line := fmt.Sprintf("%s  %s", g.Icon, g.Title)
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> " + line))
		} else {
			b.WriteString(m.styles.item.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if len(m.games) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.rules.Render(m.games[m.cursor].Rules))
	}
	return m.place(rows, b.String())
}

func (m Model) viewReady(s lifecycle.Session, rows int) string {
	info, _ := registry.Lookup(s.Game)
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.big.Render(info.Icon+"  "+info.Title),
		"",
		m.styles.rules.Width(min(48, max(m.width-10, 10))).Render(info.Rules),
		"",
		m.styles.score.Render("press enter or space to start"),
	)
	return m.place(rows, m.styles.box.Render(content))
}

// viewFrame replays the last frame into the cell buffer, with an optional
// banner boxed in the middle.
func (m Model) viewFrame(banner string) string {
	screen := m.surface.Screen()
	screen.Clear()
	m.ctl.Frame().Replay(m.surface)

	if banner != "" {
		sub := "r retry · esc menu"
		w := max(lipgloss.Width(banner), lipgloss.Width(sub)) + 4
		h := 4
		x := (screen.Width() - w) / 2
		y := (screen.Height() - h) / 2
		box := core.NewRect(x, y, w, h)
		screen.DrawRect(box, ' ', core.Color{})
		screen.DrawBox(box, m.styles.emphasis)
		screen.DrawText(x+(w-lipgloss.Width(banner))/2, y+1, banner, m.styles.emphasis)
		screen.DrawText(x+(w-lipgloss.Width(sub))/2, y+2, sub, m.styles.overlay)
	}
	return RenderScreen(screen)
}

func (m Model) helpLine(status lifecycle.Status) string {
	k := m.keys
	switch status {
	case lifecycle.StatusMenu:
		return m.help.ShortHelpView([]key.Binding{k.Up, k.Down, k.Confirm, k.History, k.Quit})
	case lifecycle.StatusGameOver:
		return m.help.ShortHelpView([]key.Binding{k.Retry, k.Back, k.Quit})
	default:
		return m.help.View(k)
	}
}
