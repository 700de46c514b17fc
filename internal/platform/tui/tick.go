// Package tui runs a waiting-room session in a terminal with Bubble Tea.
// It turns scheduler requests into tea.Tick commands, routes keys and mouse
// motion through the input arbiter and renders frames into character cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/waitroom/internal/frame"
)

// FireMsg is delivered when the wait of a scheduler request has elapsed.
type FireMsg struct {
	Req frame.Request
}

// requestCmd waits out one request. Frame requests wait one display
// refresh.
func requestCmd(r frame.Request, interval time.Duration) tea.Cmd {
	d := interval
	if r.Kind == frame.KindDelay {
		d = r.Delay
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FireMsg{Req: r}
	})
}

// scheduleCmd drains the scheduler into commands.
func scheduleCmd(s *frame.Scheduler, interval time.Duration) tea.Cmd {
	reqs := s.Drain()
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(reqs))
	for i, r := range reqs {
		cmds[i] = requestCmd(r, interval)
	}
	return tea.Batch(cmds...)
}
