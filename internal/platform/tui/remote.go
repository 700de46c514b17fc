package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/lifecycle"
)

// remoteMsg runs an action on the goroutine that owns the controller.
type remoteMsg struct {
	apply func(*lifecycle.Controller)
}

// Remote drives a running program from other goroutines, such as HTTP
// handlers.
type Remote struct {
	p *tea.Program
}

// NewRemote wraps a program.
func NewRemote(p *tea.Program) Remote {
	return Remote{p: p}
}

func (r Remote) send(fn func(*lifecycle.Controller)) {
	r.p.Send(remoteMsg{apply: fn})
}

func (r Remote) SelectGame(kind core.GameKind) {
	r.send(func(c *lifecycle.Controller) { c.SelectGame(kind) })
}

func (r Remote) Start() {
	r.send(func(c *lifecycle.Controller) { c.Start() })
}

func (r Remote) Retry() {
	r.send(func(c *lifecycle.Controller) { c.Retry() })
}

func (r Remote) ReturnToMenu() {
	r.send(func(c *lifecycle.Controller) { c.ReturnToMenu() })
}

// Reload hands a new configuration to the program.
func (r Remote) Reload(cfg config.Config) {
	r.p.Send(ConfigMsg{Config: cfg})
}
