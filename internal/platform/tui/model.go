package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/waitroom/internal/audio"
	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/draw/cells"
	"github.com/vovakirdan/waitroom/internal/input"
	"github.com/vovakirdan/waitroom/internal/journal"
	"github.com/vovakirdan/waitroom/internal/lifecycle"
	"github.com/vovakirdan/waitroom/internal/registry"
)

// Rows taken by the header and the help footer around the game area.
const (
	headerRows = 2
	footerRows = 2
)

// Options configures one terminal session.
type Options struct {
	Config    config.Config
	Logger    *log.Logger
	Audio     audio.Player   // nil is silent
	Journal   *journal.Store // nil disables history
	SessionID string
	Seed      int64         // 0 seeds every game from the clock
	Game      core.GameKind // Preselected game; GameNone opens the menu
	Publish   func(lifecycle.Snapshot)
	Width     int
	Height    int
}

// ConfigMsg replaces the configuration of a running session.
type ConfigMsg struct {
	Config config.Config
}

// Model is the Bubble Tea model for one session: menu, game and history.
type Model struct {
	ctl     *lifecycle.Controller
	arb     *input.Arbiter
	surface *cells.Canvas
	audio   audio.Player
	store   *journal.Store
	session string
	logger  *log.Logger
	keys    input.KeyMap
	help    help.Model
	styles  styles
	games   []registry.Info
	history *historyModel

	cursor   int
	width    int
	height   int
	interval time.Duration
	quitting bool
}

// NewModel wires a controller, an arbiter and a cell surface.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}

	deps := lifecycle.Deps{Logger: logger, Audio: player}
	if opts.Journal != nil {
		deps.Recorder = opts.Journal.Session(opts.SessionID)
	}
	if opts.Seed != 0 {
		seed := opts.Seed
		deps.Seed = func() int64 { return seed }
	}

	ctl := lifecycle.New(opts.Config, deps)
	keys := input.DefaultKeyMap()
	arb := input.New(ctl, keys, player)
	ctl.Subscribe(arb.Sync)
	if opts.Publish != nil {
		ctl.Subscribe(opts.Publish)
	}

	surface := cells.New(opts.Config.Surface.Width, opts.Config.Surface.Height)
	m := Model{
		ctl:      ctl,
		arb:      arb,
		surface:  surface,
		audio:    player,
		store:    opts.Journal,
		session:  opts.SessionID,
		logger:   logger,
		keys:     keys,
		help:     help.New(),
		styles:   newStyles(opts.Config.Theme.Palette()),
		games:    registry.List(),
		interval: opts.Config.Frame.Interval(),
	}
	m.resize(opts.Width, opts.Height)
	ctl.Attach(surface)

	if opts.Game != core.GameNone {
		ctl.SelectGame(opts.Game)
		for i, g := range m.games {
			if g.Kind == opts.Game {
				m.cursor = i
			}
		}
	}
	return m
}

// Controller exposes the lifecycle controller.
func (m Model) Controller() *lifecycle.Controller {
	return m.ctl
}

// Init starts whatever the preselection scheduled.
func (m Model) Init() tea.Cmd {
	return m.schedule()
}

func (m Model) schedule() tea.Cmd {
	return scheduleCmd(m.ctl.Scheduler(), m.interval)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.surface.SetArea(w, h-headerRows-footerRows)
	m.help.Width = w
	if m.history != nil {
		m.history.resize(w, h)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.ctl.Rescale()
		return m, nil

	case FireMsg:
		m.ctl.Deliver(msg.Req)
		return m, m.schedule()

	case tea.KeyMsg:
		if m.history != nil {
			return m.updateHistory(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.history == nil && msg.Y >= headerRows {
			p := m.surface.ToLogical(msg.X, msg.Y-headerRows)
			m.arb.Pointer(p.X)
		}
		return m, nil

	case remoteMsg:
		msg.apply(m.ctl)
		return m, m.schedule()

	case ConfigMsg:
		m.ctl.SetConfig(msg.Config)
		m.styles = newStyles(msg.Config.Theme.Palette())
		m.interval = msg.Config.Frame.Interval()
		if level, err := log.ParseLevel(msg.Config.Log.Level); err == nil {
			m.logger.SetLevel(level)
		}
		m.logger.Info("configuration reloaded")
		return m, nil
	}
	return m, nil
}

// handleKey lets the arbiter claim the key first, then navigates.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if r := m.arb.Key(msg.String()); r.Consumed {
		return m, m.schedule()
	}

	action := m.keys.Action(msg.String())
	if action == core.ActionQuit {
		return m.quit()
	}

	switch m.ctl.Session().Status {
	case lifecycle.StatusMenu:
		switch action {
		case core.ActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case core.ActionDown:
			if m.cursor < len(m.games)-1 {
				m.cursor++
			}
		case core.ActionConfirm, core.ActionJump:
			if len(m.games) > 0 {
				m.ctl.SelectGame(m.games[m.cursor].Kind)
			}
		case core.ActionHistory:
			m.history = newHistoryModel(m.store, m.session, m.width, m.height)
		case core.ActionBack:
			return m.quit()
		}

	case lifecycle.StatusGameOver:
		switch action {
		case core.ActionRetry, core.ActionConfirm, core.ActionJump:
			m.ctl.Retry()
		case core.ActionBack:
			m.ctl.ReturnToMenu()
		}

	default:
		if action == core.ActionBack {
			m.ctl.ReturnToMenu()
		}
	}
	return m, m.schedule()
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg.String()) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionBack, core.ActionHistory:
		m.history = nil
		return m, nil
	}
	return m, m.history.update(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.ctl.ReturnToMenu()
	return m, tea.Quit
}

// Program builds a full-screen program with mouse motion reporting, which
// the paddle game steers by.
func Program(opts Options, extra ...tea.ProgramOption) *tea.Program {
	popts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}, extra...)
	return tea.NewProgram(NewModel(opts), popts...)
}
