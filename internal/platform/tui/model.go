package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyland/internal/core"
	"github.com/vovakirdan/skyland/internal/game"
	"github.com/vovakirdan/skyland/internal/storage"
)

// footerRows is the space reserved below the playfield for the help line.
const footerRows = 1

type view int

const (
	viewGame view = iota
	viewHistory
)

// Model is the Bubble Tea model running one Skyland session.
type Model struct {
	session    *game.Session
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	history    HistoryModel
	screen     *core.Screen
	inputFrame core.InputFrame
	view       view
	width      int
	height     int
	worldW     int
	worldH     int
	tickRate   int
	quitting   bool
}

// NewModel creates a model for session. store may be nil, in which case runs are not recorded.
func NewModel(session *game.Session, store *storage.Store, logger *log.Logger, width, height int) Model {
	cfg := session.Config()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	return Model{
		session:    session,
		store:      store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		history:    NewHistoryModel(store, width, height),
		screen:     core.NewScreen(width, height-footerRows),
		inputFrame: core.NewInputFrame(),
		width:      width,
		height:     height,
		worldW:     cfg.Screen.Width,
		worldH:     cfg.Screen.Height,
		tickRate:   cfg.TickRate,
	}
}

// Init starts the tick loop. The session stays idle until the player starts a run.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.view == viewHistory {
			return m.handleHistoryKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey collects intents for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.History) {
		if m.session.State() == game.StateRunning {
			//nolint:errcheck // Running always pauses
			m.session.Pause()
		}
		m.history.Refresh()
		m.view = viewHistory
		return m, nil
	}

	intent := m.keys.Intent(msg)
	if intent == core.IntentQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(intent)
	return m, nil
}

// handleHistoryKey handles keys while the history table is shown.
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.History):
		m.view = viewGame
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// handleResize fits the playfield to the new terminal size. The world keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width
	m.history.SetSize(msg.Width, msg.Height)
	return m, nil
}

// handleTick feeds the collected intents to the session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.view == viewHistory {
		return m, tickCmd(m.tickRate)
	}

	result := m.session.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if result.Ended {
		m.recordRun()
	}

	return m, tickCmd(m.tickRate)
}

// recordRun saves the run that just ended.
func (m Model) recordRun() {
	snap := m.session.Snapshot()
	m.logger.Info("run finished", "score", snap.Score, "ticks", snap.Tick, "high_score", snap.HighScore)
	if m.store == nil {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		Score:     snap.Score,
		Ticks:     snap.Tick,
		Bonuses:   snap.BonusesCollected,
		LivesLost: snap.LivesLost,
		HighScore: snap.HighScore,
	})
	if err != nil {
		m.logger.Error("cannot record run", "err", err)
		return
	}
	m.logger.Debug("run recorded", "id", id)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if m.view == viewHistory {
		return m.history.View(m.help.ShortHelpView(m.keys.HistoryHelp()))
	}

	Draw(m.screen, m.session.Snapshot(), m.worldW, m.worldH)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for session and blocks until the player quits.
func Run(session *game.Session, store *storage.Store, logger *log.Logger, width, height int) error {
	model := NewModel(session, store, logger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
