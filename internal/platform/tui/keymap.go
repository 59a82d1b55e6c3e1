package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyland/internal/core"
)

// KeyMap defines the key bindings of the game and history views.
// It translates key presses into intents so the simulation never sees raw keys.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
	History key.Binding
	Back    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pause, k.Restart, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Pause, k.Restart},
		{k.History, k.Back, k.Quit},
	}
}

// HistoryHelp returns the bindings shown under the history table.
func (k KeyMap) HistoryHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space/p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
	}
}

// Intent translates a key message to a simulation intent.
// Keys without a simulation meaning (history, back, unbound) map to IntentNone.
func (k KeyMap) Intent(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.IntentQuit
	case key.Matches(msg, k.Up):
		return core.IntentMoveUp
	case key.Matches(msg, k.Down):
		return core.IntentMoveDown
	case key.Matches(msg, k.Pause):
		return core.IntentTogglePause
	case key.Matches(msg, k.Restart):
		return core.IntentRestart
	}
	return core.IntentNone
}
