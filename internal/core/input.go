package core

// Intent represents a semantic player request, abstracted from physical key presses.
// The simulation consumes intents once per tick and never sees raw keys.
type Intent int

const (
	IntentNone        Intent = iota
	IntentMoveUp             // Up, W, K - move the avatar up one step
	IntentMoveDown           // Down, S, J - move the avatar down one step
	IntentTogglePause        // Space, P - pause/unpause
	IntentRestart            // R, Enter - start a new run
	IntentQuit               // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveUp:
		return "MoveUp"
	case IntentMoveDown:
		return "MoveDown"
	case IntentTogglePause:
		return "TogglePause"
	case IntentRestart:
		return "Restart"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the intents collected between two simulation ticks.
type InputFrame struct {
	// Intents maps intent types to whether they were triggered this frame.
	// Using a map allows checking multiple intents without order dependency.
	Intents map[Intent]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Intents: make(map[Intent]bool),
	}
}

// Set marks an intent as triggered for this frame.
func (f *InputFrame) Set(i Intent) {
	if i == IntentNone {
		return
	}
	if f.Intents == nil {
		f.Intents = make(map[Intent]bool)
	}
	f.Intents[i] = true
}

// Has returns true if the given intent was triggered this frame.
func (f InputFrame) Has(i Intent) bool {
	if f.Intents == nil {
		return false
	}
	return f.Intents[i]
}

// Empty reports whether no intent was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Intents) == 0
}

// Clear resets all intents for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Intents {
		delete(f.Intents, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Intents {
		clone.Intents[k] = v
	}
	return clone
}
