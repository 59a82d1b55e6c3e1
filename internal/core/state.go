package core

// GameState is the small status summary the front end needs every tick.
type GameState struct {
	Score     int  // Current score
	Lives     int  // Remaining lives
	HighScore int  // Best score reached in this process
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the run is paused
}
