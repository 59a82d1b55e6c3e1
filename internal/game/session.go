// Package game implements the Skyland simulation: a fixed-tick side-scroller where an
// avatar dodges obstacle pairs, avoids clouds and collects bonuses.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
)

// State is the lifecycle state of a session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ErrInvalidTransition is returned when a lifecycle call does not apply to the current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// StepResult is returned after each Step.
type StepResult struct {
	State   core.GameState
	Outcome Outcome // Collision effects of this tick
	Ended   bool    // The run entered GameOver during this tick
	Quit    bool    // The player asked to leave
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for lifecycle and collision events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session owns one run of the game and the high score across runs.
// It is not safe for concurrent use.
type Session struct {
	cfg       config.Config
	seed      int64
	rng       *rand.Rand
	avatar    *Avatar
	obstacles *ObstacleSpawner
	bonuses   *BonusSpawner
	land      *Land
	resolver  Resolver
	tally     Tally
	highScore int
	state     State
	logger    *log.Logger

	// Run statistics, reset on every start
	tick             uint64
	bonusesCollected int
	livesLost        int
}

// NewSession validates cfg and builds an idle session.
func NewSession(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	avatar := NewAvatar(cfg.Avatar.StartX, cfg.Avatar.StartY, cfg.Avatar.Step)
	if err := checkStartLayout(avatar, cfg.Screen); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		cfg:       cfg,
		seed:      seed,
		rng:       rng,
		avatar:    avatar,
		obstacles: NewObstacleSpawner(cfg, rng),
		bonuses:   NewBonusSpawner(cfg, rng),
		land:      NewLand(cfg),
		resolver: Resolver{
			ScreenH:  cfg.Screen.Height,
			PerBonus: cfg.Scoring.PerBonus,
			LivesCap: cfg.Lives.Cap,
		},
		tally:  Tally{Lives: cfg.Lives.Max},
		state:  StateIdle,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// checkStartLayout makes sure the avatar does not begin a run already colliding with an edge.
func checkStartLayout(a *Avatar, screen config.ScreenConfig) error {
	b := a.Bounds()
	if b.X < 0 || b.Right() > screen.Width || a.Head().Y <= 0 || a.Legs().Bottom() >= screen.Height {
		return fmt.Errorf("game: %w: avatar at start (%d,%d %dx%d) must lie inside the %dx%d screen",
			config.ErrInvalidConfiguration, b.X, b.Y, b.W, b.H, screen.Width, screen.Height)
	}
	return nil
}

// Start begins a run from Idle or GameOver.
func (s *Session) Start() error {
	if s.state != StateIdle && s.state != StateGameOver {
		return fmt.Errorf("game: %w: cannot start from %s", ErrInvalidTransition, s.state)
	}
	s.begin()
	return nil
}

// Restart begins a fresh run from any state, keeping the high score.
func (s *Session) Restart() {
	s.begin()
}

func (s *Session) begin() {
	s.avatar.Reset()
	s.obstacles.Reset()
	s.bonuses.Reset()
	s.land.Reset()
	s.tally = Tally{Lives: s.cfg.Lives.Max}
	s.tick = 0
	s.bonusesCollected = 0
	s.livesLost = 0
	s.state = StateRunning
	s.logger.Info("run started", "lives", s.tally.Lives, "high_score", s.highScore)
}

// Pause suspends a running session.
func (s *Session) Pause() error {
	if s.state != StateRunning {
		return fmt.Errorf("game: %w: cannot pause from %s", ErrInvalidTransition, s.state)
	}
	s.state = StatePaused
	s.logger.Debug("paused", "tick", s.tick)
	return nil
}

// Resume continues a paused session.
func (s *Session) Resume() error {
	if s.state != StatePaused {
		return fmt.Errorf("game: %w: cannot resume from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateRunning
	s.logger.Debug("resumed", "tick", s.tick)
	return nil
}

// TogglePause switches between Running and Paused; other states are left alone.
// Returns whether the session is paused afterwards.
func (s *Session) TogglePause() bool {
	switch s.state {
	case StateRunning:
		_ = s.Pause()
	case StatePaused:
		_ = s.Resume()
	}
	return s.state == StatePaused
}

// Advance runs one simulation tick. Outside Running it does nothing.
func (s *Session) Advance() Outcome {
	if s.state != StateRunning {
		return Outcome{}
	}

	s.tick++

	s.obstacles.Update()
	s.bonuses.Update()
	s.land.Update()

	out := s.resolver.Resolve(s.avatar, s.obstacles.Pairs(), s.land.Clouds(), s.bonuses, &s.tally)
	if out.LifeLost {
		s.livesLost++
		s.logger.Debug("life lost", "tick", s.tick, "boundary", out.Boundary, "obstacle", out.Obstacle, "lives", s.tally.Lives)
	}
	if out.SoftReset {
		s.logger.Debug("cloud hit", "tick", s.tick)
	}
	if out.Collected > 0 {
		s.bonusesCollected += out.Collected
		s.logger.Debug("bonus collected", "tick", s.tick, "count", out.Collected, "lives", s.tally.Lives)
	}

	s.tally.Score += s.cfg.Scoring.PerTick

	if s.tally.Lives == 0 {
		s.endRun()
	}
	return out
}

func (s *Session) endRun() {
	s.state = StateGameOver
	if s.tally.Score > s.highScore {
		s.highScore = s.tally.Score
	}
	s.logger.Info("game over",
		"score", s.tally.Score,
		"high_score", s.highScore,
		"ticks", s.tick,
		"bonuses", s.bonusesCollected)
}

// Step consumes the intents of one tick and advances the simulation.
func (s *Session) Step(in core.InputFrame) StepResult {
	if in.Has(core.IntentQuit) {
		return StepResult{State: s.GameState(), Quit: true}
	}

	if in.Has(core.IntentRestart) {
		s.Restart()
		return StepResult{State: s.GameState()}
	}

	if in.Has(core.IntentTogglePause) {
		s.TogglePause()
	}

	if s.state == StateRunning {
		if in.Has(core.IntentMoveUp) {
			s.avatar.Move(DirectionUp)
		}
		if in.Has(core.IntentMoveDown) {
			s.avatar.Move(DirectionDown)
		}
	}

	before := s.state
	out := s.Advance()
	return StepResult{
		State:   s.GameState(),
		Outcome: out,
		Ended:   before == StateRunning && s.state == StateGameOver,
	}
}

// GameState returns the score-level view of the session.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:     s.tally.Score,
		Lives:     s.tally.Lives,
		HighScore: s.highScore,
		GameOver:  s.state == StateGameOver,
		Paused:    s.state == StatePaused,
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the score of the current run.
func (s *Session) Score() int {
	return s.tally.Score
}

// Lives returns the lives left in the current run.
func (s *Session) Lives() int {
	return s.tally.Lives
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Seed returns the seed the session's RNG was built from.
func (s *Session) Seed() int64 {
	return s.seed
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config {
	return s.cfg
}
