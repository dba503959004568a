// Package session implements the game state machine that sequences move
// resolution, tile spawning, terminal evaluation and achievement
// progression, and exposes snapshots plus events to the presentation
// layer. It is synchronous and expects its caller to serialize commands.
package session

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/progress"
)

// State identifies where the session is in its lifecycle.
type State string

const (
	StateNotStarted State = "not_started"
	StateActive     State = "active"
	StatePaused     State = "paused"
	StateOver       State = "over"
	StateWon        State = "won"
)

// Config carries the settings a session consumes. They are fixed for the
// session's lifetime once Start is called.
type Config struct {
	GridSize        int
	WinningValue    int
	SpawnFourChance float64
}

// DefaultConfig returns the classic 4x4 game targeting 2048.
func DefaultConfig() Config {
	return Config{
		GridSize:        4,
		WinningValue:    2048,
		SpawnFourChance: 0.10,
	}
}

// Session is the orchestrating state machine. Commands that are not legal
// in the current state are silently ignored; the snapshot simply does not
// change.
type Session struct {
	cfg Config
	rng *rand.Rand
	now func() time.Time

	state     State
	board     *engine.Board
	score     int
	bestScore int
	moveCount int

	startedAt time.Time
	pausedAt  time.Time
	endedAt   time.Time
	pausedFor time.Duration

	wonFired bool
	unlocked map[string]bool
}

// New creates a session in NotStarted. The randomness source is injected
// so tests and replays can seed it.
func New(cfg Config, rng *rand.Rand) *Session {
	return &Session{
		cfg:      cfg,
		rng:      rng,
		now:      time.Now,
		state:    StateNotStarted,
		unlocked: make(map[string]bool),
	}
}

// Restore applies a persisted snapshot: the best score and the unlocked
// achievement set survive across sessions, the board does not. Intended
// to be called before Start; missing persistence just means defaults.
func (s *Session) Restore(bestScore int, unlocked []string) {
	s.bestScore = bestScore
	for _, id := range unlocked {
		s.unlocked[id] = true
	}
}

// Start seeds a fresh board with two spawned tiles and enters Active.
// Ignored unless the session is in NotStarted.
func (s *Session) Start() {
	if s.state != StateNotStarted {
		return
	}

	s.board = engine.NewBoard(s.cfg.GridSize)
	s.score = 0
	s.moveCount = 0
	s.wonFired = false
	s.pausedFor = 0
	s.endedAt = time.Time{}

	engine.SpawnTileChance(s.board, s.rng, s.cfg.SpawnFourChance)
	engine.SpawnTileChance(s.board, s.rng, s.cfg.SpawnFourChance)

	s.startedAt = s.now()
	s.state = StateActive
}

// Move processes a directional command: resolve, spawn, evaluate terminal
// conditions and progression. An ineffective move (board unchanged) does
// not spawn a tile or count, and moves outside Active are no-ops. The
// returned events are in emission order.
func (s *Session) Move(dir engine.Direction) []Event {
	if s.state != StateActive {
		return nil
	}

	s.board.ClearFlags()
	delta, changed := engine.Resolve(s.board, dir)
	if !changed {
		return nil
	}

	s.score += delta
	if s.score > s.bestScore {
		s.bestScore = s.score
	}
	s.moveCount++

	engine.SpawnTileChance(s.board, s.rng, s.cfg.SpawnFourChance)

	var events []Event

	if !s.wonFired && engine.HasWon(s.board, s.cfg.WinningValue) {
		s.wonFired = true
		s.state = StateWon
		events = append(events, Event{Kind: EventVictory})
	}

	if engine.IsGameOver(s.board) {
		s.state = StateOver
		s.endedAt = s.now()
		events = append(events, Event{Kind: EventGameOver})
	}

	for _, id := range progress.Evaluate(s.score, s.moveCount, s.board.MaxValue(), s.cfg.WinningValue, s.unlocked) {
		s.unlocked[id] = true
		events = append(events, Event{Kind: EventAchievement, Achievement: id})
	}

	return events
}

// Pause freezes the clock. Only legal while Active.
func (s *Session) Pause() {
	if s.state != StateActive {
		return
	}
	s.pausedAt = s.now()
	s.state = StatePaused
}

// Resume unfreezes the clock. Only legal while Paused.
func (s *Session) Resume() {
	if s.state != StatePaused {
		return
	}
	s.pausedFor += s.now().Sub(s.pausedAt)
	s.state = StateActive
}

// ContinuePlaying returns from Won to Active so play can go on past the
// winning tile. The victory event will not fire again this session.
func (s *Session) ContinuePlaying() {
	if s.state != StateWon {
		return
	}
	s.state = StateActive
}

// Reset discards the board and returns to NotStarted from any state.
// Best score and unlocked achievements are kept.
func (s *Session) Reset() {
	s.board = nil
	s.score = 0
	s.moveCount = 0
	s.wonFired = false
	s.state = StateNotStarted
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// BestScore returns the best score seen, including restored history.
func (s *Session) BestScore() int {
	return s.bestScore
}

// MoveCount returns the number of effective moves this session.
func (s *Session) MoveCount() int {
	return s.moveCount
}

// MaxTile returns the highest tile value, 0 before Start.
func (s *Session) MaxTile() int {
	if s.board == nil {
		return 0
	}
	return s.board.MaxValue()
}

// Unlocked reports whether the achievement id has been unlocked.
func (s *Session) Unlocked(id string) bool {
	return s.unlocked[id]
}

// Elapsed returns the play time so far, excluding paused stretches.
// Frozen once the game is over.
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case StateNotStarted:
		return 0
	case StatePaused:
		return s.pausedAt.Sub(s.startedAt) - s.pausedFor
	case StateOver:
		return s.endedAt.Sub(s.startedAt) - s.pausedFor
	default:
		return s.now().Sub(s.startedAt) - s.pausedFor
	}
}
