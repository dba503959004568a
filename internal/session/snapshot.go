package session

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Snapshot is an immutable view of the session handed to the presentation
// layer after every processed command. Tiles are copies; mutating them has
// no effect on the session.
type Snapshot struct {
	GridSize  int
	Tiles     []engine.Tile
	Score     int
	BestScore int
	MoveCount int
	Elapsed   time.Duration
	State     State
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		GridSize:  s.cfg.GridSize,
		Score:     s.score,
		BestScore: s.bestScore,
		MoveCount: s.moveCount,
		Elapsed:   s.Elapsed(),
		State:     s.state,
	}

	if s.board != nil {
		snap.Tiles = make([]engine.Tile, s.board.Len())
		for i, t := range s.board.Tiles() {
			snap.Tiles[i] = *t
		}
	}

	return snap
}

// TileAt returns the snapshot tile at (row, col), or nil.
func (snap Snapshot) TileAt(row, col int) *engine.Tile {
	for i := range snap.Tiles {
		if snap.Tiles[i].Row == row && snap.Tiles[i].Col == col {
			return &snap.Tiles[i]
		}
	}
	return nil
}

// MaxTile returns the highest tile value in the snapshot.
func (snap Snapshot) MaxTile() int {
	maxVal := 0
	for _, t := range snap.Tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}
