// Package engine implements the sliding-tile board simulation: the tile
// store, move resolution with merging, random tile spawning, and terminal
// state detection. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package engine

import "fmt"

// TileID uniquely identifies a tile for its lifetime. IDs are allocated
// monotonically per board and never reused, so a renderer can track a tile
// across moves. A merge retires both source IDs and mints a fresh one for
// the surviving tile.
type TileID uint64

// Tile is a single numbered tile on the board.
type Tile struct {
	ID      TileID
	Value   int
	Row     int
	Col     int
	Merged  bool // result of a merge during the current move
	Spawned bool // placed by the spawner during the current move
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// MinGridSize and MaxGridSize bound the supported board dimensions.
const (
	MinGridSize = 3
	MaxGridSize = 6
)

// Board is a sparse collection of tiles on a Size x Size grid.
// Invariant: at most one tile occupies any cell.
type Board struct {
	Size   int
	tiles  []*Tile
	nextID TileID
}

// NewBoard creates an empty board of the given size.
// Panics if size is outside the supported range; callers validate sizes
// at the settings layer.
func NewBoard(size int) *Board {
	if size < MinGridSize || size > MaxGridSize {
		panic(fmt.Sprintf("engine: unsupported grid size %d", size))
	}
	return &Board{Size: size, nextID: 1}
}

// newTile allocates a tile with a fresh identity, without placing it.
func (b *Board) newTile(value, row, col int) *Tile {
	t := &Tile{ID: b.nextID, Value: value, Row: row, Col: col}
	b.nextID++
	return t
}

// AddTile places a tile with a fresh identity at the given cell. Panics if
// the cell is occupied or out of bounds.
func (b *Board) AddTile(value, row, col int) *Tile {
	t := b.newTile(value, row, col)
	b.place(t)
	return t
}

// Tiles returns the live tiles. The slice is shared; callers that need an
// independent view should use Clone or copy the tiles themselves.
func (b *Board) Tiles() []*Tile {
	return b.tiles
}

// Len returns the number of tiles on the board.
func (b *Board) Len() int {
	return len(b.tiles)
}

// TileAt returns the tile occupying (row, col), or nil.
func (b *Board) TileAt(row, col int) *Tile {
	for _, t := range b.tiles {
		if t.Row == row && t.Col == col {
			return t
		}
	}
	return nil
}

// EmptyCells returns the coordinates of all unoccupied cells in row-major
// order, so a random index selects uniformly among them.
func (b *Board) EmptyCells() []Cell {
	occupied := make(map[Cell]bool, len(b.tiles))
	for _, t := range b.tiles {
		occupied[Cell{t.Row, t.Col}] = true
	}

	var cells []Cell
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if !occupied[Cell{row, col}] {
				cells = append(cells, Cell{row, col})
			}
		}
	}
	return cells
}

// Full returns true if no cell is empty.
func (b *Board) Full() bool {
	return len(b.tiles) == b.Size*b.Size
}

// MaxValue returns the highest tile value on the board, 0 when empty.
func (b *Board) MaxValue() int {
	maxVal := 0
	for _, t := range b.tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	sum := 0
	for _, t := range b.tiles {
		sum += t.Value
	}
	return sum
}

// ClearFlags resets the per-move Merged and Spawned flags. Callers invoke
// it once per move command, before resolution; Resolve itself leaves the
// flags alone so a bare re-resolve cannot re-merge.
func (b *Board) ClearFlags() {
	for _, t := range b.tiles {
		t.Merged = false
		t.Spawned = false
	}
}

// Clone returns a deep copy of the board. Tile identities are preserved.
func (b *Board) Clone() *Board {
	clone := &Board{Size: b.Size, nextID: b.nextID}
	clone.tiles = make([]*Tile, len(b.tiles))
	for i, t := range b.tiles {
		copied := *t
		clone.tiles[i] = &copied
	}
	return clone
}

// place adds a tile to the board. Panics if the cell is already occupied
// or out of bounds: either means a defect in move resolution or spawning.
func (b *Board) place(t *Tile) {
	if t.Row < 0 || t.Row >= b.Size || t.Col < 0 || t.Col >= b.Size {
		panic(fmt.Sprintf("engine: tile %d placed out of bounds at (%d,%d)", t.ID, t.Row, t.Col))
	}
	if existing := b.TileAt(t.Row, t.Col); existing != nil {
		panic(fmt.Sprintf("engine: cell (%d,%d) already occupied by tile %d", t.Row, t.Col, existing.ID))
	}
	b.tiles = append(b.tiles, t)
}

// remove deletes a tile from the board by identity.
func (b *Board) remove(id TileID) {
	for i, t := range b.tiles {
		if t.ID == id {
			b.tiles = append(b.tiles[:i], b.tiles[i+1:]...)
			return
		}
	}
}
