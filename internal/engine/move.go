package engine

import "sort"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the per-step row/col offset for the direction.
func (d Direction) delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// Resolve slides every tile as far as possible in the given direction,
// merging equal-valued collisions, and returns the score gained plus
// whether the board changed. When nothing can move the board is left
// untouched and changed is false, so callers know not to spawn a tile
// or count the move.
//
// Tiles settle nearest-wall-first: for an upward move the row-0 tiles
// resolve before row-1 tiles, and so on, so each tile only ever walks
// into cells whose final occupants are already known. A tile produced by
// a merge is flagged Merged and cannot merge again within the same move.
//
// Resolve does not reset the per-move flags: the caller clears them once
// per move command (see Board.ClearFlags). Re-resolving a settled board
// therefore reports changed=false and leaves it untouched.
func Resolve(b *Board, dir Direction) (scoreDelta int, changed bool) {
	order := make([]*Tile, len(b.tiles))
	copy(order, b.tiles)
	sortForDirection(order, dir)

	dr, dc := dir.delta()

	for _, t := range order {
		row, col := t.Row, t.Col

		// Walk one cell at a time until the wall or a settled tile.
		for {
			nextRow, nextCol := row+dr, col+dc
			if nextRow < 0 || nextRow >= b.Size || nextCol < 0 || nextCol >= b.Size {
				break
			}

			blocker := b.TileAt(nextRow, nextCol)
			if blocker == nil {
				row, col = nextRow, nextCol
				continue
			}

			if blocker.Value == t.Value && !blocker.Merged && !t.Merged {
				// The moving tile is absorbed into the blocker's cell.
				// Both identities retire; the survivor gets a fresh one.
				b.remove(t.ID)
				b.remove(blocker.ID)

				merged := b.newTile(t.Value*2, blocker.Row, blocker.Col)
				merged.Merged = true
				b.place(merged)

				scoreDelta += merged.Value
				changed = true
			}

			break
		}

		// Settle the tile if it is still on the board and moved.
		if b.TileAt(t.Row, t.Col) != t {
			continue // absorbed by a merge above
		}
		if row != t.Row || col != t.Col {
			t.Row, t.Col = row, col
			changed = true
		}
	}

	return scoreDelta, changed
}

// sortForDirection orders tiles so the one nearest the destination wall
// resolves first.
func sortForDirection(tiles []*Tile, dir Direction) {
	sort.SliceStable(tiles, func(i, j int) bool {
		a, b := tiles[i], tiles[j]
		switch dir {
		case DirUp:
			return a.Row < b.Row
		case DirDown:
			return a.Row > b.Row
		case DirLeft:
			return a.Col < b.Col
		default: // DirRight
			return a.Col > b.Col
		}
	})
}
