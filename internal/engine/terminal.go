package engine

// IsGameOver returns true when no legal move remains: the board is full
// and no tile has an orthogonal neighbor of equal value. A board with an
// empty cell is never game over.
func IsGameOver(b *Board) bool {
	if !b.Full() {
		return false
	}
	return !hasAdjacentPair(b)
}

// CanMove returns true if at least one direction would change the board.
func CanMove(b *Board) bool {
	return !b.Full() || hasAdjacentPair(b)
}

// HasWon returns true if any tile has reached the winning value.
// Victory does not end the session; the caller decides what to do with it.
func HasWon(b *Board, winningValue int) bool {
	return b.MaxValue() >= winningValue
}

// hasAdjacentPair reports whether any tile's right or bottom neighbor
// shares its value. Checking only those two covers every adjacent pair.
func hasAdjacentPair(b *Board) bool {
	for _, t := range b.tiles {
		if right := b.TileAt(t.Row, t.Col+1); right != nil && right.Value == t.Value {
			return true
		}
		if below := b.TileAt(t.Row+1, t.Col); below != nil && below.Value == t.Value {
			return true
		}
	}
	return false
}
