package engine

import (
	"math/rand"
	"testing"
)

// boardFromGrid builds a board from a value matrix, 0 meaning empty.
func boardFromGrid(t *testing.T, grid [][]int) *Board {
	t.Helper()

	b := NewBoard(len(grid))
	for row, line := range grid {
		if len(line) != b.Size {
			t.Fatalf("grid row %d has %d cells, want %d", row, len(line), b.Size)
		}
		for col, val := range line {
			if val == 0 {
				continue
			}
			tile := b.newTile(val, row, col)
			b.place(tile)
		}
	}
	return b
}

// gridFromBoard flattens a board back to a value matrix for comparison.
func gridFromBoard(b *Board) [][]int {
	grid := make([][]int, b.Size)
	for row := range grid {
		grid[row] = make([]int, b.Size)
	}
	for _, tile := range b.Tiles() {
		grid[tile.Row][tile.Col] = tile.Value
	}
	return grid
}

func gridsEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestResolveLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    [][]int
		expected [][]int
		score    int
		changed  bool
	}{
		{
			name: "merge pair before unequal tile",
			input: [][]int{
				{2, 2, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: [][]int{
				{4, 4, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   4,
			changed: true,
		},
		{
			name: "packed alternating row does not move",
			input: [][]int{
				{2, 4, 2, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: [][]int{
				{2, 4, 2, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   0,
			changed: false,
		},
		{
			name: "four equal tiles merge pairwise",
			input: [][]int{
				{4, 4, 4, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: [][]int{
				{8, 8, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   16,
			changed: true,
		},
		{
			name: "three equal tiles merge once",
			input: [][]int{
				{2, 2, 2, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: [][]int{
				{4, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   4,
			changed: true,
		},
		{
			name: "slide across gaps then merge",
			input: [][]int{
				{2, 0, 0, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: [][]int{
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   4,
			changed: true,
		},
		{
			name: "already settled",
			input: [][]int{
				{4, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: [][]int{
				{4, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   0,
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromGrid(t, tt.input)
			score, changed := Resolve(b, DirLeft)

			if got := gridFromBoard(b); !gridsEqual(got, tt.expected) {
				t.Errorf("Resolve left: got\n%v\nwant\n%v", got, tt.expected)
			}
			if score != tt.score {
				t.Errorf("Resolve left score = %d, want %d", score, tt.score)
			}
			if changed != tt.changed {
				t.Errorf("Resolve left changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestResolveAllDirections(t *testing.T) {
	input := [][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	tests := []struct {
		name     string
		dir      Direction
		expected [][]int
	}{
		{
			name: "up",
			dir:  DirUp,
			expected: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "down",
			dir:  DirDown,
			expected: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
		},
		{
			name: "right",
			dir:  DirRight,
			expected: [][]int{
				{0, 2, 4, 2},
				{0, 0, 0, 4},
				{0, 0, 4, 2},
				{0, 0, 0, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromGrid(t, input)
			_, changed := Resolve(b, tt.dir)

			if got := gridFromBoard(b); !gridsEqual(got, tt.expected) {
				t.Errorf("Resolve %s: got\n%v\nwant\n%v", tt.dir, got, tt.expected)
			}
			if !changed {
				t.Errorf("Resolve %s should report the board changed", tt.dir)
			}
		})
	}
}

func TestResolveIdempotentOnceSettled(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, dir := range dirs {
		b := boardFromGrid(t, [][]int{
			{2, 2, 4, 0},
			{4, 0, 4, 2},
			{0, 8, 0, 2},
			{2, 0, 2, 0},
		})

		Resolve(b, dir)
		_, changed := Resolve(b, dir)

		if changed {
			t.Errorf("second Resolve %s without a spawn should not change the board:\n%v", dir, gridFromBoard(b))
		}
	}
}

func TestResolveConservesMass(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard(4)
	for i := 0; i < 6; i++ {
		SpawnTile(b, rng)
	}

	for _, dir := range []Direction{DirLeft, DirDown, DirRight, DirUp} {
		before := b.Sum()
		b.ClearFlags()
		Resolve(b, dir)
		if after := b.Sum(); after != before {
			t.Errorf("Resolve %s changed tile mass: %d -> %d", dir, before, after)
		}
	}
}

func TestResolveReapplyIsNoOp(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for trial := 0; trial < 200; trial++ {
		b := NewBoard(4)
		for i, n := 0, 2+rng.Intn(10); i < n; i++ {
			SpawnTile(b, rng)
		}

		for _, dir := range dirs {
			c := b.Clone()
			c.ClearFlags()
			Resolve(c, dir)
			settled := gridFromBoard(c)

			// No flag clearing here: the second pass sits inside the
			// same move, so nothing may merge or slide again.
			_, changed := Resolve(c, dir)
			if changed {
				t.Fatalf("trial %d: second Resolve %s changed the board:\n%v", trial, dir, gridFromBoard(c))
			}
			if got := gridFromBoard(c); !gridsEqual(got, settled) {
				t.Fatalf("trial %d: second Resolve %s moved tiles: got\n%v\nwant\n%v", trial, dir, got, settled)
			}
		}
	}
}

func TestResolveNoDoubleMerge(t *testing.T) {
	// [2, 2, 4, _] left must give [4, 4, _, _]: the freshly merged 4 may
	// not absorb the pre-existing 4 within the same move.
	b := boardFromGrid(t, [][]int{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	score, _ := Resolve(b, DirLeft)

	if got := gridFromBoard(b)[0]; got[0] != 4 || got[1] != 4 {
		t.Errorf("row after move = %v, want [4 4 0 0]", got)
	}
	if score != 4 {
		t.Errorf("score = %d, want 4", score)
	}

	merged := 0
	for _, tile := range b.Tiles() {
		if tile.Merged {
			merged++
		}
	}
	if merged != 1 {
		t.Errorf("merged tile count = %d, want 1", merged)
	}
}

func TestMergeAssignsFreshIdentity(t *testing.T) {
	b := NewBoard(4)
	left := b.newTile(2, 0, 0)
	right := b.newTile(2, 0, 3)
	b.place(left)
	b.place(right)

	Resolve(b, DirLeft)

	if b.Len() != 1 {
		t.Fatalf("tile count after merge = %d, want 1", b.Len())
	}

	survivor := b.Tiles()[0]
	if survivor.ID == left.ID || survivor.ID == right.ID {
		t.Errorf("merged tile reused identity %d (sources %d, %d)", survivor.ID, left.ID, right.ID)
	}
	if !survivor.Merged {
		t.Error("merged tile should be flagged Merged")
	}
	if survivor.Value != 4 {
		t.Errorf("merged tile value = %d, want 4", survivor.Value)
	}
	if survivor.Row != 0 || survivor.Col != 0 {
		t.Errorf("merged tile settled at (%d,%d), want (0,0)", survivor.Row, survivor.Col)
	}
}

func TestTileIdentityStableAcrossSlide(t *testing.T) {
	b := NewBoard(4)
	tile := b.newTile(2, 2, 3)
	b.place(tile)

	Resolve(b, DirLeft)

	moved := b.TileAt(2, 0)
	if moved == nil {
		t.Fatal("tile should have slid to column 0")
	}
	if moved.ID != tile.ID {
		t.Errorf("sliding changed identity: %d -> %d", tile.ID, moved.ID)
	}
}

func TestResolveOneTilePerCell(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := NewBoard(4)
	SpawnTile(b, rng)
	SpawnTile(b, rng)

	dirs := []Direction{DirLeft, DirUp, DirRight, DirDown}
	for i := 0; i < 200; i++ {
		b.ClearFlags()
		_, changed := Resolve(b, dirs[i%len(dirs)])
		if changed {
			SpawnTile(b, rng)
		}

		seen := make(map[Cell]bool)
		for _, tile := range b.Tiles() {
			cell := Cell{tile.Row, tile.Col}
			if seen[cell] {
				t.Fatalf("move %d: two tiles share cell (%d,%d)", i, tile.Row, tile.Col)
			}
			seen[cell] = true
		}

		if IsGameOver(b) {
			break
		}
	}
}
