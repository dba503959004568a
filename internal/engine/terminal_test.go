package engine

import "testing"

func TestIsGameOver(t *testing.T) {
	tests := []struct {
		name string
		grid [][]int
		over bool
	}{
		{
			name: "checkerboard with no adjacent equals",
			grid: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			over: true,
		},
		{
			name: "full board with one adjacent pair",
			grid: [][]int{
				{2, 2, 2, 4},
				{4, 8, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			over: false,
		},
		{
			name: "full board with vertical pair",
			grid: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{2, 2, 4, 2},
			},
			over: false,
		},
		{
			name: "board with an empty cell",
			grid: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 0, 4},
				{4, 2, 4, 2},
			},
			over: false,
		},
		{
			name: "all distinct values",
			grid: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			over: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromGrid(t, tt.grid)
			if got := IsGameOver(b); got != tt.over {
				t.Errorf("IsGameOver = %v, want %v", got, tt.over)
			}
			if got := CanMove(b); got == tt.over {
				t.Errorf("CanMove = %v, want %v", got, !tt.over)
			}
		})
	}
}

func TestGameOverBoardMovesAreNoOps(t *testing.T) {
	grid := [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		b := boardFromGrid(t, grid)
		score, changed := Resolve(b, dir)
		if changed || score != 0 {
			t.Errorf("Resolve %s on a dead board: changed=%v score=%d, want no-op", dir, changed, score)
		}
		if !gridsEqual(gridFromBoard(b), grid) {
			t.Errorf("Resolve %s modified a dead board", dir)
		}
	}
}

func TestHasWon(t *testing.T) {
	b := boardFromGrid(t, [][]int{
		{1024, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if HasWon(b, 2048) {
		t.Error("1024 should not win with a 2048 target")
	}
	if !HasWon(b, 1024) {
		t.Error("1024 should win with a 1024 target")
	}

	b = boardFromGrid(t, [][]int{
		{4096, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if !HasWon(b, 2048) {
		t.Error("values above the target still count as a win")
	}
}

func TestSmallestAndLargestGrids(t *testing.T) {
	for _, size := range []int{3, 6} {
		b := NewBoard(size)
		if got := len(b.EmptyCells()); got != size*size {
			t.Errorf("size %d: empty cells = %d, want %d", size, got, size*size)
		}
		if IsGameOver(b) {
			t.Errorf("size %d: empty board should not be game over", size)
		}
	}
}
