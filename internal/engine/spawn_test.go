package engine

import (
	"math/rand"
	"testing"
)

func TestSpawnDeterministic(t *testing.T) {
	// The same seed must produce the same cell and value.
	spawn := func() *Tile {
		b := NewBoard(4)
		return SpawnTile(b, rand.New(rand.NewSource(12345)))
	}

	first := spawn()
	second := spawn()

	if first == nil || second == nil {
		t.Fatal("spawn on an empty board should place a tile")
	}
	if first.Row != second.Row || first.Col != second.Col || first.Value != second.Value {
		t.Errorf("same seed produced different spawns: (%d,%d)=%d vs (%d,%d)=%d",
			first.Row, first.Col, first.Value, second.Row, second.Col, second.Value)
	}
	if first.Value != 2 && first.Value != 4 {
		t.Errorf("spawned value = %d, want 2 or 4", first.Value)
	}
	if !first.Spawned {
		t.Error("spawned tile should be flagged Spawned")
	}
}

func TestSpawnValueDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	twos, fours := 0, 0
	for i := 0; i < 2000; i++ {
		b := NewBoard(4)
		tile := SpawnTile(b, rng)
		switch tile.Value {
		case 2:
			twos++
		case 4:
			fours++
		default:
			t.Fatalf("spawned value = %d, want 2 or 4", tile.Value)
		}
	}

	// Expect roughly 10% fours; allow generous slack for the fixed seed.
	ratio := float64(fours) / float64(twos+fours)
	if ratio < 0.05 || ratio > 0.20 {
		t.Errorf("four ratio = %.3f, want around 0.10", ratio)
	}
}

func TestSpawnFullBoardNoOp(t *testing.T) {
	b := boardFromGrid(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	tile := SpawnTile(b, rand.New(rand.NewSource(1)))

	if tile != nil {
		t.Error("spawn on a full board should return nil")
	}
	if b.Len() != 16 {
		t.Errorf("tile count = %d, want 16 (board unchanged)", b.Len())
	}
}

func TestSpawnFillsOnlyEmptyCells(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBoard(3)

	for i := 0; i < 9; i++ {
		tile := SpawnTile(b, rng)
		if tile == nil {
			t.Fatalf("spawn %d returned nil with %d empty cells", i, 9-i)
		}
	}

	if !b.Full() {
		t.Error("nine spawns on a 3x3 board should fill it")
	}
	if SpawnTile(b, rng) != nil {
		t.Error("tenth spawn should be a no-op")
	}
}
