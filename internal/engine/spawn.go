package engine

import "math/rand"

// spawnFourChance is the default probability of spawning a 4 instead of a 2.
const spawnFourChance = 0.10

// SpawnTile places a new tile in a uniformly random empty cell, valued 2
// with probability 0.9 and 4 with probability 0.1, and returns it flagged
// Spawned. Returns nil without mutating the board when no cell is empty;
// that is not an error, the terminal evaluator independently detects the
// full-board case.
//
// The randomness source is supplied by the caller so tests can seed it.
func SpawnTile(b *Board, rng *rand.Rand) *Tile {
	return SpawnTileChance(b, rng, spawnFourChance)
}

// SpawnTileChance is SpawnTile with an explicit probability of spawning a 4.
func SpawnTileChance(b *Board, rng *rand.Rand, fourChance float64) *Tile {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return nil
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourChance {
		value = 4
	}

	t := b.newTile(value, cell.Row, cell.Col)
	t.Spawned = true
	b.place(t)
	return t
}
