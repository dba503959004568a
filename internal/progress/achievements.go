// Package progress derives achievement unlocks from game state. Evaluation
// is a pure function of score, move count and the highest tile; it never
// touches the board.
package progress

// Achievement identifiers. These are persisted, so they must stay stable.
const (
	ScoreNovice = "score_1000"
	ScoreMaster = "score_10000"
	Marathon    = "moves_100"
	Tile512     = "tile_512"
	Tile1024    = "tile_1024"
	Winner      = "winner"
)

// kind selects which input an achievement thresholds against.
type kind int

const (
	kindScore kind = iota
	kindMoves
	kindMaxTile
	kindWin
)

// Achievement describes a single unlockable.
type Achievement struct {
	ID          string
	Title       string
	Description string

	kind      kind
	threshold int
}

// Achievements is the fixed unlock table, in display order.
var Achievements = []Achievement{
	{ID: ScoreNovice, Title: "Point Collector", Description: "Reach a score of 1,000", kind: kindScore, threshold: 1000},
	{ID: ScoreMaster, Title: "Point Hoarder", Description: "Reach a score of 10,000", kind: kindScore, threshold: 10000},
	{ID: Marathon, Title: "Marathon", Description: "Make 100 moves in one game", kind: kindMoves, threshold: 100},
	{ID: Tile512, Title: "Halfway There", Description: "Build a 512 tile", kind: kindMaxTile, threshold: 512},
	{ID: Tile1024, Title: "Almost Famous", Description: "Build a 1024 tile", kind: kindMaxTile, threshold: 1024},
	{ID: Winner, Title: "Champion", Description: "Build the winning tile", kind: kindWin},
}

// ByID returns the achievement with the given id, or nil.
func ByID(id string) *Achievement {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}

// IDs returns all achievement ids in display order.
func IDs() []string {
	ids := make([]string, len(Achievements))
	for i, a := range Achievements {
		ids[i] = a.ID
	}
	return ids
}

// Evaluate returns the ids newly unlocked by the given state, skipping any
// already in unlocked. Repeated evaluation at the same or higher state
// yields nothing new, so each id fires at most once per persisted set.
func Evaluate(score, moveCount, maxTile, winningValue int, unlocked map[string]bool) []string {
	var newly []string

	for _, a := range Achievements {
		if unlocked[a.ID] {
			continue
		}

		hit := false
		switch a.kind {
		case kindScore:
			hit = score >= a.threshold
		case kindMoves:
			hit = moveCount >= a.threshold
		case kindMaxTile:
			hit = maxTile >= a.threshold
		case kindWin:
			// An empty board (maxTile 0) or an unset target never wins.
			hit = winningValue > 0 && maxTile >= winningValue
		}

		if hit {
			newly = append(newly, a.ID)
		}
	}

	return newly
}
