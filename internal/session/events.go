package session

// EventKind discriminates the notifications a command can produce.
type EventKind int

const (
	// EventGameOver fires when no legal move remains after a spawn.
	EventGameOver EventKind = iota
	// EventVictory fires the first time the winning tile is built.
	EventVictory
	// EventAchievement fires once per newly unlocked achievement id.
	EventAchievement
)

// Event is a discrete notification emitted alongside a snapshot. The
// presentation layer decides how to render it; the session never blocks
// on delivery.
type Event struct {
	Kind        EventKind
	Achievement string // achievement id, set for EventAchievement
}

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	case EventAchievement:
		return "achievement"
	default:
		return "unknown"
	}
}
