package model

// EventType identifies the type of event
type EventType string

const (
	// Turn events
	EventRolled      EventType = "rolled"
	EventBusted      EventType = "busted"
	EventInvalidRoll EventType = "invalid_roll"
	EventBanked      EventType = "banked"
	EventCheated     EventType = "cheated"

	// Match events
	EventWon               EventType = "won"
	EventRenamed           EventType = "renamed"
	EventDifficultyChanged EventType = "difficulty_changed"
	EventRestarted         EventType = "restarted"
	EventAbandoned         EventType = "abandoned"
)

// TurnEvent describes the outcome of one applied command
type TurnEvent struct {
	Type       EventType
	Contestant *Contestant // who acted; nil for match-level events
	Payload    any         // Type-specific data
}

// RolledPayload contains data for rolled and busted events
type RolledPayload struct {
	Faces     []int // one value per die, in die order
	TurnTotal int   // turn total after the roll, zero after a bust
}

// BankedPayload contains data for banked, cheated and won events
type BankedPayload struct {
	Points int // points added by this command
	Score  int // overall score afterwards
}

// RenamedPayload contains data for renamed events
type RenamedPayload struct {
	OldName    string
	NewName    string
	StatsMoved bool // recorded history followed the rename
}

// DifficultyChangedPayload contains data for difficulty changed events
type DifficultyChangedPayload struct {
	Level Difficulty
}
