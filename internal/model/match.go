package model

// DefaultWinningScore is the traditional Pig target
const DefaultWinningScore = 100

// MatchState represents where a match is in its lifecycle
type MatchState string

const (
	// MatchStateTurnStart means a new turn is about to begin
	MatchStateTurnStart MatchState = "turn_start"
	// MatchStateAwaitingDecision means the active contestant must roll or bank
	MatchStateAwaitingDecision MatchState = "awaiting_decision"
	// MatchStateWon means a contestant reached the winning score
	MatchStateWon MatchState = "won"
	// MatchStateAbandoned means the match ended without a winner
	MatchStateAbandoned MatchState = "abandoned"
)

// Finished reports whether the match has reached a terminal state
func (s MatchState) Finished() bool {
	return s == MatchStateWon || s == MatchStateAbandoned
}

// MatchResult summarizes a finished match
type MatchResult struct {
	State  MatchState
	Winner *Contestant // nil unless the match was won
}
