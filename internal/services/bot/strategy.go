package bot

import "github.com/mcoot/pigdice-go/internal/model"

// Strategy defines how the computer chooses between rolling and banking
type Strategy interface {
	// Decide returns CommandRoll or CommandBank for the visible state.
	// Implementations must be pure: no I/O and no randomness.
	Decide(turnTotal, ownScore, opponentScore int) model.Command
}

// AdjustableStrategy is a Strategy whose difficulty can change mid-match
type AdjustableStrategy interface {
	Strategy

	// SetDifficulty switches level, taking effect from the next decision
	SetDifficulty(level model.Difficulty) error
	// Difficulty returns the active level
	Difficulty() model.Difficulty
}
