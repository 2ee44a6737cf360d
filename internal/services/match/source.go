package match

import (
	"context"

	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/services/bot"
)

// TurnView is the immutable snapshot a decision source sees. Sources
// never touch live match state, so a misbehaving source cannot corrupt
// a turn.
type TurnView struct {
	ActiveName    string
	OpponentName  string
	ActiveIsBot   bool
	TurnTotal     int
	OwnScore      int
	OpponentScore int
	WinningScore  int
	HasBot        bool // whether any contestant is computer-controlled
}

// Decision is a single directive for the active contestant
type Decision struct {
	Command model.Command
	// NewName carries the argument for rename decisions
	NewName string
	// Level carries the argument for difficulty decisions
	Level model.Difficulty
}

// DecisionSource produces decisions for a contestant. Each contestant
// is bound to a source when the match is built; the engine never
// inspects who is human mid-turn.
type DecisionSource interface {
	NextDecision(ctx context.Context, view TurnView) (Decision, error)
}

// botSource adapts a bot strategy into a decision source
type botSource struct {
	strategy bot.Strategy
}

// NewBotSource wraps a strategy so computer contestants can take turns
func NewBotSource(strategy bot.Strategy) DecisionSource {
	return &botSource{strategy: strategy}
}

func (s *botSource) NextDecision(ctx context.Context, view TurnView) (Decision, error) {
	cmd := s.strategy.Decide(view.TurnTotal, view.OwnScore, view.OpponentScore)
	return Decision{Command: cmd}, nil
}
