package bot

import "github.com/mcoot/pigdice-go/internal/model"

// Base hold thresholds per difficulty
const (
	easyThreshold   = 15
	mediumThreshold = 20
	hardThreshold   = 25
)

// Medium banks earlier once the opponent is closing on the target
const (
	mediumOpponentDanger = 85
	mediumLateThreshold  = 18
)

// Hard shifts its threshold by standing in the match and weighs
// expected value near the target. The d6 odds are fixed: a 1 busts
// with probability 1/6, and the mean face is 3.5.
const (
	behindBonus    = 3
	aheadCut       = 3
	aheadGap       = 15
	endgameCut     = 2
	opponentDanger = 90

	bustChance     = 1.0 / 6.0
	continueChance = 5.0 / 6.0
	meanFace       = 3.5
	riskLimit      = 5.0
)

// ThresholdStrategy banks once the turn total clears a difficulty-based
// threshold, with positional adjustments on the harder levels
type ThresholdStrategy struct {
	difficulty    model.Difficulty
	holdThreshold int
	winningScore  int
}

// Ensure ThresholdStrategy implements AdjustableStrategy
var _ AdjustableStrategy = (*ThresholdStrategy)(nil)

// NewThresholdStrategy creates a strategy at the given difficulty,
// banking any turn that would reach winningScore (0 means the default)
func NewThresholdStrategy(difficulty model.Difficulty, winningScore int) (*ThresholdStrategy, error) {
	if winningScore <= 0 {
		winningScore = model.DefaultWinningScore
	}
	s := &ThresholdStrategy{winningScore: winningScore}
	if err := s.SetDifficulty(difficulty); err != nil {
		return nil, err
	}
	return s, nil
}

// SetDifficulty switches level and resets the base hold threshold
func (s *ThresholdStrategy) SetDifficulty(level model.Difficulty) error {
	switch level {
	case model.DifficultyEasy:
		s.holdThreshold = easyThreshold
	case model.DifficultyMedium:
		s.holdThreshold = mediumThreshold
	case model.DifficultyHard:
		s.holdThreshold = hardThreshold
	default:
		return model.ErrInvalidDifficulty
	}
	s.difficulty = level
	return nil
}

// Difficulty returns the active level
func (s *ThresholdStrategy) Difficulty() model.Difficulty {
	return s.difficulty
}

// Decide returns CommandRoll or CommandBank for the visible state
func (s *ThresholdStrategy) Decide(turnTotal, ownScore, opponentScore int) model.Command {
	// Banking a winning total is always right
	if ownScore+turnTotal >= s.winningScore {
		return model.CommandBank
	}

	switch s.difficulty {
	case model.DifficultyEasy:
		if turnTotal >= s.holdThreshold {
			return model.CommandBank
		}
		return model.CommandRoll
	case model.DifficultyMedium:
		if turnTotal >= s.holdThreshold {
			return model.CommandBank
		}
		if opponentScore > mediumOpponentDanger && turnTotal >= mediumLateThreshold {
			return model.CommandBank
		}
		return model.CommandRoll
	default:
		return s.decideHard(turnTotal, ownScore, opponentScore)
	}
}

func (s *ThresholdStrategy) decideHard(turnTotal, ownScore, opponentScore int) model.Command {
	threshold := s.holdThreshold
	scoreGap := ownScore - opponentScore
	if scoreGap < 0 {
		threshold += behindBonus
	} else if scoreGap > aheadGap {
		threshold -= aheadCut
	}
	if opponentScore >= opponentDanger {
		threshold -= endgameCut
	}

	// Within reach of the target, compare the expected value of one
	// more roll against what a bust would forfeit
	expectedGain := continueChance * meanFace
	expectedNext := float64(ownScore+turnTotal) + expectedGain
	if expectedNext >= float64(s.winningScore) {
		if continueChance*expectedGain > bustChance*float64(turnTotal) {
			return model.CommandRoll
		}
		return model.CommandBank
	}

	if turnTotal >= threshold {
		return model.CommandBank
	}

	// Keep rolling while the expected bust loss stays acceptable
	if bustChance*float64(turnTotal) < riskLimit {
		return model.CommandRoll
	}
	return model.CommandBank
}
