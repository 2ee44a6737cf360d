package simulate

import (
	"context"
	"fmt"

	"github.com/mcoot/pigdice-go/internal/dependencies/random"
	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/services/bot"
	"github.com/mcoot/pigdice-go/internal/services/match"
)

// DefaultGamesPerPair is how many games each pairing plays when the
// config does not say otherwise
const DefaultGamesPerPair = 10

// Config controls a strategy comparison series
type Config struct {
	// Difficulties to pit against each other; empty means all levels
	Difficulties []model.Difficulty
	// GamesPerPair is the number of games per pairing
	GamesPerPair int
	// WinningScore is the banked target; 0 means the standard 100
	WinningScore int
	// Seed fixes the dice sequence so a config reproduces exactly
	Seed int64
}

// PairResult is the outcome of one head-to-head pairing
type PairResult struct {
	First      model.Difficulty
	Second     model.Difficulty
	FirstWins  int
	SecondWins int
}

// Series is the outcome of a full round-robin
type Series struct {
	Difficulties []model.Difficulty
	GamesPerPair int
	Pairs        []PairResult
	Wins         map[model.Difficulty]int
}

// GamesPerDifficulty is how many games each difficulty played in total
func (s *Series) GamesPerDifficulty() int {
	// No self play
	return s.GamesPerPair * (len(s.Difficulties) - 1)
}

// Lines renders the series as pair-by-pair results followed by
// overall standings
func (s *Series) Lines() []string {
	lines := make([]string, 0, len(s.Pairs)+len(s.Difficulties))
	for _, pair := range s.Pairs {
		lines = append(lines, fmt.Sprintf("%s vs %s: %s",
			pair.First, pair.Second, RatioString(pair.FirstWins, pair.SecondWins)))
	}
	games := s.GamesPerDifficulty()
	for _, level := range s.Difficulties {
		wins := s.Wins[level]
		lines = append(lines, fmt.Sprintf("Overall wins for %s: %s",
			level, RatioString(wins, games-wins)))
	}
	return lines
}

// Run plays every pair of difficulties against each other using the
// real match rules, alternating who takes the first turn. All games
// draw from one seeded dice sequence, so the same config always
// produces the same series.
func Run(ctx context.Context, cfg Config) (*Series, error) {
	difficulties := cfg.Difficulties
	if len(difficulties) == 0 {
		difficulties = model.ValidDifficulties()
	}
	if len(difficulties) < 2 {
		return nil, fmt.Errorf("need at least two difficulties to compare")
	}
	seen := make(map[model.Difficulty]bool, len(difficulties))
	for _, level := range difficulties {
		if seen[level] {
			return nil, fmt.Errorf("difficulty %q listed twice", level)
		}
		seen[level] = true
	}

	gamesPerPair := cfg.GamesPerPair
	if gamesPerPair <= 0 {
		gamesPerPair = DefaultGamesPerPair
	}

	rng := random.NewSeeded(cfg.Seed)
	series := &Series{
		Difficulties: difficulties,
		GamesPerPair: gamesPerPair,
		Wins:         make(map[model.Difficulty]int, len(difficulties)),
	}

	for i := 0; i < len(difficulties); i++ {
		for j := i + 1; j < len(difficulties); j++ {
			pair := PairResult{First: difficulties[i], Second: difficulties[j]}
			for g := 0; g < gamesPerPair; g++ {
				first, second := pair.First, pair.Second
				if g%2 == 1 {
					first, second = second, first
				}
				winner, err := playOne(ctx, rng, first, second, cfg.WinningScore)
				if err != nil {
					return nil, err
				}
				if winner == pair.First {
					pair.FirstWins++
				} else {
					pair.SecondWins++
				}
			}
			series.Pairs = append(series.Pairs, pair)
			series.Wins[pair.First] += pair.FirstWins
			series.Wins[pair.Second] += pair.SecondWins
		}
	}
	return series, nil
}

// playOne runs a single bot-versus-bot match and returns the winning
// difficulty. Nothing is recorded to the ledger.
func playOne(ctx context.Context, rng random.Random, first, second model.Difficulty, winningScore int) (model.Difficulty, error) {
	contestants := make([]*model.Contestant, 0, 2)
	sources := make([]match.DecisionSource, 0, 2)
	for _, level := range []model.Difficulty{first, second} {
		contestant, err := model.NewContestant(string(level), true)
		if err != nil {
			return "", err
		}
		strategy, err := bot.NewThresholdStrategy(level, winningScore)
		if err != nil {
			return "", err
		}
		contestants = append(contestants, contestant)
		sources = append(sources, match.NewBotSource(strategy))
	}

	engine, err := match.NewEngine(match.Config{
		Contestants:  contestants,
		Sources:      sources,
		WinningScore: winningScore,
		Random:       rng,
	})
	if err != nil {
		return "", err
	}

	result, err := engine.Run(ctx, nil)
	if err != nil {
		return "", err
	}
	if result.Winner == nil {
		return "", fmt.Errorf("simulated game ended without a winner")
	}
	return model.Difficulty(result.Winner.Name), nil
}

// RatioString lists each value alongside its share of the total,
// e.g. RatioString(1, 2, 3) = "1/6 (16.7%), 2/6 (33.3%), 3/6 (50.0%)"
func RatioString(vals ...int) string {
	total := 0
	for _, val := range vals {
		total += val
	}
	s := ""
	for _, val := range vals {
		if s != "" {
			s += ", "
		}
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(val) / float64(total)
		}
		s += fmt.Sprintf("%d/%d (%.1f%%)", val, total, pct)
	}
	return s
}
