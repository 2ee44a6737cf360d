package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/simulate"
)

func newSimulateCmd() *cobra.Command {
	var (
		games        int
		seed         int64
		target       int
		difficulties []string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Pit the computer difficulties against each other",
		Long: `simulate plays automated matches between every pair of difficulty
levels and reports each difficulty's win rate. The same seed always
reproduces the same series.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := make([]model.Difficulty, 0, len(difficulties))
			for _, d := range difficulties {
				level, err := model.ParseDifficulty(d)
				if err != nil {
					return err
				}
				levels = append(levels, level)
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			series, err := simulate.Run(cmd.Context(), simulate.Config{
				Difficulties: levels,
				GamesPerPair: games,
				WinningScore: target,
				Seed:         seed,
			})
			if err != nil {
				return err
			}

			report := SimulationReport{
				GamesPerPair: series.GamesPerPair,
				Seed:         seed,
				Wins:         make(map[string]int, len(series.Wins)),
				Lines:        series.Lines(),
			}
			for _, pair := range series.Pairs {
				report.Pairings = append(report.Pairings, PairingWins{
					First:      string(pair.First),
					Second:     string(pair.Second),
					FirstWins:  pair.FirstWins,
					SecondWins: pair.SecondWins,
				})
			}
			for level, wins := range series.Wins {
				report.Wins[string(level)] = wins
			}

			NewOutput(cfg.Output).Print(report)
			return nil
		},
	}

	cmd.Flags().IntVar(&games, "games", simulate.DefaultGamesPerPair, "Games to play per difficulty pairing")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Dice seed for reproducible results (0 picks one from the clock)")
	cmd.Flags().IntVar(&target, "target", model.DefaultWinningScore, "Score needed to win each game")
	cmd.Flags().StringSliceVar(&difficulties, "difficulties", []string{"easy", "medium", "hard"}, "Difficulty levels to compare")

	return cmd
}
