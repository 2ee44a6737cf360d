package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/pigdice-go/internal/histogram"
)

func newScoresCmd() *cobra.Command {
	var (
		perGame bool
		scale   int
	)

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show recorded high scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Ledger.Load(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)

			players := app.Ledger.HighScores()
			if len(players) == 0 {
				out.PrintMessage("No scores recorded yet.")
				return nil
			}

			report := ScoreReport{}
			for i, p := range players {
				report.Players = append(report.Players, RankedPlayer{
					Rank:        i + 1,
					Name:        p.Name,
					TotalPoints: p.Stats.TotalPoints,
					Games:       len(p.Stats.Games),
				})
			}

			chart := histogram.New(scale)
			report.Totals = chart.Totals(players)
			if perGame {
				report.PerGame = chart.PerGame(players)
			}
			report.Key = chart.Key()

			out.Print(report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&perGame, "per-game", false, "Chart every recorded game instead of totals only")
	cmd.Flags().IntVar(&scale, "scale", 10, "Points represented by one histogram star")

	cmd.AddCommand(newScoresHistoryCmd())
	cmd.AddCommand(newScoresRenameCmd())
	cmd.AddCommand(newScoresClearCmd())

	return cmd
}

func newScoresHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <name>",
		Short: "Show one player's recorded games",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Ledger.Load(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)

			name := args[0]
			games := app.Ledger.History(name)
			if len(games) == 0 {
				out.PrintMessage(fmt.Sprintf("No games recorded for %s.", name))
				return nil
			}

			total := 0
			for _, g := range games {
				total += g.Points
			}

			out.Print(HistoryReport{
				Name:        name,
				Games:       games,
				TotalPoints: total,
			})
			return nil
		},
	}
}

func newScoresRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Move a player's recorded scores to a new name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Ledger.Load(cmd.Context()); err != nil {
				return err
			}

			oldName, newName := args[0], args[1]
			if err := app.Ledger.RenamePlayer(cmd.Context(), oldName, newName); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Renamed %s to %s.", oldName, newName))
			return nil
		},
	}
}

func newScoresClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "This deletes every recorded score. Type 'yes' to confirm: ")
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if strings.TrimSpace(line) != "yes" {
					out.PrintMessage("Aborted, scores kept.")
					return nil
				}
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Ledger.Load(cmd.Context()); err != nil {
				return err
			}

			if err := app.Ledger.ClearScores(cmd.Context()); err != nil {
				return err
			}

			out.PrintMessage("All scores cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
