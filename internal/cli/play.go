package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/pigdice-go/internal/dice"
	"github.com/mcoot/pigdice-go/internal/factory"
	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/services/bot"
	"github.com/mcoot/pigdice-go/internal/services/match"
)

func newPlayCmd() *cobra.Command {
	var (
		twoPlayer  bool
		name       string
		name2      string
		difficulty string
		target     int
		faces      int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match of Pig",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			// An unreadable ledger should not stop a game; play
			// continues and recording starts fresh.
			if err := app.Ledger.Load(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not load scores: %v\n", err)
			}

			// Single player keeps the plain default name, two
			// players get numbered ones
			if twoPlayer && !cmd.Flags().Changed("name") {
				name = "Player1"
			}

			return runPlay(cmd, app, playOptions{
				twoPlayer:  twoPlayer,
				name:       name,
				name2:      name2,
				difficulty: difficulty,
				target:     target,
				faces:      faces,
			})
		},
	}

	cmd.Flags().BoolVar(&twoPlayer, "two-player", false, "Play against another human instead of the computer")
	cmd.Flags().StringVar(&name, "name", "Player", "Your player name")
	cmd.Flags().StringVar(&name2, "name2", "Player2", "Second player's name (two-player only)")
	cmd.Flags().StringVar(&difficulty, "difficulty", string(model.DifficultyMedium), "Computer difficulty: easy, medium, hard")
	cmd.Flags().IntVar(&target, "target", model.DefaultWinningScore, "Score needed to win")
	cmd.Flags().IntVar(&faces, "faces", dice.DefaultFaces, "Number of faces on the die")

	return cmd
}

type playOptions struct {
	twoPlayer  bool
	name       string
	name2      string
	difficulty string
	target     int
	faces      int
}

func runPlay(cmd *cobra.Command, app *factory.App, opts playOptions) error {
	out := cmd.OutOrStdout()
	prompter := NewPrompter(cmd.InOrStdin(), out)

	first, err := model.NewContestant(opts.name, false)
	if err != nil {
		return err
	}

	var (
		second   *model.Contestant
		sources  []match.DecisionSource
		strategy bot.AdjustableStrategy
	)
	if opts.twoPlayer {
		other, err := model.NewContestant(opts.name2, false)
		if err != nil {
			return err
		}
		second = other
		sources = []match.DecisionSource{prompter, prompter}
	} else {
		level, err := model.ParseDifficulty(opts.difficulty)
		if err != nil {
			return fmt.Errorf("invalid difficulty %q: choose easy, medium or hard", opts.difficulty)
		}
		computer, err := model.NewContestant("Computer", true)
		if err != nil {
			return err
		}
		second = computer
		threshold, err := bot.NewThresholdStrategy(level, opts.target)
		if err != nil {
			return err
		}
		strategy = threshold
		sources = []match.DecisionSource{
			prompter,
			&announcingSource{inner: match.NewBotSource(threshold), out: out},
		}
	}

	hand, err := dice.NewHand(1, opts.faces)
	if err != nil {
		return err
	}

	contestants := []*model.Contestant{first, second}
	engine, err := match.NewEngine(match.Config{
		Contestants:  contestants,
		Sources:      sources,
		WinningScore: opts.target,
		Strategy:     strategy,
		Hand:         hand,
		Recorder:     app.Ledger,
		Random:       app.Random,
		Clock:        app.Clock,
		Logger:       cfg.Logger(),
	})
	if err != nil {
		return err
	}

	if _, err := engine.Run(cmd.Context(), newMatchPrinter(out, contestants)); err != nil {
		// The match itself finished; only recording failed
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	return nil
}
