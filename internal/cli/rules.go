package cli

import (
	"github.com/spf13/cobra"
)

const rulesText = `PIG (DICE GAME) RULES

- Players take turns to roll a die
- Each non-1 roll adds to your turn total
- Roll a 1 and you lose the turn total, ending your turn
- Bank the turn total to add it to your overall score
- First player to reach 100 points wins
- You can change your name during the game, recorded scores move with you

Cheats and options:
- During your turn, type 'cheat' or 'c' to add 50 points
- Type 'restart' to reset both players' scores
- Type 'd' or 'difficulty' to change the computer difficulty (easy, medium, hard)
- Type 'n' or 'name' to change your player name`

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Explain how Pig is played",
		RunE: func(cmd *cobra.Command, args []string) error {
			NewOutput(cfg.Output).PrintMessage(rulesText)
			return nil
		},
	}
}
