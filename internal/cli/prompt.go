package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/services/match"
)

const promptLine = "> (r)oll, (b)ank, (c)heat, (n)ame, (d)ifficulty, restart, (q)uit, help: "

const helpText = `
Commands during your turn:
  r, roll       - roll the die
  b, bank       - bank the turn total into your score (h and hold also work)
  c, cheat      - add 50 points to your score, forfeiting the turn total
  n, name       - change your player name, recorded scores move with you
  d, difficulty - change the computer difficulty (easy, medium, hard)
  restart       - reset both scores and start the match over
  q, quit       - leave the match without recording anything
`

var commandAliases = map[string]model.Command{
	"r":          model.CommandRoll,
	"roll":       model.CommandRoll,
	"b":          model.CommandBank,
	"bank":       model.CommandBank,
	"h":          model.CommandBank,
	"hold":       model.CommandBank,
	"c":          model.CommandCheat,
	"cheat":      model.CommandCheat,
	"n":          model.CommandRename,
	"name":       model.CommandRename,
	"d":          model.CommandDifficulty,
	"difficulty": model.CommandDifficulty,
	"ai":         model.CommandDifficulty,
	"restart":    model.CommandRestart,
	"q":          model.CommandQuit,
	"quit":       model.CommandQuit,
	"help":       model.CommandHelp,
	"?":          model.CommandHelp,
}

// Prompter reads match decisions from an interactive terminal.
// Unknown input and help re-prompt locally, so every decision it
// returns is a playable command.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and echoing to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NextDecision prompts until the input resolves to a command
func (p *Prompter) NextDecision(_ context.Context, view match.TurnView) (match.Decision, error) {
	for {
		fmt.Fprint(p.out, promptLine)

		line, err := p.in.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			// End of input plays as a quit
			return match.Decision{}, err
		}

		cmd, ok := commandAliases[strings.ToLower(strings.TrimSpace(line))]
		if !ok {
			fmt.Fprintln(p.out, "Unknown command. Type 'help' for commands.")
			continue
		}

		switch cmd {
		case model.CommandHelp:
			fmt.Fprint(p.out, helpText)
		case model.CommandRename:
			name, ok := p.promptName(view)
			if !ok {
				continue
			}
			return match.Decision{Command: model.CommandRename, NewName: name}, nil
		case model.CommandDifficulty:
			if !view.HasBot {
				fmt.Fprintln(p.out, "Difficulty only applies when the computer is playing.")
				continue
			}
			level, ok := p.promptDifficulty()
			if !ok {
				continue
			}
			return match.Decision{Command: model.CommandDifficulty, Level: level}, nil
		default:
			return match.Decision{Command: cmd}, nil
		}
	}
}

func (p *Prompter) promptName(view match.TurnView) (string, bool) {
	for {
		fmt.Fprint(p.out, "Enter new name [Enter to cancel]: ")

		line, err := p.in.ReadString('\n')
		name := strings.TrimSpace(line)
		if name == "" {
			fmt.Fprintln(p.out, "Name change cancelled.")
			return "", false
		}
		if strings.EqualFold(name, view.OpponentName) {
			fmt.Fprintln(p.out, "That name is taken by your opponent.")
			if err != nil {
				return "", false
			}
			continue
		}
		return name, true
	}
}

func (p *Prompter) promptDifficulty() (model.Difficulty, bool) {
	for {
		fmt.Fprint(p.out, "Set difficulty (easy, medium, hard) [Enter to cancel]: ")

		line, err := p.in.ReadString('\n')
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(p.out, "Difficulty unchanged.")
			return "", false
		}

		level, perr := model.ParseDifficulty(line)
		if perr != nil {
			fmt.Fprintln(p.out, "Invalid difficulty. Choose easy, medium or hard.")
			if err != nil {
				return "", false
			}
			continue
		}
		return level, true
	}
}
