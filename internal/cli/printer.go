package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/pigdice-go/internal/dice"
	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/services/match"
)

const boardWidth = 60

// matchPrinter renders match progress as interactive text.
// It implements match.Observer.
type matchPrinter struct {
	out         io.Writer
	contestants []*model.Contestant
}

func newMatchPrinter(out io.Writer, contestants []*model.Contestant) *matchPrinter {
	return &matchPrinter{out: out, contestants: contestants}
}

// TurnStarted draws the board and the turn header
func (p *matchPrinter) TurnStarted(view match.TurnView) {
	p.printBoard()
	if view.ActiveIsBot {
		fmt.Fprintf(p.out, "\n--- %s's turn ---\n", view.ActiveName)
	} else {
		fmt.Fprintf(p.out, "\n--- %s's turn ---  (type 'help' for commands)\n", view.ActiveName)
	}
}

// MatchEvent narrates the outcome of each applied decision
func (p *matchPrinter) MatchEvent(event *model.TurnEvent) {
	name := ""
	if event.Contestant != nil {
		name = event.Contestant.Name
	}

	switch event.Type {
	case model.EventRolled:
		payload := event.Payload.(model.RolledPayload)
		fmt.Fprintf(p.out, "%s rolled %s\n", name, rollDescription(payload.Faces))
		fmt.Fprintf(p.out, "Turn total is now %d. (bank to keep it)\n", payload.TurnTotal)
	case model.EventBusted:
		payload := event.Payload.(model.RolledPayload)
		fmt.Fprintf(p.out, "%s rolled %s\n", name, rollDescription(payload.Faces))
		fmt.Fprintln(p.out, "Oh no, rolled a 1. Turn lost.")
	case model.EventInvalidRoll:
		fmt.Fprintln(p.out, "Invalid roll. Turn lost.")
	case model.EventBanked:
		payload := event.Payload.(model.BankedPayload)
		fmt.Fprintf(p.out, "%s banks %d points (total %d).\n", name, payload.Points, payload.Score)
	case model.EventCheated:
		payload := event.Payload.(model.BankedPayload)
		fmt.Fprintf(p.out, "Cheat used! Adding %d points to %s (total %d).\n", payload.Points, name, payload.Score)
	case model.EventWon:
		payload := event.Payload.(model.BankedPayload)
		fmt.Fprintf(p.out, "\n%s wins with %d points!\n", name, payload.Score)
	case model.EventRenamed:
		payload := event.Payload.(model.RenamedPayload)
		if payload.StatsMoved {
			fmt.Fprintf(p.out, "Renamed %s to %s. Recorded scores moved over.\n", payload.OldName, payload.NewName)
		} else {
			fmt.Fprintf(p.out, "Renamed %s to %s.\n", payload.OldName, payload.NewName)
		}
	case model.EventDifficultyChanged:
		payload := event.Payload.(model.DifficultyChangedPayload)
		fmt.Fprintf(p.out, "Difficulty set to %s.\n", payload.Level)
	case model.EventRestarted:
		fmt.Fprintln(p.out, "Scores reset. Starting over.")
	case model.EventAbandoned:
		fmt.Fprintln(p.out, "Leaving the match. Nothing recorded.")
	}
}

// DecisionRejected explains why a decision did not apply
func (p *matchPrinter) DecisionRejected(decision match.Decision, err error) {
	fmt.Fprintf(p.out, "Cannot %s: %s\n", decision.Command, err)
}

func (p *matchPrinter) printBoard() {
	border := strings.Repeat("=", boardWidth)
	title := "PIG (DICE GAME)"
	pad := strings.Repeat(" ", (boardWidth-len(title))/2)

	first, second := p.contestants[0], p.contestants[1]
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, border)
	fmt.Fprintln(p.out, pad+title)
	fmt.Fprintln(p.out, border)
	fmt.Fprintf(p.out, "  %-18s : %3d    |    %-18s : %3d\n",
		seatLabel(first), first.Score, seatLabel(second), second.Score)
	fmt.Fprintln(p.out, border)
}

func seatLabel(c *model.Contestant) string {
	if c.IsBot {
		return c.Name + " [bot]"
	}
	return c.Name
}

func rollDescription(faces []int) string {
	parts := make([]string, len(faces))
	for i, v := range faces {
		parts[i] = fmt.Sprintf("%d %s", v, dice.Face(v))
	}
	return strings.Join(parts, ", ")
}

// announcingSource wraps the computer's decision source so its
// choices are narrated before they apply
type announcingSource struct {
	inner match.DecisionSource
	out   io.Writer
}

func (s *announcingSource) NextDecision(ctx context.Context, view match.TurnView) (match.Decision, error) {
	decision, err := s.inner.NextDecision(ctx, view)
	if err != nil {
		return decision, err
	}
	fmt.Fprintf(s.out, "[%s decides to %s]\n", view.ActiveName, decision.Command)
	return decision, nil
}
