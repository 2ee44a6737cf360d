package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mcoot/pigdice-go/internal/dependencies/clock"
	"github.com/mcoot/pigdice-go/internal/dependencies/random"
	"github.com/mcoot/pigdice-go/internal/dice"
	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/services/bot"
)

// cheatPoints is the flat score awarded by the cheat command. The
// accumulated turn total is discarded, so cheating mid-streak wastes
// whatever was already rolled.
const cheatPoints = 50

// GameRecorder persists match outcomes. A nil recorder disables
// recording entirely, which simulations use to keep throwaway games
// out of the score ledger.
type GameRecorder interface {
	RecordGame(ctx context.Context, name string, points int) error
	RenamePlayer(ctx context.Context, oldName, newName string) error
}

// Observer receives progress callbacks while Run drives a match
type Observer interface {
	// TurnStarted fires when a contestant's turn begins
	TurnStarted(view TurnView)
	// MatchEvent fires for every applied decision's outcome
	MatchEvent(event *model.TurnEvent)
	// DecisionRejected fires when a decision could not be applied.
	// The match continues with the same contestant.
	DecisionRejected(decision Decision, err error)
}

// Config assembles a match. Contestants and Sources are parallel
// slices; source i decides for contestant i.
type Config struct {
	Contestants []*model.Contestant
	Sources     []DecisionSource
	// WinningScore is the target to bank; 0 means the standard 100
	WinningScore int
	// Strategy is the adjustable strategy shared by bot sources, kept
	// so difficulty changes mid-match reach the bot. Nil when no
	// contestant is computer-controlled.
	Strategy bot.AdjustableStrategy
	// Hand defaults to a single six-sided die
	Hand *dice.Hand
	// Recorder may be nil to disable score recording
	Recorder GameRecorder
	Random   random.Random
	Clock    clock.Clock
	Logger   *slog.Logger
}

// Engine runs a single match between two contestants
type Engine struct {
	logger   *slog.Logger
	clock    clock.Clock
	random   random.Random
	recorder GameRecorder

	contestants []*model.Contestant
	sources     []DecisionSource
	strategy    bot.AdjustableStrategy
	hand        *dice.Hand

	winningScore int
	state        model.MatchState
	activeIndex  int
	turnTotal    int
	startedAt    time.Time
}

func NewEngine(cfg Config) (*Engine, error) {
	if len(cfg.Contestants) != 2 {
		return nil, model.ErrInvalidPlayerCount
	}
	for _, c := range cfg.Contestants {
		if c == nil {
			return nil, model.ErrInvalidPlayerCount
		}
	}
	if strings.EqualFold(cfg.Contestants[0].Name, cfg.Contestants[1].Name) {
		return nil, model.ErrDuplicateName
	}
	if cfg.WinningScore < 0 {
		return nil, model.ErrInvalidWinningScore
	}
	if len(cfg.Sources) != len(cfg.Contestants) {
		return nil, model.ErrNoDecisionSource
	}
	for _, src := range cfg.Sources {
		if src == nil {
			return nil, model.ErrNoDecisionSource
		}
	}

	winningScore := cfg.WinningScore
	if winningScore == 0 {
		winningScore = model.DefaultWinningScore
	}
	hand := cfg.Hand
	if hand == nil {
		var err error
		hand, err = dice.NewHand(1, dice.DefaultFaces)
		if err != nil {
			return nil, err
		}
	}
	rng := cfg.Random
	if rng == nil {
		rng = random.New()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &Engine{
		logger:       logger,
		clock:        clk,
		random:       rng,
		recorder:     cfg.Recorder,
		contestants:  cfg.Contestants,
		sources:      cfg.Sources,
		strategy:     cfg.Strategy,
		hand:         hand,
		winningScore: winningScore,
		state:        model.MatchStateTurnStart,
		startedAt:    clk.Now(),
	}, nil
}

// Roll throws the hand for the active contestant. Any die showing a
// one busts the turn; otherwise the total pip count joins the turn
// total, winning immediately if it carries the contestant past the
// target.
func (e *Engine) Roll(ctx context.Context) (*model.TurnEvent, error) {
	if e.state.Finished() {
		return nil, model.ErrMatchOver
	}

	active := e.ActiveContestant()
	faces := e.hand.Roll(e.random)
	if len(faces) == 0 {
		// A hand that produces no dice forfeits the turn outright
		e.logger.Info("invalid roll",
			slog.String("contestant", active.Name),
		)
		event := e.newEvent(model.EventInvalidRoll, active, nil)
		e.endTurn()
		return event, nil
	}

	if e.hand.AnyOne() {
		e.logger.Info("turn busted",
			slog.String("contestant", active.Name),
			slog.Int("lost_points", e.turnTotal),
			slog.Bool("double_ones", e.hand.DoubleOnes()),
		)
		event := e.newEvent(model.EventBusted, active, model.RolledPayload{
			Faces:     faces,
			TurnTotal: 0,
		})
		e.endTurn()
		return event, nil
	}

	e.turnTotal += e.hand.Total()
	if active.Score+e.turnTotal >= e.winningScore {
		return e.win(ctx, active, e.turnTotal)
	}

	e.state = model.MatchStateAwaitingDecision
	return e.newEvent(model.EventRolled, active, model.RolledPayload{
		Faces:     faces,
		TurnTotal: e.turnTotal,
	}), nil
}

// Bank moves the turn total into the active contestant's score and
// passes the turn
func (e *Engine) Bank(ctx context.Context) (*model.TurnEvent, error) {
	if e.state.Finished() {
		return nil, model.ErrMatchOver
	}

	active := e.ActiveContestant()
	banked := e.turnTotal
	if active.Score+banked >= e.winningScore {
		return e.win(ctx, active, banked)
	}

	if err := active.AddScore(banked); err != nil {
		return nil, err
	}
	e.logger.Info("points banked",
		slog.String("contestant", active.Name),
		slog.Int("points", banked),
		slog.Int("score", active.Score),
	)
	event := e.newEvent(model.EventBanked, active, model.BankedPayload{
		Points: banked,
		Score:  active.Score,
	})
	e.endTurn()
	return event, nil
}

// Cheat awards a flat bonus and ends the turn. The turn total is
// discarded rather than banked.
func (e *Engine) Cheat(ctx context.Context) (*model.TurnEvent, error) {
	if e.state.Finished() {
		return nil, model.ErrMatchOver
	}

	active := e.ActiveContestant()
	if active.Score+cheatPoints >= e.winningScore {
		return e.win(ctx, active, cheatPoints)
	}

	if err := active.AddScore(cheatPoints); err != nil {
		return nil, err
	}
	e.logger.Info("contestant cheated",
		slog.String("contestant", active.Name),
		slog.Int("points", cheatPoints),
		slog.Int("score", active.Score),
	)
	event := e.newEvent(model.EventCheated, active, model.BankedPayload{
		Points: cheatPoints,
		Score:  active.Score,
	})
	e.endTurn()
	return event, nil
}

// Rename changes the active contestant's display name and carries
// their recorded history to the new name. When the recorder has no
// entry for the old name the rename still applies locally.
func (e *Engine) Rename(ctx context.Context, newName string) (*model.TurnEvent, error) {
	if e.state.Finished() {
		return nil, model.ErrMatchOver
	}

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, model.ErrInvalidName
	}
	active := e.ActiveContestant()
	if strings.EqualFold(newName, e.opponentOf(active).Name) {
		return nil, model.ErrDuplicateName
	}

	oldName := active.Name
	if err := active.SetName(newName); err != nil {
		return nil, err
	}

	statsMoved := false
	var recordErr error
	if e.recorder != nil {
		switch err := e.recorder.RenamePlayer(ctx, oldName, newName); {
		case err == nil:
			statsMoved = true
		case errors.Is(err, model.ErrPlayerNotFound):
			// No history under the old name; nothing to carry over
		default:
			recordErr = fmt.Errorf("moving recorded scores: %w", err)
		}
	}

	e.logger.Info("contestant renamed",
		slog.String("old_name", oldName),
		slog.String("new_name", newName),
		slog.Bool("stats_moved", statsMoved),
	)
	event := e.newEvent(model.EventRenamed, active, model.RenamedPayload{
		OldName:    oldName,
		NewName:    newName,
		StatsMoved: statsMoved,
	})
	return event, recordErr
}

// SetDifficulty retargets the bot strategy mid-match
func (e *Engine) SetDifficulty(level model.Difficulty) (*model.TurnEvent, error) {
	if e.state.Finished() {
		return nil, model.ErrMatchOver
	}
	if e.strategy == nil {
		return nil, model.ErrNoBotContestant
	}
	if err := e.strategy.SetDifficulty(level); err != nil {
		return nil, err
	}

	e.logger.Info("difficulty changed",
		slog.String("level", string(level)),
	)
	return e.newEvent(model.EventDifficultyChanged, nil, model.DifficultyChangedPayload{
		Level: level,
	}), nil
}

// Restart wipes both scores and hands the first turn back to the
// first contestant
func (e *Engine) Restart() (*model.TurnEvent, error) {
	if e.state.Finished() {
		return nil, model.ErrMatchOver
	}

	for _, c := range e.contestants {
		c.ResetScore()
	}
	e.turnTotal = 0
	e.activeIndex = 0
	e.state = model.MatchStateTurnStart

	e.logger.Info("match restarted",
		slog.String("first_contestant", e.ActiveContestant().Name),
	)
	return e.newEvent(model.EventRestarted, nil, nil), nil
}

// Abandon ends the match without a winner. Nothing is recorded.
// Abandoning an already finished match is a no-op.
func (e *Engine) Abandon() *model.TurnEvent {
	if e.state.Finished() {
		return nil
	}

	e.turnTotal = 0
	e.state = model.MatchStateAbandoned
	e.logger.Info("match abandoned",
		slog.Duration("match_duration", e.clock.Since(e.startedAt)),
	)
	return e.newEvent(model.EventAbandoned, nil, nil)
}

// Apply dispatches a decision to the matching operation
func (e *Engine) Apply(ctx context.Context, decision Decision) (*model.TurnEvent, error) {
	switch decision.Command {
	case model.CommandRoll:
		return e.Roll(ctx)
	case model.CommandBank:
		return e.Bank(ctx)
	case model.CommandCheat:
		return e.Cheat(ctx)
	case model.CommandRename:
		return e.Rename(ctx, decision.NewName)
	case model.CommandDifficulty:
		return e.SetDifficulty(decision.Level)
	case model.CommandRestart:
		return e.Restart()
	case model.CommandQuit:
		return e.Abandon(), nil
	default:
		return nil, model.ErrUnknownCommand
	}
}

// Run drives the match to completion, pulling decisions from each
// contestant's source in turn. A source error (a closed input stream,
// typically) abandons the match; cancelling the context does the same.
func (e *Engine) Run(ctx context.Context, observer Observer) (model.MatchResult, error) {
	for !e.state.Finished() {
		if err := ctx.Err(); err != nil {
			event := e.Abandon()
			e.notify(observer, event)
			break
		}

		if e.state == model.MatchStateTurnStart {
			e.beginTurn()
			if observer != nil {
				observer.TurnStarted(e.View())
			}
		}

		decision, err := e.sources[e.activeIndex].NextDecision(ctx, e.View())
		if err != nil {
			event := e.Abandon()
			e.notify(observer, event)
			break
		}

		event, err := e.Apply(ctx, decision)
		e.notify(observer, event)
		if err != nil {
			if e.state.Finished() {
				return e.result(), err
			}
			if observer != nil {
				observer.DecisionRejected(decision, err)
			}
		}
	}
	return e.result(), nil
}

// View snapshots the match from the active contestant's side
func (e *Engine) View() TurnView {
	active := e.ActiveContestant()
	opponent := e.opponentOf(active)
	return TurnView{
		ActiveName:    active.Name,
		OpponentName:  opponent.Name,
		ActiveIsBot:   active.IsBot,
		TurnTotal:     e.turnTotal,
		OwnScore:      active.Score,
		OpponentScore: opponent.Score,
		WinningScore:  e.winningScore,
		HasBot:        active.IsBot || opponent.IsBot,
	}
}

func (e *Engine) State() model.MatchState {
	return e.state
}

func (e *Engine) TurnTotal() int {
	return e.turnTotal
}

func (e *Engine) WinningScore() int {
	return e.winningScore
}

func (e *Engine) Contestants() []*model.Contestant {
	return e.contestants
}

func (e *Engine) ActiveContestant() *model.Contestant {
	return e.contestants[e.activeIndex]
}

func (e *Engine) win(ctx context.Context, active *model.Contestant, banked int) (*model.TurnEvent, error) {
	if err := active.AddScore(banked); err != nil {
		return nil, err
	}
	e.turnTotal = 0
	e.state = model.MatchStateWon

	e.logger.Info("match won",
		slog.String("winner", active.Name),
		slog.Int("score", active.Score),
		slog.Duration("match_duration", e.clock.Since(e.startedAt)),
	)
	event := e.newEvent(model.EventWon, active, model.BankedPayload{
		Points: banked,
		Score:  active.Score,
	})

	if e.recorder != nil {
		if err := e.recorder.RecordGame(ctx, active.Name, active.Score); err != nil {
			e.logger.Error("failed to record game",
				slog.String("winner", active.Name),
				slog.String("error", err.Error()),
			)
			return event, fmt.Errorf("recording game: %w", err)
		}
	}
	return event, nil
}

func (e *Engine) beginTurn() {
	e.turnTotal = 0
	e.state = model.MatchStateAwaitingDecision
}

func (e *Engine) endTurn() {
	e.turnTotal = 0
	e.activeIndex = 1 - e.activeIndex
	e.state = model.MatchStateTurnStart
}

func (e *Engine) opponentOf(c *model.Contestant) *model.Contestant {
	if e.contestants[0] == c {
		return e.contestants[1]
	}
	return e.contestants[0]
}

func (e *Engine) newEvent(eventType model.EventType, contestant *model.Contestant, payload any) *model.TurnEvent {
	return &model.TurnEvent{
		Type:       eventType,
		Contestant: contestant,
		Payload:    payload,
	}
}

func (e *Engine) notify(observer Observer, event *model.TurnEvent) {
	if observer != nil && event != nil {
		observer.MatchEvent(event)
	}
}

func (e *Engine) result() model.MatchResult {
	result := model.MatchResult{State: e.state}
	if e.state == model.MatchStateWon {
		result.Winner = e.ActiveContestant()
	}
	return result
}
