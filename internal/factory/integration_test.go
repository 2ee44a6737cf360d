package factory

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/services/bot"
	"github.com/mcoot/pigdice-go/internal/services/ledger"
	"github.com/mcoot/pigdice-go/internal/services/match"
	"github.com/mcoot/pigdice-go/internal/storage/jsonfile"
	"github.com/mcoot/pigdice-go/internal/storage/memory"
	redisstorage "github.com/mcoot/pigdice-go/internal/storage/redis"
	"github.com/mcoot/pigdice-go/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.Ledger.Load(s.ctx))
}

// Test: each storage backend wires up through the factory
func (s *IntegrationSuite) TestNew_FileBackendByDefault() {
	app, err := New(Config{
		ScoresPath: filepath.Join(s.T().TempDir(), "scores.json"),
	})
	s.Require().NoError(err)
	s.IsType(&jsonfile.Storage{}, app.Storage)
	s.NoError(app.Close())
}

func (s *IntegrationSuite) TestNew_MemoryBackend() {
	app, err := New(Config{StorageType: StorageTypeMemory})
	s.Require().NoError(err)
	s.IsType(&memory.Storage{}, app.Storage)
	s.NoError(app.Close())
}

func (s *IntegrationSuite) TestNew_RedisBackend() {
	mini := miniredis.RunT(s.T())

	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()

	app, err := New(Config{
		StorageType: StorageTypeRedis,
		RedisConfig: &cfg,
	})
	s.Require().NoError(err)
	s.IsType(&redisstorage.Storage{}, app.Storage)
	s.NoError(app.Close())
}

func (s *IntegrationSuite) TestNew_RedisRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.ErrorContains(err, "RedisConfig required")
}

func (s *IntegrationSuite) TestNew_RejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "cloud"})
	s.ErrorContains(err, "invalid StorageType")
}

// Test: a bot match played through the engine lands in the ledger
func (s *IntegrationSuite) TestMatchRecordsToLedger() {
	ayisha, err := model.NewContestant("Ayisha", true)
	s.Require().NoError(err)
	lulu, err := model.NewContestant("Lulu", true)
	s.Require().NoError(err)

	first, err := bot.NewThresholdStrategy(model.DifficultyEasy, 15)
	s.Require().NoError(err)
	second, err := bot.NewThresholdStrategy(model.DifficultyEasy, 15)
	s.Require().NoError(err)

	engine, err := match.NewEngine(match.Config{
		Contestants: []*model.Contestant{ayisha, lulu},
		Sources: []match.DecisionSource{
			match.NewBotSource(first),
			match.NewBotSource(second),
		},
		WinningScore: 15,
		Recorder:     s.app.Ledger,
		Random:       s.app.MockRandom,
		Clock:        s.app.MockClock,
		Logger:       testutil.NopLogger(),
	})
	s.Require().NoError(err)

	// Three sixes carry Ayisha straight past the 15-point target
	s.app.MockRandom.QueueIntn(5, 5, 5)

	result, err := engine.Run(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().NotNil(result.Winner)
	s.Equal("Ayisha", result.Winner.Name)

	scores := s.app.Ledger.HighScores()
	s.Require().Len(scores, 1)
	s.Equal("Ayisha", scores[0].Name)
	s.Equal(18, scores[0].Stats.TotalPoints)

	history := s.app.Ledger.History("Ayisha")
	s.Require().Len(history, 1)
	s.Equal("2024-01-01", history[0].Date)
	s.Equal(18, history[0].Points)

	// The record survives a reload from the same storage
	fresh := ledger.New(s.app.Storage, s.app.MockClock, testutil.NopLogger())
	s.Require().NoError(fresh.Load(s.ctx))
	s.Len(fresh.History("Ayisha"), 1)
}

// Test: renaming during a match moves recorded stats with the player
func (s *IntegrationSuite) TestRenameDuringMatchMovesStats() {
	s.Require().NoError(s.app.Ledger.RecordGame(s.ctx, "Lulu", 30))

	lulu, err := model.NewContestant("Lulu", false)
	s.Require().NoError(err)
	opponent, err := model.NewContestant("Bot", true)
	s.Require().NoError(err)

	engine, err := match.NewEngine(match.Config{
		Contestants: []*model.Contestant{lulu, opponent},
		Sources: []match.DecisionSource{
			&scriptedSource{decisions: []match.Decision{
				{Command: model.CommandRename, NewName: "Ripley"},
				{Command: model.CommandQuit},
			}},
			&scriptedSource{},
		},
		Recorder: s.app.Ledger,
		Random:   s.app.MockRandom,
		Clock:    s.app.MockClock,
		Logger:   testutil.NopLogger(),
	})
	s.Require().NoError(err)

	result, err := engine.Run(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(model.MatchStateAbandoned, result.State)

	s.Empty(s.app.Ledger.History("Lulu"))
	history := s.app.Ledger.History("Ripley")
	s.Require().Len(history, 1)
	s.Equal(30, history[0].Points)
}

// Test: the file backend carries the ledger between app instances
func (s *IntegrationSuite) TestLedgerPersistsAcrossApps() {
	cfg := Config{
		ScoresPath: filepath.Join(s.T().TempDir(), "scores.json"),
	}

	first, err := New(cfg)
	s.Require().NoError(err)
	s.Require().NoError(first.Ledger.Load(s.ctx))
	s.Require().NoError(first.Ledger.RecordGame(s.ctx, "Ayisha", 55))
	s.Require().NoError(first.Close())

	second, err := New(cfg)
	s.Require().NoError(err)
	s.Require().NoError(second.Ledger.Load(s.ctx))

	history := second.Ledger.History("Ayisha")
	s.Require().Len(history, 1)
	s.Equal(55, history[0].Points)
	s.NoError(second.Close())
}

// scriptedSource replays fixed decisions, then reports EOF
type scriptedSource struct {
	decisions []match.Decision
	next      int
}

func (src *scriptedSource) NextDecision(_ context.Context, _ match.TurnView) (match.Decision, error) {
	if src.next >= len(src.decisions) {
		return match.Decision{}, io.EOF
	}
	decision := src.decisions[src.next]
	src.next++
	return decision, nil
}
