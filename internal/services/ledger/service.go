package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mcoot/pigdice-go/internal/dependencies/clock"
	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/storage"
)

// dateFormat is the wire format for game dates
const dateFormat = "2006-01-02"

// Service manages the persistent score ledger. It keeps the table in
// memory and writes the whole document through storage after each
// mutation.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu     sync.RWMutex
	scores model.ScoreTable
}

// New creates a new ledger service. Call Load before first use.
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
		scores:  model.ScoreTable{},
	}
}

// Load pulls the score table from storage, replacing the in-memory copy
func (s *Service) Load(ctx context.Context) error {
	scores, err := s.storage.LoadScores(ctx)
	if err != nil {
		return fmt.Errorf("loading scores: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = scores
	return nil
}

// RecordGame appends a dated result for the named player and persists
// the ledger. The entry is created on the player's first game.
func (s *Service) RecordGame(ctx context.Context, name string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.scores[name]
	if !ok {
		entry = &model.LedgerEntry{Games: []model.GameRecord{}}
		s.scores[name] = entry
	}

	entry.Games = append(entry.Games, model.GameRecord{
		Date:   s.clock.Now().Format(dateFormat),
		Points: points,
	})
	entry.TotalPoints += points

	s.logger.Info("game recorded",
		slog.String("player", name),
		slog.Int("points", points),
		slog.Int("total_points", entry.TotalPoints))

	return s.persist(ctx)
}

// HighScores returns every player ranked by total points descending.
// Equal totals keep alphabetical name order, so rankings are stable.
func (s *Service) HighScores() []model.PlayerScores {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.scores))
	for name := range s.scores {
		names = append(names, name)
	}
	sort.Strings(names)

	ranked := make([]model.PlayerScores, 0, len(names))
	for _, name := range names {
		entry := s.scores[name]
		games := make([]model.GameRecord, len(entry.Games))
		copy(games, entry.Games)
		ranked = append(ranked, model.PlayerScores{
			Name:  name,
			Stats: model.LedgerEntry{TotalPoints: entry.TotalPoints, Games: games},
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stats.TotalPoints > ranked[j].Stats.TotalPoints
	})

	return ranked
}

// History returns the recorded games for a player, oldest first.
// Unknown players have an empty history.
func (s *Service) History(name string) []model.GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.scores[name]
	if !ok {
		return []model.GameRecord{}
	}
	games := make([]model.GameRecord, len(entry.Games))
	copy(games, entry.Games)
	return games
}

// RenamePlayer moves a player's recorded history to a new name.
// If the new name already has an entry the two histories merge.
// Renaming a name with no history returns ErrPlayerNotFound and
// writes nothing.
func (s *Service) RenamePlayer(ctx context.Context, oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	oldEntry, ok := s.scores[oldName]
	if !ok {
		return model.ErrPlayerNotFound
	}
	if oldName == newName {
		return nil
	}

	if existing, ok := s.scores[newName]; ok {
		existing.Games = append(existing.Games, oldEntry.Games...)
		existing.TotalPoints += oldEntry.TotalPoints
	} else {
		s.scores[newName] = oldEntry
	}
	delete(s.scores, oldName)

	s.logger.Info("player renamed",
		slog.String("old_name", oldName),
		slog.String("new_name", newName))

	return s.persist(ctx)
}

// ClearScores removes every entry and persists the empty ledger
func (s *Service) ClearScores(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scores = model.ScoreTable{}
	s.logger.Info("scores cleared")

	return s.persist(ctx)
}

// persist writes the whole table. The in-memory change stays applied
// even when the write fails; callers decide what to tell the player.
// Must be called with the mutex held.
func (s *Service) persist(ctx context.Context) error {
	if err := s.storage.SaveScores(ctx, s.scores); err != nil {
		s.logger.Error("failed to save scores", slog.String("error", err.Error()))
		return fmt.Errorf("saving scores: %w", err)
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Load(ctx context.Context) error
	RecordGame(ctx context.Context, name string, points int) error
	HighScores() []model.PlayerScores
	History(name string) []model.GameRecord
	RenamePlayer(ctx context.Context, oldName, newName string) error
	ClearScores(ctx context.Context) error
}

var _ ServiceInterface = (*Service)(nil)
