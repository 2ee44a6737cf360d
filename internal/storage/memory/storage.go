package memory

import (
	"context"
	"sync"

	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Scores vanish when the process exits; useful for tests and for
// playing without touching the ledger file.
type Storage struct {
	mu     sync.RWMutex
	scores model.ScoreTable
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		scores: model.ScoreTable{},
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Score operations

func (s *Storage) LoadScores(ctx context.Context) (model.ScoreTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scores.Clone(), nil
}

func (s *Storage) SaveScores(ctx context.Context, scores model.ScoreTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = scores.Clone()
	return nil
}
