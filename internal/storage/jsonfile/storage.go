package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/natefinch/atomic"

	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/storage"
)

// Storage persists the score table as a pretty-printed JSON file.
// Writes replace the whole file atomically so a crash mid-save never
// leaves a half-written ledger behind.
type Storage struct {
	path string
}

// New creates a JSON file storage at the given path.
// The file is created on the first save.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Score operations

// LoadScores reads the score table from disk. A missing file or one
// that does not parse as JSON yields an empty table, so a fresh or
// damaged ledger starts over instead of blocking play.
func (s *Storage) LoadScores(ctx context.Context) (model.ScoreTable, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.ScoreTable{}, nil
		}
		return nil, err
	}

	var scores model.ScoreTable
	if err := json.Unmarshal(data, &scores); err != nil {
		return model.ScoreTable{}, nil
	}
	if scores == nil {
		scores = model.ScoreTable{}
	}
	return scores, nil
}

// SaveScores writes the whole table, replacing any previous contents
func (s *Storage) SaveScores(ctx context.Context, scores model.ScoreTable) error {
	data, err := json.MarshalIndent(scores, "", "    ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(s.path, bytes.NewReader(data))
}
