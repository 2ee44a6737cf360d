package storage

import (
	"context"

	"github.com/mcoot/pigdice-go/internal/model"
)

// Storage defines the interface for score ledger persistence.
// The ledger is small, so backends load and save it as a single
// document; the last save wins.
type Storage interface {
	// Score operations
	LoadScores(ctx context.Context) (model.ScoreTable, error)
	SaveScores(ctx context.Context, scores model.ScoreTable) error
}
