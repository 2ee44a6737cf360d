package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/pigdice-go/internal/model"
	"github.com/mcoot/pigdice-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// The whole score table lives under one key as a JSON document, so
// save semantics match the file backend: last writer wins.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Score operations

// LoadScores fetches the score table. A missing key yields an empty
// table; a document that fails to parse is surfaced as an error, since
// a shared store being corrupt is worth knowing about.
func (s *Storage) LoadScores(ctx context.Context) (model.ScoreTable, error) {
	data, err := s.client.Get(ctx, scoresKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ScoreTable{}, nil
		}
		return nil, err
	}

	var scores model.ScoreTable
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, err
	}
	if scores == nil {
		scores = model.ScoreTable{}
	}
	return scores, nil
}

// SaveScores writes the whole table, replacing any previous document
func (s *Storage) SaveScores(ctx context.Context, scores model.ScoreTable) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, scoresKey(), data, s.cfg.ScoresTTL).Err()
}
