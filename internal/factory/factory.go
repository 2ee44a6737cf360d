package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/pigdice-go/internal/dependencies/clock"
	"github.com/mcoot/pigdice-go/internal/dependencies/random"
	"github.com/mcoot/pigdice-go/internal/services/ledger"
	"github.com/mcoot/pigdice-go/internal/storage"
	"github.com/mcoot/pigdice-go/internal/storage/jsonfile"
	"github.com/mcoot/pigdice-go/internal/storage/memory"
	redisstorage "github.com/mcoot/pigdice-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultScoresPath is where the file backend keeps the ledger
const DefaultScoresPath = "scores.json"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Ledger *ledger.Service

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// ScoresPath is the ledger location for the file backend (optional)
	// If empty, defaults to DefaultScoresPath
	ScoresPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeFile:
		path := cfg.ScoresPath
		if path == "" {
			path = DefaultScoresPath
		}
		store = jsonfile.New(path)
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, clk, rnd, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	ledgerService := ledger.New(store, clk, logger)

	return &App{
		Storage: store,
		Clock:   clk,
		Random:  rnd,
		Ledger:  ledgerService,
	}
}

// Close releases any storage connections held by the app
func (a *App) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
