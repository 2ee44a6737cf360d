package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/pigdice-go/internal/factory"
)

// Config holds CLI configuration
type Config struct {
	ScoresPath string
	Store      string
	RedisURL   string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ScoresPath: getEnvOrDefault("PIGDICE_SCORES", factory.DefaultScoresPath),
		Store:      getEnvOrDefault("PIGDICE_STORE", factory.StorageTypeFile),
		RedisURL:   os.Getenv("PIGDICE_REDIS_URL"),
		Output:     "text",
		Verbose:    false,
	}
}

// Logger returns the logger for the current verbosity. Logs go to
// stderr so they never interleave with interactive game output.
func (c *Config) Logger() *slog.Logger {
	if c.Verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
