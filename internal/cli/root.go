package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/pigdice-go/internal/factory"
	redisstorage "github.com/mcoot/pigdice-go/internal/storage/redis"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pigdice",
		Short: "Play Pig, the jeopardy dice game",
		Long: `pigdice plays the dice game Pig against the computer or a second player.

Scores persist in a local ledger between sessions, with rankings, per-player
histories and histograms, plus a simulator for comparing the computer's
difficulty levels against each other.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ScoresPath, "scores", cfg.ScoresPath, "Score ledger path for the file store (env: PIGDICE_SCORES)")
	rootCmd.PersistentFlags().StringVar(&cfg.Store, "store", cfg.Store, "Score store backend: file, memory, redis (env: PIGDICE_STORE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for the redis store (env: PIGDICE_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging to stderr")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newSimulateCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp wires the score store selected by the global flags.
// Callers own the returned App and must Close it.
func newApp() (*factory.App, error) {
	fcfg := factory.Config{
		ScoresPath:  cfg.ScoresPath,
		Logger:      cfg.Logger(),
		StorageType: cfg.Store,
	}

	if cfg.Store == factory.StorageTypeRedis {
		rcfg := redisstorage.DefaultConfig()
		if cfg.RedisURL != "" {
			rcfg.URL = cfg.RedisURL
		}
		fcfg.RedisConfig = &rcfg
	}

	return factory.New(fcfg)
}
