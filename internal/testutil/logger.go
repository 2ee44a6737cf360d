package testutil

import "log/slog"

// NopLogger returns a logger whose records are dropped, keeping
// test output free of service log lines.
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
