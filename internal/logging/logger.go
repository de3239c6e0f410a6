package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON logger writing to stdout as the slog default.
// It runs before the database is up; once it is, main swaps the default
// for a MultiHandler that also feeds the Postgres batch handler.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
