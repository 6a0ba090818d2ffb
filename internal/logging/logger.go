package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON handler as the process-wide default.
// Once the database is up, main swaps it for a fan-out that adds the
// database handler on top of this one.
func Setup() {
	slog.SetDefault(slog.New(NewStdoutHandler()))
}

// NewStdoutHandler is the JSON handler used at boot and as the first leg
// of the fan-out.
func NewStdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
