package datagrid

import (
	"io"
	"log/slog"
	"os"
)

// gridLogLevel controls the log level for grid debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var gridLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for grid components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		gridLogLevel.Set(slog.LevelDebug)
	} else {
		gridLogLevel.Set(slog.LevelInfo)
	}
}

// gridVerbose returns true if debug logging is enabled.
func gridVerbose() bool {
	return gridLogLevel.Level() <= slog.LevelDebug
}

// gridLogger is the default logger for grids created without WithLogger.
var gridLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gridLogLevel}))

// DiscardLogger returns a logger that drops every record. Useful for hosts
// that own the terminal, and for tests.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
