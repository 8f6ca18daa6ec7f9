package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the log level for GUI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for GUI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose returns true if GUI debug logging is enabled.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

var logHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel})

// redrawLogger reports full redraws, partial flushes and dropped widgets.
var redrawLogger = slog.New(logHandler)

// Logger returns a logger for a backend or application component, tagged
// with component=name. It shares the package level, so SetVerbose applies.
func Logger(name string) *slog.Logger {
	return slog.New(logHandler).With("component", name)
}
