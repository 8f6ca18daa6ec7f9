package gui_test

import (
	"context"
	"log/slog"
	"testing"

	gui "github.com/go-theft-auto/retained-gui"
)

func TestLoggerFollowsVerbose(t *testing.T) {
	t.Cleanup(func() { gui.SetVerbose(false) })
	logger := gui.Logger("test")
	ctx := context.Background()

	gui.SetVerbose(false)
	if logger.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug enabled without SetVerbose")
	}
	if !logger.Enabled(ctx, slog.LevelError) {
		t.Error("errors should always be enabled")
	}

	gui.SetVerbose(true)
	if !logger.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug disabled after SetVerbose(true)")
	}
}
