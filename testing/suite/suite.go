package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/connect-n/internal/game"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
	// Logs collects everything written through Logger as JSON lines.
	Logs *bytes.Buffer

	Settings game.Settings
}

// New - returns a context bounded to the test and a suite with a classic 7x6 board.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Logs:   logs,
		Settings: game.Settings{
			Columns:      7,
			Rows:         6,
			Players:      2,
			WinningCount: 4,
		},
	}
}
