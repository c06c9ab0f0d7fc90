package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connect-n/internal/config"
	"github.com/rocketscienceinc/connect-n/internal/game"
	"github.com/rocketscienceinc/connect-n/internal/transport/console"
	"github.com/rocketscienceinc/connect-n/internal/usecase"
)

type playResult struct {
	outcome console.Outcome
	err     error
}

// RunApp - plays one game on in/out with the configured board and returns its outcome.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (console.Outcome, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return run(ctx, logger, conf, in, out)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (console.Outcome, error) {
	log := logger.With("component", "app")

	gameManager := usecase.NewGameManager(logger, settingsFrom(conf))
	terminal := console.New(logger, gameManager, in, out)

	// Play blocks on reading input; a signal must not wait for the next line.
	resultCh := make(chan playResult, 1)
	go func() {
		outcome, err := terminal.Play(ctx)
		resultCh <- playResult{outcome: outcome, err: err}
	}()

	select {
	case result := <-resultCh:
		if result.err != nil {
			return console.Outcome{}, fmt.Errorf("game failed: %w", result.err)
		}

		log.Info("Game over", "code", result.outcome.Code())

		return result.outcome, nil
	case <-ctx.Done():
		log.Info("Received signal, shutting down")

		return console.Outcome{}, fmt.Errorf("game interrupted: %w", ctx.Err())
	}
}

func settingsFrom(conf *config.Config) game.Settings {
	return game.Settings{
		Columns:      conf.Board.Columns,
		Rows:         conf.Board.Rows,
		Players:      conf.Board.Players,
		WinningCount: conf.Board.WinningCount,
	}
}
