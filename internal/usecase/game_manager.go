package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/connect-n/internal/apperror"
	"github.com/rocketscienceinc/connect-n/internal/entity"
	"github.com/rocketscienceinc/connect-n/internal/game"
)

type GameManager struct {
	logger   *slog.Logger
	settings game.Settings
}

func NewGameManager(logger *slog.Logger, settings game.Settings) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		settings: settings,
	}
}

// NewGame - starts a game with the manager's settings under a fresh id.
func (that *GameManager) NewGame(ctx context.Context) (*game.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("game not created: %w", err)
	}

	gameInstance, err := game.NewGame(uuid.NewString(), that.settings)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	that.logger.InfoContext(ctx, "game created",
		"game_id", gameInstance.ID(),
		"columns", that.settings.Columns,
		"rows", that.settings.Rows,
		"players", that.settings.Players,
		"winning_count", that.settings.WinningCount,
	)

	return gameInstance, nil
}

// MakeTurn - plays player's piece into column. Errors from the game are returned wrapped,
// so callers can tell a full column (retry) from a finished game with errors.Is.
func (that *GameManager) MakeTurn(ctx context.Context, gameInstance *game.Game, player entity.PlayerID, column int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("turn not made: %w", err)
	}

	log := that.logger.With("game_id", gameInstance.ID(), "player", player, "column", column)

	if err := gameInstance.MakeMove(player, column); err != nil {
		if errors.Is(err, apperror.ErrColumnFull) {
			log.DebugContext(ctx, "column is full")
		}

		return fmt.Errorf("failed make turn: %w", err)
	}

	log.DebugContext(ctx, "piece placed", "filled", gameInstance.Board().FilledCount())

	if gameInstance.IsFinished() {
		that.logFinished(ctx, gameInstance)
	}

	return nil
}

func (that *GameManager) logFinished(ctx context.Context, gameInstance *game.Game) {
	if winner, won := gameInstance.Winner(); won {
		that.logger.InfoContext(ctx, "game finished", "game_id", gameInstance.ID(), "winner", winner)
		return
	}

	that.logger.InfoContext(ctx, "game finished", "game_id", gameInstance.ID(), "draw", true)
}
