package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connect-n/internal/apperror"
	"github.com/rocketscienceinc/connect-n/internal/entity"
	"github.com/rocketscienceinc/connect-n/internal/game"
)

// DrawCode is the outcome code of a game that ended without a winner.
const DrawCode = -1

type gameManager interface {
	NewGame(ctx context.Context) (*game.Game, error)
	MakeTurn(ctx context.Context, gameInstance *game.Game, player entity.PlayerID, column int) error
}

// Outcome is how a finished game ended.
type Outcome struct {
	Winner entity.PlayerID
	Draw   bool
}

// Code - returns the winner's id, or DrawCode for a draw.
func (that Outcome) Code() int {
	if that.Draw {
		return DrawCode
	}

	return int(that.Winner)
}

// Console plays a game with humans taking turns on a line-based terminal.
type Console struct {
	logger  *slog.Logger
	manager gameManager

	scanner *bufio.Scanner
	out     io.Writer
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		manager: manager,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Play - runs one game to the end and reports how it finished.
func (that *Console) Play(ctx context.Context) (Outcome, error) {
	gameInstance, err := that.manager.NewGame(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to start game: %w", err)
	}

	board := gameInstance.Board()

	for !gameInstance.IsFinished() {
		if err = RenderGrid(that.out, board); err != nil {
			return Outcome{}, err
		}

		if err = that.playTurn(ctx, gameInstance); err != nil {
			return Outcome{}, err
		}
	}

	if err = RenderGrid(that.out, board); err != nil {
		return Outcome{}, err
	}

	if winner, won := gameInstance.Winner(); won {
		that.printf("Player %d won!\n", winner)
		return Outcome{Winner: winner}, nil
	}

	that.printf("Draw!\n")

	return Outcome{Draw: true}, nil
}

// playTurn - asks the current player for columns until one accepts the piece.
func (that *Console) playTurn(ctx context.Context, gameInstance *game.Game) error {
	player := gameInstance.Turn()
	width := gameInstance.Board().Width()

	for {
		column, err := that.ChooseColumn(player, width)
		if err != nil {
			return err
		}

		err = that.manager.MakeTurn(ctx, gameInstance, player, column)
		if errors.Is(err, apperror.ErrColumnFull) {
			that.printf("Column %d is already full, please choose another one\n", column+1)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return nil
	}
}

// ChooseColumn - prompts player until a column between 1 and width is entered and returns
// it 0-indexed. Input that is not a number or out of range is reported and asked again.
func (that *Console) ChooseColumn(player entity.PlayerID, width int) (int, error) {
	for {
		that.printf("Choose column for Player %d between 1 and %d >", player, width)

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read column: %w", err)
			}

			return 0, fmt.Errorf("%w: waiting for player %d", apperror.ErrInputClosed, player)
		}

		raw := strings.TrimSpace(that.scanner.Text())

		column, err := strconv.Atoi(raw)
		if err != nil {
			that.printf("'%s' isn't an integer number\n", raw)
			continue
		}

		if column <= 0 || column > width {
			that.printf("%d isn't a number in the range 1-%d\n", column, width)
			continue
		}

		return column - 1, nil
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("could not write to output", "error", err)
	}
}
