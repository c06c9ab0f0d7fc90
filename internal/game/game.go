package game

import (
	"fmt"

	"github.com/rocketscienceinc/connect-n/internal/apperror"
	"github.com/rocketscienceinc/connect-n/internal/entity"
)

func NewGame(id string, settings Settings) (*Game, error) {
	board, err := entity.NewBoard(settings.Columns, settings.Rows, settings.Players, settings.WinningCount)
	if err != nil {
		return nil, fmt.Errorf("could not create board: %w", err)
	}

	return &Game{
		id:     id,
		board:  board,
		turn:   firstPlayer,
		status: StatusOngoing,
	}, nil
}

// MakeMove - drops the current player's piece into column and advances the game.
// A full column returns ErrColumnFull and keeps the turn with the same player.
func (that *Game) MakeMove(player entity.PlayerID, column int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.turn != player {
		return apperror.ErrNotYourTurn
	}

	placed, err := that.board.PlacePiece(player, column)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	if !placed {
		return fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	that.updateGameStatus()

	return nil
}

// updateGameStatus - checks the board after a move.
func (that *Game) updateGameStatus() {
	if winner, won := that.board.HasWon(); won {
		that.winner = winner
		that.won = true
		that.status = StatusFinished

		return
	}

	if that.board.IsFull() {
		that.status = StatusFinished

		return
	}

	that.turn = that.nextPlayer()
}

func (that *Game) nextPlayer() entity.PlayerID {
	if int(that.turn) >= that.board.PlayerCount() {
		return firstPlayer
	}

	return that.turn + 1
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Board() *entity.Board {
	return that.board
}

// Turn - returns the player expected to move next, or the last mover once the game is finished.
func (that *Game) Turn() entity.PlayerID {
	return that.turn
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) Winner() (entity.PlayerID, bool) {
	return that.winner, that.won
}

func (that *Game) IsFinished() bool {
	return that.status == StatusFinished
}

// IsDraw - reports a finished game that filled the board without a winning line.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && !that.won
}
