package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrColumnOutOfRange     = errors.New("column is out of range")
	ErrCellOutOfRange       = errors.New("cell is out of range")
	ErrColumnFull           = errors.New("column is already full")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrGameFinished         = errors.New("game is already finished")
	ErrInputClosed          = errors.New("input closed")
)
