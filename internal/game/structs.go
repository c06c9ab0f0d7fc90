package game

import "github.com/rocketscienceinc/connect-n/internal/entity"

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	firstPlayer entity.PlayerID = 1
)

// Settings holds the dimensions and rules a game is played with.
type Settings struct {
	Columns      int
	Rows         int
	Players      int
	WinningCount int
}

// Game represents the state of a match: the board, whose turn it is, and how it ended.
type Game struct {
	id     string
	board  *entity.Board
	turn   entity.PlayerID
	status string
	winner entity.PlayerID
	won    bool
}
