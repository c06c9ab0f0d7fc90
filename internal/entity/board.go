package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connect-n/internal/apperror"
)

// PlayerID identifies whose piece rests in a cell. The board records any value it is given.
type PlayerID int

// Occupant is the content of a single cell. The zero value is an empty cell.
type Occupant struct {
	Player PlayerID
	Filled bool
}

// direction is a step along one of the line orientations probed by HasWon.
type direction struct {
	dx, dy int
}

// right, down-right, down, down-left. Scanning row-major, the first cell of any line is
// always its start along one of these, so the other four never need probing.
var scanDirections = [4]direction{
	{dx: 1, dy: 0},
	{dx: 1, dy: 1},
	{dx: 0, dy: 1},
	{dx: -1, dy: 1},
}

// Board is the grid of a connection game. Pieces fall to the lowest open row of a column;
// row 0 is the top, row height-1 the bottom.
type Board struct {
	width       int
	height      int
	playerCount int
	winLength   int

	cells       []Occupant
	filledCount int
}

// NewBoard - creates an empty board. Every argument must be strictly positive.
func NewBoard(width, height, playerCount, winLength int) (*Board, error) {
	params := []struct {
		name  string
		value int
	}{
		{"width", width},
		{"height", height},
		{"player count", playerCount},
		{"win length", winLength},
	}

	for _, param := range params {
		if param.value <= 0 {
			return nil, fmt.Errorf("%w: %s must be positive, got %d", apperror.ErrInvalidConfiguration, param.name, param.value)
		}
	}

	return &Board{
		width:       width,
		height:      height,
		playerCount: playerCount,
		winLength:   winLength,
		cells:       make([]Occupant, width*height),
	}, nil
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Height() int {
	return that.height
}

func (that *Board) PlayerCount() int {
	return that.playerCount
}

func (that *Board) WinLength() int {
	return that.winLength
}

// FilledCount - number of pieces placed so far, always equal to the number of filled cells.
func (that *Board) FilledCount() int {
	return that.filledCount
}

// At - returns the occupant of the cell at (column, row).
func (that *Board) At(column, row int) (Occupant, error) {
	if !that.inBounds(column, row) {
		return Occupant{}, fmt.Errorf("%w: column %d, row %d", apperror.ErrCellOutOfRange, column, row)
	}

	return that.at(column, row), nil
}

// PlacePiece - drops a piece for player into column. It reports false without an error when
// the column is already full; a column outside the board is an error.
func (that *Board) PlacePiece(player PlayerID, column int) (bool, error) {
	if column < 0 || column >= that.width {
		return false, fmt.Errorf("%w: column %d, width %d", apperror.ErrColumnOutOfRange, column, that.width)
	}

	landing := -1
	for row := 0; row < that.height; row++ {
		if that.at(column, row).Filled {
			break
		}
		landing = row
	}

	// top cell taken
	if landing < 0 {
		return false, nil
	}

	that.cells[that.index(column, landing)] = Occupant{Player: player, Filled: true}
	that.filledCount++

	return true, nil
}

// HasWon - returns the occupant of the first winning line found scanning row by row,
// left to right. The second value is false while nobody has won.
func (that *Board) HasWon() (PlayerID, bool) {
	for row := 0; row < that.height; row++ {
		for column := 0; column < that.width; column++ {
			seed := that.at(column, row)
			if !seed.Filled {
				continue
			}

			for _, dir := range scanDirections {
				if that.runLength(column, row, dir, seed.Player) == that.winLength {
					return seed.Player, true
				}
			}
		}
	}

	return 0, false
}

// IsFull - reports whether every cell holds a piece.
func (that *Board) IsFull() bool {
	return that.filledCount == that.width*that.height
}

// runLength counts same-player cells starting at (column, row), stopping once winLength is reached.
func (that *Board) runLength(column, row int, dir direction, player PlayerID) int {
	count := 1
	x, y := column+dir.dx, row+dir.dy

	for count < that.winLength && that.inBounds(x, y) {
		next := that.at(x, y)
		if !next.Filled || next.Player != player {
			break
		}

		count++
		x += dir.dx
		y += dir.dy
	}

	return count
}

func (that *Board) inBounds(column, row int) bool {
	return column >= 0 && column < that.width && row >= 0 && row < that.height
}

func (that *Board) at(column, row int) Occupant {
	return that.cells[that.index(column, row)]
}

func (that *Board) index(column, row int) int {
	return row*that.width + column
}
