package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/connect-n/internal/entity"
)

const emptyCell = '.'

// RenderGrid - writes board one row per line, top row first, with '.' for empty cells
// and the player id for pieces.
func RenderGrid(w io.Writer, board *entity.Board) error {
	buf := bufio.NewWriter(w)

	for row := range board.Height() {
		for column := range board.Width() {
			cell, err := board.At(column, row)
			if err != nil {
				return fmt.Errorf("failed to render grid: %w", err)
			}

			if !cell.Filled {
				_ = buf.WriteByte(emptyCell)
				continue
			}

			_, _ = buf.WriteString(strconv.Itoa(int(cell.Player)))
		}

		_ = buf.WriteByte('\n')
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write grid: %w", err)
	}

	return nil
}
