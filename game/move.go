package game

import (
	"fmt"

	"github.com/domino14/rokudoku/board"
	"github.com/domino14/rokudoku/brick"
)

// A Move places the brick at BrickIndex (0-based, within the current batch)
// with its top-left offset at Pos.
type Move struct {
	BrickIndex int
	Pos        brick.XY
}

// ShortDescription is the move as a player would type it, e.g. "3 d4".
// Brick numbers are 1-based.
func (m Move) ShortDescription() string {
	return fmt.Sprintf("%d %s", m.BrickIndex+1, board.CoordsString(m.Pos))
}

func (m Move) String() string {
	return fmt.Sprintf("<brick %d at %v>", m.BrickIndex, m.Pos)
}
