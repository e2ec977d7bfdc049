package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/rokudoku/board"
	"github.com/domino14/rokudoku/game"
)

var (
	errMoveFormat   = errors.New("input should have 2 parts delimited with space - e.g. `3 d4`")
	errNotAnInteger = errors.New("first value should be an integer")
	errNoSuchBrick  = errors.New("no such brick")
	errBadPosition  = errors.New("second part of the input should contain a letter a-i followed by a digit 1-9 - e.g. `d3`")
	errCannotPlace  = errors.New("the brick can't be put in the position you selected")
)

// ParseMove reads a move typed as `<brick number> <position>`, e.g. `3 d4`.
// Brick numbers start at 1. The move is checked against st, so a nil error
// means it can be applied.
func ParseMove(text string, st game.State) (game.Move, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return game.Move{}, errMoveFormat
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %s", errNotAnInteger, fields[0])
	}
	if n < 1 || n > st.NumBricks() {
		if st.NumBricks() == 0 {
			return game.Move{}, fmt.Errorf("%w: no bricks are available", errNoSuchBrick)
		}
		return game.Move{}, fmt.Errorf("%w: only bricks 1-%d are available", errNoSuchBrick, st.NumBricks())
	}
	pos, err := board.ParseCoords(fields[1])
	if err != nil {
		return game.Move{}, errBadPosition
	}
	m := game.Move{BrickIndex: n - 1, Pos: pos}
	if !st.CanPlay(m) {
		return game.Move{}, fmt.Errorf("%w: brick %d at %s", errCannotPlace, n, fields[1])
	}
	return m, nil
}
