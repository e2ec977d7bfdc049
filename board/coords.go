package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/rokudoku/brick"
)

// ColumnLetters names the columns, left to right.
const ColumnLetters = "abcdefghi"

var ErrBadCoords = errors.New("position should be a letter a-i followed by a digit 1-9 - e.g. `d3`")

// CoordsString renders a position the way players type it: column letter
// then 1-based row, e.g. d4 for (3, 3).
func CoordsString(p brick.XY) string {
	if p.X < 0 || p.X >= Dim || p.Y < 0 || p.Y >= Dim {
		return fmt.Sprintf("?%d,%d", p.X, p.Y)
	}
	return fmt.Sprintf("%c%d", ColumnLetters[p.X], p.Y+1)
}

// ParseCoords is the inverse of CoordsString. It is case-insensitive.
func ParseCoords(s string) (brick.XY, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return brick.XY{}, ErrBadCoords
	}
	x := strings.IndexByte(ColumnLetters, s[0])
	if x < 0 {
		return brick.XY{}, ErrBadCoords
	}
	if s[1] < '1' || s[1] > '9' {
		return brick.XY{}, ErrBadCoords
	}
	return brick.XY{X: x, Y: int(s[1] - '1')}, nil
}
