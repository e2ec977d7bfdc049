// Package board implements the 9x9 Roku Doku grid: checking and applying
// brick placements, and clearing full rows, columns and 3x3 blocks.
//
// A Board is a small value type. Every operation that changes it returns a
// new Board and leaves the receiver alone, so any number of search branches
// can hold boards derived from the same position without sharing state.
package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/domino14/rokudoku/brick"
)

const (
	// Dim is the number of rows and of columns.
	Dim = 9
	// BlockDim is the side of one of the nine non-overlapping blocks.
	BlockDim = 3
	// NumCells is the number of cells on the board.
	NumCells = Dim * Dim

	fullRow uint16 = 1<<Dim - 1
)

var ErrBadBoardText = errors.New("badly formatted board")

// Board holds one bitmask per row; bit x of rows[y] is the cell in column x,
// row y.
type Board struct {
	rows [Dim]uint16
}

// Filled reports whether the cell at column x, row y is filled.
func (b Board) Filled(x, y int) bool {
	return b.rows[y]>>x&1 == 1
}

// WithCell returns a copy of b with one cell set or cleared.
func (b Board) WithCell(x, y int, filled bool) Board {
	if filled {
		b.rows[y] |= 1 << x
	} else {
		b.rows[y] &^= 1 << x
	}
	return b
}

// FilledCount is the number of filled cells.
func (b Board) FilledCount() int {
	ct := 0
	for _, r := range b.rows {
		ct += bits.OnesCount16(r)
	}
	return ct
}

// NewlyFilled counts cells that are filled in b but were empty in old.
func (b Board) NewlyFilled(old Board) int {
	ct := 0
	for y, r := range b.rows {
		ct += bits.OnesCount16(r &^ old.rows[y])
	}
	return ct
}

// IsEmpty reports whether no cell is filled.
func (b Board) IsEmpty() bool {
	return b == Board{}
}

// CanPlace reports whether br fits with its top-left offset at pos: every
// cell it covers must be on the board and empty. pos must not be negative
// and br must be a normalized brick; anything else is a caller bug and
// panics.
func (b Board) CanPlace(br *brick.Brick, pos brick.XY) bool {
	if pos.X < 0 || pos.Y < 0 {
		panic(fmt.Sprintf("board: negative position %v", pos))
	}
	if !br.IsNormalized() {
		panic("board: brick is not normalized")
	}
	mo := br.MaxOffset()
	if pos.X+mo.X > Dim-1 || pos.Y+mo.Y > Dim-1 {
		return false
	}
	for dy, m := range br.RowMasks() {
		if b.rows[pos.Y+dy]&(m<<pos.X) != 0 {
			return false
		}
	}
	return true
}

// Place returns a new board with every cell of br at pos filled. The
// placement must already be known to be legal; Place panics otherwise.
func (b Board) Place(br *brick.Brick, pos brick.XY) Board {
	if !b.CanPlace(br, pos) {
		panic(fmt.Sprintf("board: cannot put brick %v at %v on board:\n%s",
			br, pos, b.ToDisplayText()))
	}
	for dy, m := range br.RowMasks() {
		b.rows[pos.Y+dy] |= m << pos.X
	}
	return b
}

// LegalPositions lists every position where br can be placed. Positions are
// ordered by x, then by y.
func (b Board) LegalPositions(br *brick.Brick) []brick.XY {
	var ret []brick.XY
	b.ForEachLegalPosition(br, func(p brick.XY) {
		ret = append(ret, p)
	})
	return ret
}

// ForEachLegalPosition calls fn for every legal position of br, in the same
// order as LegalPositions, without allocating.
func (b Board) ForEachLegalPosition(br *brick.Brick, fn func(brick.XY)) {
	for x := 0; x < Dim; x++ {
		for y := 0; y < Dim; y++ {
			p := brick.XY{X: x, Y: y}
			if b.CanPlace(br, p) {
				fn(p)
			}
		}
	}
}

// HasLegalPosition reports whether br fits anywhere.
func (b Board) HasLegalPosition(br *brick.Brick) bool {
	mo := br.MaxOffset()
	for x := 0; x+mo.X < Dim; x++ {
		for y := 0; y+mo.Y < Dim; y++ {
			if b.CanPlace(br, brick.XY{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}

// FromRows builds a board from nine lines of nine characters each, where
// 'X' or 'x' is a filled cell and '.' is empty. Whitespace and the '|'
// separators used by ToDisplayText are ignored inside a line.
func FromRows(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Dim {
		return b, fmt.Errorf("%w: need %d rows, got %d", ErrBadBoardText, Dim, len(rows))
	}
	for y, line := range rows {
		x := 0
		for _, c := range line {
			switch c {
			case ' ', '\t', '|':
				continue
			case 'X', 'x':
				if x < Dim {
					b.rows[y] |= 1 << x
				}
			case '.':
			default:
				return Board{}, fmt.Errorf("%w: unexpected %q in row %d", ErrBadBoardText, c, y+1)
			}
			x++
		}
		if x != Dim {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrBadBoardText, y+1, x)
		}
	}
	return b, nil
}

// MustFromRows is FromRows for literals known to be well formed.
func MustFromRows(rows ...string) Board {
	b, err := FromRows(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// ToRows is the inverse of FromRows.
func (b Board) ToRows() []string {
	ret := make([]string, Dim)
	for y := range Dim {
		var sb strings.Builder
		for x := range Dim {
			if b.Filled(x, y) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		ret[y] = sb.String()
	}
	return ret
}
