// Package game holds the state of a single Roku Doku game and the pure
// transitions between states: refilling the batch of bricks, applying a
// move, and scoring it.
//
// A State is a value. Apply and Refill return a new State and never touch
// the receiver, which is what lets the planner explore many futures of one
// position side by side.
package game

import (
	"fmt"

	"github.com/domino14/rokudoku/board"
	"github.com/domino14/rokudoku/brick"
)

// BatchSize is how many bricks are dealt at once.
const BatchSize = 3

// State is everything that determines how a game continues.
type State struct {
	board   board.Board
	bricks  [BatchSize]*brick.Brick
	nbricks int
	points  int
	// lastMoveCleared is set when the previous move cleared at least one
	// unit; another clear right after it earns the streak bonus.
	lastMoveCleared bool
}

// NewState is an empty board with no bricks and no points.
func NewState() State {
	return State{}
}

func (s State) Board() board.Board {
	return s.board
}

func (s State) Points() int {
	return s.points
}

func (s State) LastMoveCleared() bool {
	return s.lastMoveCleared
}

// NumBricks is the number of bricks still available in the batch.
func (s State) NumBricks() int {
	return s.nbricks
}

// Brick returns available brick i (0-based).
func (s State) Brick(i int) *brick.Brick {
	if i < 0 || i >= s.nbricks {
		panic(fmt.Sprintf("game: brick index %d out of range [0, %d)", i, s.nbricks))
	}
	return s.bricks[i]
}

// Bricks returns the available bricks in batch order.
func (s State) Bricks() []*brick.Brick {
	ret := make([]*brick.Brick, s.nbricks)
	copy(ret, s.bricks[:s.nbricks])
	return ret
}

// WithBoard returns a copy of s on a different board.
func (s State) WithBoard(b board.Board) State {
	s.board = b
	return s
}

// WithBricks returns a copy of s whose batch is exactly bricks.
func (s State) WithBricks(bricks ...*brick.Brick) State {
	if len(bricks) > BatchSize {
		panic(fmt.Sprintf("game: batch of %d bricks exceeds %d", len(bricks), BatchSize))
	}
	s.bricks = [BatchSize]*brick.Brick{}
	for i, b := range bricks {
		if !b.IsNormalized() {
			panic("game: brick is not normalized")
		}
		s.bricks[i] = b
	}
	s.nbricks = len(bricks)
	return s
}

// WithPoints returns a copy of s with the given score and streak flag.
func (s State) WithPoints(points int, lastMoveCleared bool) State {
	s.points = points
	s.lastMoveCleared = lastMoveCleared
	return s
}

// NeedsRefill is true once every brick of the batch has been placed.
func (s State) NeedsRefill() bool {
	return s.nbricks == 0
}

// Refill deals a fresh batch of BatchSize bricks from lib when the batch
// is empty. A state that still has bricks is returned unchanged.
func (s State) Refill(lib *brick.Library, src brick.RandSource) State {
	if s.nbricks > 0 {
		return s
	}
	for i := range BatchSize {
		s.bricks[i] = lib.Draw(src)
	}
	s.nbricks = BatchSize
	return s
}

// HasLegalMove reports whether any available brick fits anywhere.
func (s State) HasLegalMove() bool {
	for i := 0; i < s.nbricks; i++ {
		if s.board.HasLegalPosition(s.bricks[i]) {
			return true
		}
	}
	return false
}

// IsOver is true when there are bricks to place but none of them fits.
func (s State) IsOver() bool {
	return s.nbricks > 0 && !s.HasLegalMove()
}

// LegalMoves lists every legal move, by brick index and then by position.
func (s State) LegalMoves() []Move {
	var moves []Move
	s.ForEachLegalMove(func(m Move) {
		moves = append(moves, m)
	})
	return moves
}

// ForEachLegalMove calls fn for every legal move, in LegalMoves order.
func (s State) ForEachLegalMove(fn func(Move)) {
	for i := 0; i < s.nbricks; i++ {
		s.board.ForEachLegalPosition(s.bricks[i], func(p brick.XY) {
			fn(Move{BrickIndex: i, Pos: p})
		})
	}
}

// CanPlay reports whether m is legal in s. Unlike Apply it never panics, so
// it is the check to run on moves that come from outside, such as player
// input.
func (s State) CanPlay(m Move) bool {
	if m.BrickIndex < 0 || m.BrickIndex >= s.nbricks {
		return false
	}
	if m.Pos.X < 0 || m.Pos.Y < 0 {
		return false
	}
	return s.board.CanPlace(s.bricks[m.BrickIndex], m.Pos)
}

// Apply plays m and returns the resulting state along with what the move
// scored. The move must be legal; Apply panics on a bad brick index or an
// illegal position.
func (s State) Apply(m Move) (State, Outcome) {
	if m.BrickIndex < 0 || m.BrickIndex >= s.nbricks {
		panic(fmt.Sprintf("game: move %v uses brick index out of range [0, %d)", m, s.nbricks))
	}
	placed := s.board.Place(s.bricks[m.BrickIndex], m.Pos)
	resolved, units := placed.Resolve()
	out := Score(s.lastMoveCleared, s.board, resolved, units)

	next := s
	copy(next.bricks[m.BrickIndex:], s.bricks[m.BrickIndex+1:])
	next.nbricks--
	next.bricks[next.nbricks] = nil
	next.board = resolved
	next.points += out.Points
	next.lastMoveCleared = units > 0
	return next, out
}
