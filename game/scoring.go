package game

import "github.com/domino14/rokudoku/board"

const (
	// PointsPerUnit is awarded for every row, column or block cleared.
	PointsPerUnit = 18
	// StreakBonus is added when a move clears something right after a
	// move that also cleared something.
	StreakBonus = 9
)

// Outcome is the scoring breakdown of one move.
type Outcome struct {
	UnitsCleared int
	// NewlyFilled counts cells filled after the move (clears included)
	// that were empty before it.
	NewlyFilled int
	Streak      bool
	Points      int
}

// Score computes the points for a move that turned before into after and
// cleared units units. lastMoveCleared is the streak flag going into the
// move.
//
// points = 18 per unit + 9 if this move and the previous one both cleared
// + one per newly filled cell.
func Score(lastMoveCleared bool, before, after board.Board, units int) Outcome {
	out := Outcome{
		UnitsCleared: units,
		NewlyFilled:  after.NewlyFilled(before),
		Streak:       lastMoveCleared && units > 0,
	}
	out.Points = units*PointsPerUnit + out.NewlyFilled
	if out.Streak {
		out.Points += StreakBonus
	}
	return out
}
