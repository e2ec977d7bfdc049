package game

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/rokudoku/board"
	"github.com/domino14/rokudoku/brick"
)

var (
	single = brick.New(brick.XY{X: 0, Y: 0})
	line3  = brick.New(brick.XY{X: 0, Y: 0}, brick.XY{X: 1, Y: 0}, brick.XY{X: 2, Y: 0})
	arch   = brick.BaseShapes()[9]
)

type fixedSource struct{ vals []int }

func (f *fixedSource) Intn(n int) int {
	v := f.vals[0] % n
	f.vals = append(f.vals[1:], f.vals[0])
	return v
}

func TestSingleBrickScenario(t *testing.T) {
	is := is.New(t)
	s := NewState().WithBricks(single, single)
	next, out := s.Apply(Move{BrickIndex: 0, Pos: brick.XY{X: 0, Y: 0}})

	is.Equal(out, Outcome{UnitsCleared: 0, NewlyFilled: 1, Points: 1})
	is.Equal(next.Points(), 1)
	is.Equal(next.NumBricks(), 1)
	is.True(!next.CanPlay(Move{BrickIndex: 0, Pos: brick.XY{X: 0, Y: 0}}))
	is.True(next.CanPlay(Move{BrickIndex: 0, Pos: brick.XY{X: 1, Y: 0}}))
	is.True(!next.Board().CanPlace(single, brick.XY{X: 0, Y: 0}))
	is.True(next.Board().CanPlace(single, brick.XY{X: 1, Y: 0}))

	// the original state is untouched
	is.Equal(s.NumBricks(), 2)
	is.True(s.Board().IsEmpty())
	is.Equal(s.Points(), 0)
}

func TestApplyRemovesBrickKeepingOrder(t *testing.T) {
	is := is.New(t)
	s := NewState().WithBricks(single, line3, arch)
	next, _ := s.Apply(Move{BrickIndex: 1, Pos: brick.XY{X: 0, Y: 0}})
	is.Equal(next.NumBricks(), 2)
	is.True(next.Brick(0) == single)
	is.True(next.Brick(1) == arch)
	is.Equal(next.Bricks(), []*brick.Brick{single, arch})
	is.True(s.Brick(1) == line3)

	last, _ := next.Apply(Move{BrickIndex: 1, Pos: brick.XY{X: 6, Y: 6}})
	done, _ := last.Apply(Move{BrickIndex: 0, Pos: brick.XY{X: 8, Y: 0}})
	is.True(done.NeedsRefill())
	is.Equal(done.Bricks(), []*brick.Brick{})
}

func TestApplyClearsAndStreaks(t *testing.T) {
	is := is.New(t)
	// row 1 missing its last three cells, row 9 missing its first three
	b := board.MustFromRows(
		"XXXXXX...",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		"...XXXXXX",
	)
	s := NewState().WithBoard(b).WithBricks(line3, line3, single)

	s1, out := s.Apply(Move{BrickIndex: 0, Pos: brick.XY{X: 6, Y: 0}})
	is.Equal(out.UnitsCleared, 1)
	is.True(!out.Streak)
	// the row is gone, so nothing new remains filled
	is.Equal(out.NewlyFilled, 0)
	is.Equal(out.Points, 18)
	is.True(s1.LastMoveCleared())
	is.Equal(s1.Board().FilledCount(), 6)

	s2, out := s1.Apply(Move{BrickIndex: 0, Pos: brick.XY{X: 0, Y: 8}})
	is.Equal(out.UnitsCleared, 1)
	is.True(out.Streak)
	is.Equal(out.Points, 18+9)
	is.Equal(s2.Points(), 18+27)
	is.True(s2.Board().IsEmpty())

	s3, out := s2.Apply(Move{BrickIndex: 0, Pos: brick.XY{X: 4, Y: 4}})
	is.Equal(out, Outcome{NewlyFilled: 1, Points: 1})
	is.True(!s3.LastMoveCleared())
	is.Equal(s3.Points(), 46)
}

func TestScore(t *testing.T) {
	is := is.New(t)
	before := board.Board{}.WithCell(0, 0, true)
	after := before.WithCell(1, 0, true).WithCell(2, 0, true)
	is.Equal(Score(false, before, after, 0), Outcome{NewlyFilled: 2, Points: 2})
	is.Equal(Score(true, before, after, 0), Outcome{NewlyFilled: 2, Points: 2})
	is.Equal(Score(true, before, after, 2), Outcome{UnitsCleared: 2, NewlyFilled: 2, Streak: true, Points: 36 + 9 + 2})
	is.Equal(Score(false, before, board.Board{}, 3), Outcome{UnitsCleared: 3, Points: 54})
}

func TestApplyContractViolations(t *testing.T) {
	s := NewState().WithBricks(single).WithBoard(board.Board{}.WithCell(0, 0, true))
	assert.Panics(t, func() { s.Apply(Move{BrickIndex: 1}) })
	assert.Panics(t, func() { s.Apply(Move{BrickIndex: -1}) })
	assert.Panics(t, func() { s.Apply(Move{BrickIndex: 0, Pos: brick.XY{X: 0, Y: 0}}) })
	assert.Panics(t, func() { s.Brick(1) })
	assert.Panics(t, func() { NewState().WithBricks(single, single, single, single) })
	assert.False(t, s.CanPlay(Move{BrickIndex: 3}))
	assert.False(t, s.CanPlay(Move{BrickIndex: 0, Pos: brick.XY{X: -1, Y: 0}}))
}

func TestRefill(t *testing.T) {
	is := is.New(t)
	lib := brick.StandardLibrary(brick.WeightByOrientation)
	src := &fixedSource{vals: []int{4, 16, 43}}

	s := NewState().Refill(lib, src)
	is.Equal(s.NumBricks(), BatchSize)
	is.True(s.Brick(0) == lib.At(4))
	is.True(s.Brick(1) == lib.At(16))
	is.True(s.Brick(2) == lib.At(43))

	// a batch that is not used up stays as it is
	again := s.Refill(lib, src)
	is.Equal(again.Bricks(), s.Bricks())
}

func TestSeededRefillIsReproducible(t *testing.T) {
	is := is.New(t)
	lib := brick.StandardLibrary(brick.WeightByOrientation)
	a := NewSeededRandSource(42, 7)
	b := NewSeededRandSource(42, 7)
	for range 20 {
		sa := NewState().Refill(lib, a)
		sb := NewState().Refill(lib, b)
		is.Equal(sa.Bricks(), sb.Bricks())
	}
}

func TestRandSourceCoversLibrary(t *testing.T) {
	is := is.New(t)
	lib := brick.StandardLibrary(brick.WeightByOrientation)
	src := NewRandSource()
	counts := make([]int, lib.Len())
	const draws = 44000
	for range draws {
		counts[src.Intn(lib.Len())]++
	}
	for _, c := range counts {
		// expected 1000 each; this is many standard deviations wide.
		is.True(c > 800 && c < 1200)
	}
}

func TestIsOver(t *testing.T) {
	is := is.New(t)
	var full board.Board
	for y := range board.Dim {
		for x := range board.Dim {
			full = full.WithCell(x, y, true)
		}
	}
	oneHole := full.WithCell(4, 4, false)

	is.True(!NewState().IsOver())
	is.True(NewState().WithBoard(full).WithBricks(single).IsOver())
	is.True(!NewState().WithBoard(oneHole).WithBricks(line3, single).IsOver())
	is.True(NewState().WithBoard(oneHole).WithBricks(line3, arch).IsOver())
	is.Equal(NewState().WithBoard(oneHole).WithBricks(line3, single).LegalMoves(),
		[]Move{{BrickIndex: 1, Pos: brick.XY{X: 4, Y: 4}}})
}

func TestLegalMovesOrder(t *testing.T) {
	is := is.New(t)
	s := NewState().WithBricks(arch, single)
	moves := s.LegalMoves()
	is.Equal(len(moves), 7*7+81)
	is.Equal(moves[0], Move{BrickIndex: 0, Pos: brick.XY{X: 0, Y: 0}})
	is.Equal(moves[1], Move{BrickIndex: 0, Pos: brick.XY{X: 0, Y: 1}})
	is.Equal(moves[49], Move{BrickIndex: 1, Pos: brick.XY{X: 0, Y: 0}})
}

func TestMoveDescription(t *testing.T) {
	is := is.New(t)
	m := Move{BrickIndex: 2, Pos: brick.XY{X: 3, Y: 3}}
	is.Equal(m.ShortDescription(), "3 d4")
	is.Equal(m.String(), "<brick 2 at (3,3)>")
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	s := NewState().WithBricks(single, line3).WithPoints(37, true)
	txt := s.ToDisplayText()
	is.True(len(txt) > 0)
	assert.Contains(t, txt, "current points: 37 (streak)")
	assert.Contains(t, txt, "1|...|...|...|1")
	assert.Contains(t, txt, "X  XXX\n")
}
