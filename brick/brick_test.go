package brick

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

// tableRotate is the cell-by-cell rotation for shapes that fit in a 3x3
// box, rotating about the square box of side max(maxX, maxY)+1.
func tableRotate(b *Brick) *Brick {
	mo := b.MaxOffset()
	side := max(mo.X, mo.Y)
	if side == 0 {
		return b
	}
	tables := map[int]map[XY]XY{
		1: {
			{0, 0}: {1, 0}, {1, 0}: {1, 1}, {1, 1}: {0, 1}, {0, 1}: {0, 0},
		},
		2: {
			{0, 0}: {2, 0}, {2, 0}: {2, 2}, {2, 2}: {0, 2}, {0, 2}: {0, 0},
			{1, 0}: {2, 1}, {2, 1}: {1, 2}, {1, 2}: {0, 1}, {0, 1}: {1, 0},
			{1, 1}: {1, 1},
		},
	}
	table, ok := tables[side]
	if !ok {
		return nil
	}
	out := []XY{}
	for _, o := range b.Offsets() {
		out = append(out, table[o])
	}
	return New(out...)
}

func transpose(b *Brick) *Brick {
	out := []XY{}
	for _, o := range b.Offsets() {
		out = append(out, XY{o.Y, o.X})
	}
	return New(out...)
}

func TestNewNormalizes(t *testing.T) {
	is := is.New(t)
	b := New(XY{3, 4}, XY{2, 4}, XY{2, 5})
	is.Equal(b.Offsets(), []XY{{0, 0}, {1, 0}, {0, 1}})
	is.Equal(b.MaxOffset(), XY{1, 1})
	is.Equal(b.Width(), 2)
	is.Equal(b.Height(), 2)
	is.Equal(b.Size(), 3)
	is.Equal(b.RowMasks(), []uint16{0b11, 0b01})
	is.True(b.IsNormalized())
}

func TestNewRejectsBadShapes(t *testing.T) {
	assert.Panics(t, func() { New() })
	assert.Panics(t, func() { New(XY{0, 0}, XY{1, 0}, XY{0, 0}) })
	assert.Panics(t, func() { New(XY{0, 0}, XY{MaxExtent, 0}) })
	assert.NotPanics(t, func() { New(XY{0, 0}, XY{MaxExtent - 1, 0}) })
}

func TestZeroBrickIsNotNormalized(t *testing.T) {
	is := is.New(t)
	var b *Brick
	is.True(!b.IsNormalized())
	is.True(!(&Brick{}).IsNormalized())
}

func TestEqualIsByContent(t *testing.T) {
	is := is.New(t)
	a := New(XY{0, 0}, XY{1, 0})
	b := New(XY{5, 5}, XY{4, 5})
	is.True(a != b)
	is.True(a.Equal(b))
	is.True(!a.Equal(New(XY{0, 0}, XY{0, 1})))
	is.True(!a.Equal(nil))
}

func TestRotateClockwise(t *testing.T) {
	is := is.New(t)
	// XX      XX
	// X   ->   X
	l := New(XY{0, 0}, XY{1, 0}, XY{0, 1})
	is.Equal(l.RotateClockwise().Offsets(), []XY{{0, 0}, {1, 0}, {1, 1}})

	// XXX      X
	//  X  ->  XX
	//          X
	tee := New(XY{0, 0}, XY{1, 0}, XY{2, 0}, XY{1, 1})
	is.Equal(tee.RotateClockwise().Offsets(), []XY{{1, 0}, {0, 1}, {1, 1}, {1, 2}})

	line := New(XY{0, 0}, XY{1, 0}, XY{2, 0}, XY{3, 0}, XY{4, 0})
	vert := line.RotateClockwise()
	is.Equal(vert.MaxOffset(), XY{0, 4})
	is.True(vert.RotateClockwise().Equal(line))
}

func TestGeneralRotationMatchesTables(t *testing.T) {
	is := is.New(t)
	for _, base := range BaseShapes() {
		b := base
		for i := 0; i < 4; i++ {
			got := b.RotateClockwise()
			mo := b.MaxOffset()
			if max(mo.X, mo.Y) <= 2 {
				is.True(got.Equal(tableRotate(b))) // 2x2 and 3x3 tables
			} else {
				is.True(mo.X == 0 || mo.Y == 0) // only straight lines exceed 3x3
				is.True(got.Equal(transpose(b)))
			}
			b = got
		}
	}
}

func TestFourRotationsRoundTrip(t *testing.T) {
	is := is.New(t)
	lib := StandardLibrary(WeightByOrientation)
	for _, b := range lib.Bricks() {
		r := b
		for i := 0; i < 4; i++ {
			r = r.RotateClockwise()
		}
		is.True(r.Equal(b))
	}
}

func TestRotationsKeepsSymmetricDuplicates(t *testing.T) {
	is := is.New(t)
	single := New(XY{0, 0}).Rotations()
	for _, r := range single {
		is.True(r.Equal(single[0]))
	}
	ring := BaseShapes()[9].Rotations()
	is.True(!ring[0].Equal(ring[1]))
	is.True(ring[0].Equal(ring[0].RotateClockwise().RotateClockwise().RotateClockwise().RotateClockwise()))
}

func TestBrickString(t *testing.T) {
	is := is.New(t)
	is.Equal(New(XY{1, 0}, XY{0, 0}).String(), "[(0,0) (1,0)]")
}
