// Package brick contains the polyomino pieces ("bricks") of Roku Doku, the
// rotation algebra used to derive their orientations, and the fixed library
// that bricks are drawn from.
package brick

import (
	"fmt"
	"sort"
	"strings"
)

// MaxExtent is the widest or tallest a brick may be. Nothing larger fits on
// a board.
const MaxExtent = 9

// XY is a pair of integer coordinates. For board cells X is the column
// (a-i) and Y is the row (1-9), both 0-based.
type XY struct {
	X int
	Y int
}

func (p XY) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// A Brick is an immutable set of cell offsets. The minimum X and minimum Y
// over the set are always 0. Offsets are kept sorted row by row, so two
// bricks with the same cells have identical offset slices.
type Brick struct {
	offsets []XY
	width   int
	height  int
	// rowMasks[dy] has bit dx set for every offset (dx, dy).
	rowMasks   []uint16
	normalized bool
}

// New builds a normalized brick from the given offsets. The offsets may be
// anywhere on the plane; they get shifted so the minimum offset in each axis
// is 0. New panics on an empty or duplicated offset set, or on a shape that
// is larger than MaxExtent in either axis.
func New(offsets ...XY) *Brick {
	if len(offsets) == 0 {
		panic("brick: cannot build a brick with no cells")
	}
	minX, minY := offsets[0].X, offsets[0].Y
	for _, o := range offsets[1:] {
		minX = min(minX, o.X)
		minY = min(minY, o.Y)
	}

	b := &Brick{offsets: make([]XY, len(offsets)), normalized: true}
	for i, o := range offsets {
		n := XY{X: o.X - minX, Y: o.Y - minY}
		b.offsets[i] = n
		b.width = max(b.width, n.X+1)
		b.height = max(b.height, n.Y+1)
	}
	if b.width > MaxExtent || b.height > MaxExtent {
		panic(fmt.Sprintf("brick: shape %v exceeds %dx%d", offsets, MaxExtent, MaxExtent))
	}
	sort.Slice(b.offsets, func(i, j int) bool {
		if b.offsets[i].Y != b.offsets[j].Y {
			return b.offsets[i].Y < b.offsets[j].Y
		}
		return b.offsets[i].X < b.offsets[j].X
	})

	b.rowMasks = make([]uint16, b.height)
	for i, o := range b.offsets {
		if i > 0 && o == b.offsets[i-1] {
			panic(fmt.Sprintf("brick: duplicate offset %v", o))
		}
		b.rowMasks[o.Y] |= 1 << o.X
	}
	return b
}

// Offsets returns a copy of the brick's offsets in canonical order.
func (b *Brick) Offsets() []XY {
	ret := make([]XY, len(b.offsets))
	copy(ret, b.offsets)
	return ret
}

// Size is the number of cells in the brick.
func (b *Brick) Size() int {
	return len(b.offsets)
}

// MaxOffset is the largest X and the largest Y over all offsets.
func (b *Brick) MaxOffset() XY {
	return XY{X: b.width - 1, Y: b.height - 1}
}

// Width of the bounding box.
func (b *Brick) Width() int {
	return b.width
}

// Height of the bounding box.
func (b *Brick) Height() int {
	return b.height
}

// RowMasks holds one bitmask per brick row: bit dx of mask dy is set when
// (dx, dy) is one of its offsets. Callers must not modify the returned
// slice.
func (b *Brick) RowMasks() []uint16 {
	return b.rowMasks
}

// IsNormalized reports whether b is a well-formed brick. Only bricks built
// with New are; the zero value is not.
func (b *Brick) IsNormalized() bool {
	return b != nil && b.normalized
}

// Equal compares bricks by their cells, not by identity.
func (b *Brick) Equal(o *Brick) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil || len(b.offsets) != len(o.offsets) {
		return false
	}
	for i := range b.offsets {
		if b.offsets[i] != o.offsets[i] {
			return false
		}
	}
	return true
}

func (b *Brick) String() string {
	parts := make([]string, len(b.offsets))
	for i, o := range b.offsets {
		parts[i] = o.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
