package brick

import (
	"errors"
	"fmt"
	"strings"
)

// Orientations is the number of rotations generated per base shape.
const Orientations = 4

// Weighting selects how Library.Draw picks a brick.
type Weighting int

const (
	// WeightByOrientation draws uniformly over every library entry. Shapes
	// whose rotations coincide (the single cell, the straight lines, the
	// ring) therefore show up with each of their orientations counted
	// separately. This is how the game has always played.
	WeightByOrientation Weighting = iota
	// WeightByShape first picks a base shape uniformly, then one of its
	// four orientations.
	WeightByShape
)

var ErrUnknownWeighting = errors.New("unknown draw weighting")

// WeightingFromString parses "orientation" or "shape".
func WeightingFromString(s string) (Weighting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "orientation":
		return WeightByOrientation, nil
	case "shape":
		return WeightByShape, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeighting, s)
}

func (w Weighting) String() string {
	switch w {
	case WeightByOrientation:
		return "orientation"
	case WeightByShape:
		return "shape"
	}
	return fmt.Sprintf("Weighting(%d)", int(w))
}

// RandSource hands out uniform integers in [0, n). The library never owns
// its randomness; callers pass one in.
type RandSource interface {
	Intn(n int) int
}

// BaseShapes returns the hand-authored shapes every orientation is derived
// from, in library order.
func BaseShapes() []*Brick {
	return []*Brick{
		// X
		New(XY{0, 0}),
		// XX
		New(XY{0, 0}, XY{1, 0}),
		// XXX
		New(XY{0, 0}, XY{1, 0}, XY{2, 0}),
		// XXXX
		New(XY{0, 0}, XY{1, 0}, XY{2, 0}, XY{3, 0}),
		// XXXXX
		New(XY{0, 0}, XY{1, 0}, XY{2, 0}, XY{3, 0}, XY{4, 0}),
		// XX
		// X
		New(XY{0, 0}, XY{1, 0}, XY{0, 1}),
		// XXX
		//  X
		New(XY{0, 0}, XY{1, 0}, XY{2, 0}, XY{1, 1}),
		// XXX
		//  X
		//  X
		New(XY{0, 0}, XY{1, 0}, XY{2, 0}, XY{1, 1}, XY{1, 2}),
		// XXX
		// X X
		New(XY{0, 0}, XY{1, 0}, XY{2, 0}, XY{0, 1}, XY{2, 1}),
		// XXX
		// X X
		// X X
		New(XY{0, 0}, XY{1, 0}, XY{2, 0}, XY{0, 1}, XY{2, 1}, XY{0, 2}, XY{2, 2}),
		// XX
		//  XX
		New(XY{0, 0}, XY{1, 0}, XY{1, 1}, XY{2, 1}),
	}
}

// A Library is the ordered catalogue of playable bricks: every orientation
// of every base shape, Orientations entries per shape. It is built once by
// the caller and is read-only afterwards, so one Library can be shared by
// any number of games and goroutines.
type Library struct {
	bricks    []*Brick
	numShapes int
	weighting Weighting
}

// NewLibrary expands each base shape into its four rotations.
func NewLibrary(bases []*Brick, weighting Weighting) *Library {
	if len(bases) == 0 {
		panic("brick: library needs at least one base shape")
	}
	l := &Library{
		bricks:    make([]*Brick, 0, len(bases)*Orientations),
		numShapes: len(bases),
		weighting: weighting,
	}
	for _, b := range bases {
		rots := b.Rotations()
		l.bricks = append(l.bricks, rots[:]...)
	}
	return l
}

// StandardLibrary is the 44-brick library the game is played with.
func StandardLibrary(weighting Weighting) *Library {
	return NewLibrary(BaseShapes(), weighting)
}

// Len is the number of entries, duplicates included.
func (l *Library) Len() int {
	return len(l.bricks)
}

// NumShapes is the number of base shapes.
func (l *Library) NumShapes() int {
	return l.numShapes
}

// Weighting is how Draw picks a brick.
func (l *Library) Weighting() Weighting {
	return l.weighting
}

// At returns the brick at library index i.
func (l *Library) At(i int) *Brick {
	return l.bricks[i]
}

// Bricks returns the library entries in order.
func (l *Library) Bricks() []*Brick {
	ret := make([]*Brick, len(l.bricks))
	copy(ret, l.bricks)
	return ret
}

// Draw picks one brick using src, according to the library's weighting.
func (l *Library) Draw(src RandSource) *Brick {
	switch l.weighting {
	case WeightByShape:
		shape := src.Intn(l.numShapes)
		return l.bricks[shape*Orientations+src.Intn(Orientations)]
	default:
		return l.bricks[src.Intn(len(l.bricks))]
	}
}
