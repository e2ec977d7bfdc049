package brick

// RotateClockwise returns a new brick turned 90 degrees clockwise, with Y
// growing downwards. An offset (x, y) inside a w by h bounding box moves to
// (h-1-y, x); the result is normalized again.
//
// This one formula covers every shape. It agrees with the explicit 2x2 and
// 3x3 cell tables, and for the two long straight lines it gives the same
// cells as swapping x and y.
func (b *Brick) RotateClockwise() *Brick {
	if len(b.offsets) == 1 {
		return b
	}
	rotated := make([]XY, len(b.offsets))
	for i, o := range b.offsets {
		rotated[i] = XY{X: b.height - 1 - o.Y, Y: o.X}
	}
	return New(rotated...)
}

// Rotations returns b turned by 0, 90, 180 and 270 degrees, in that order.
// Symmetric shapes produce repeated entries; they are kept.
func (b *Brick) Rotations() [4]*Brick {
	var ret [4]*Brick
	ret[0] = b
	for i := 1; i < 4; i++ {
		ret[i] = ret[i-1].RotateClockwise()
	}
	return ret
}
