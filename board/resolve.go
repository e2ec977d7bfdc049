package board

const blockMask uint16 = 1<<BlockDim - 1

// Resolve clears every full row, full column and full 3x3 block. All three
// kinds of unit are judged on the board as it was before anything is
// cleared, then cleared together, so clearing a row never decides whether an
// overlapping block counts. It returns the cleared board and the number of
// units that were full. A cell that belongs to several full units is simply
// emptied once.
func (b Board) Resolve() (Board, int) {
	var cleared [Dim]uint16
	units := 0

	// rows
	cols := fullRow
	for y, r := range b.rows {
		if r == fullRow {
			cleared[y] = fullRow
			units++
		}
		cols &= r
	}

	// columns: a bit survives the AND above only if every row has it.
	if cols != 0 {
		for y := range cleared {
			cleared[y] |= cols
		}
		for c := cols; c != 0; c &= c - 1 {
			units++
		}
	}

	// blocks
	for by := 0; by < Dim; by += BlockDim {
		for bx := 0; bx < Dim; bx += BlockDim {
			m := blockMask << bx
			full := true
			for y := by; y < by+BlockDim; y++ {
				if b.rows[y]&m != m {
					full = false
					break
				}
			}
			if full {
				units++
				for y := by; y < by+BlockDim; y++ {
					cleared[y] |= m
				}
			}
		}
	}

	if units == 0 {
		return b, 0
	}
	for y := range b.rows {
		b.rows[y] &^= cleared[y]
	}
	return b, units
}
