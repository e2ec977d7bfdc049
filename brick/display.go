package brick

import (
	"fmt"
	"strings"
)

// ToDisplayText draws the brick with X for filled cells, one line per row.
func (b *Brick) ToDisplayText() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.rowMasks[y]&(1<<x) != 0 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// JoinedDisplayText draws several bricks side by side with two empty
// columns between neighbours, the way a batch is shown to a player.
func JoinedDisplayText(bricks []*Brick) string {
	if len(bricks) == 0 {
		return ""
	}
	width, height := 0, 0
	for i, b := range bricks {
		if i > 0 {
			width += 2
		}
		width += b.width
		height = max(height, b.height)
	}
	lines := make([][]byte, height)
	for y := range lines {
		lines[y] = []byte(strings.Repeat(" ", width))
	}
	xOffset := 0
	for _, b := range bricks {
		for _, o := range b.offsets {
			lines[o.Y][xOffset+o.X] = 'X'
		}
		xOffset += b.width + 2
	}
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(strings.TrimRight(string(l), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ToDisplayText lists every library entry with its index.
func (l *Library) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "printing %d bricks from the library (%d shapes, drawn by %s)\n",
		len(l.bricks), l.NumShapes(), l.Weighting())
	for i, b := range l.bricks {
		fmt.Fprintf(&sb, "brick %d:\n", i)
		sb.WriteString(b.ToDisplayText())
		sb.WriteString("----------------\n")
	}
	return sb.String()
}
