package board

import (
	"fmt"
	"strings"
)

const (
	columnHeader = "  abc def ghi"
	rowSeparator = " -------------"
)

// ToDisplayText draws the board with X for filled cells, a separator every
// three rows and columns, and coordinates on every side.
func (b Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(columnHeader + "\n")
	for y := range Dim {
		if y%BlockDim == 0 {
			sb.WriteString(rowSeparator + "\n")
		}
		fmt.Fprintf(&sb, "%d", y+1)
		for x := range Dim {
			if x%BlockDim == 0 {
				sb.WriteByte('|')
			}
			if b.Filled(x, y) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Fprintf(&sb, "|%d\n", y+1)
	}
	sb.WriteString(rowSeparator + "\n")
	sb.WriteString(columnHeader + "\n")
	return sb.String()
}

func (b Board) String() string {
	return strings.Join(b.ToRows(), "/")
}
