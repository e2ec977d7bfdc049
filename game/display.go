package game

import (
	"fmt"
	"strings"

	"github.com/domino14/rokudoku/brick"
)

// ToDisplayText renders the score, the board and the available bricks.
func (s State) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\ncurrent points: %d", s.points)
	if s.lastMoveCleared {
		sb.WriteString(" (streak)")
	}
	sb.WriteString("\n\n")
	sb.WriteString(s.board.ToDisplayText())
	sb.WriteString("\n")
	sb.WriteString(brick.JoinedDisplayText(s.Bricks()))
	return sb.String()
}
