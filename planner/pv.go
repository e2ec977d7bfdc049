package planner

import (
	"fmt"
	"strings"

	"github.com/domino14/rokudoku/game"
)

// MaxLineLength is the longest line the solver can return: one move per
// brick of a full batch.
const MaxLineLength = game.BatchSize

// PVLine is the principal variation: the best sequence of moves for the
// rest of the batch, and the value the solver gave it.
type PVLine struct {
	moves [MaxLineLength]game.Move
	n     int
	score int
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.n = 0
}

// Update the principal variation line with a new best move, followed by the
// best line after it.
func (pvLine *PVLine) Update(m game.Move, newPVLine PVLine, score int) {
	pvLine.moves[0] = m
	copy(pvLine.moves[1:], newPVLine.moves[:newPVLine.n])
	pvLine.n = newPVLine.n + 1
	pvLine.score = score
}

// BestMove is the first move of the line.
func (pvLine PVLine) BestMove() game.Move {
	if pvLine.n == 0 {
		panic("planner: empty principal variation")
	}
	return pvLine.moves[0]
}

func (pvLine PVLine) Moves() []game.Move {
	ret := make([]game.Move, pvLine.n)
	copy(ret, pvLine.moves[:pvLine.n])
	return ret
}

func (pvLine PVLine) Len() int {
	return pvLine.n
}

// Score is the projected value of the line: points at the end of the batch
// less the penalties of the evaluation.
func (pvLine PVLine) Score() int {
	return pvLine.score
}

func (pvLine PVLine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; val %d\n", pvLine.score)
	for i := 0; i < pvLine.n; i++ {
		fmt.Fprintf(&sb, "%d: %s\n", i+1, pvLine.moves[i].ShortDescription())
	}
	return sb.String()
}

// NLBString is String with no line breaks.
func (pvLine PVLine) NLBString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; val %d; ", pvLine.score)
	for i := 0; i < pvLine.n; i++ {
		fmt.Fprintf(&sb, "%d: %s; ", i+1, pvLine.moves[i].ShortDescription())
	}
	return sb.String()
}
