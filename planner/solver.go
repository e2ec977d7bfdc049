// Package planner picks the next move of a Roku Doku game by searching every
// way of placing the rest of the current batch.
//
// The search is exhaustive with no pruning and no memoization. A line ends
// when the batch is used up, scored as points less a penalty per filled
// cell, or when no brick left in the batch fits, scored as points less a
// large dead-end penalty. Every other position is worth its best
// continuation.
package planner

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/rokudoku/game"
)

const (
	// LeafFilledPenalty is subtracted per filled cell once the batch is
	// used up, to prefer keeping the board open.
	LeafFilledPenalty = 2
	// DeadEndPenalty is subtracted when a move leaves bricks in the batch
	// that fit nowhere.
	DeadEndPenalty = 1000
)

var (
	ErrNoLegalMove = errors.New("no legal move in this position")
)

// Solver searches a State. It holds no state between calls other than its
// thread setting and statistics about the last search, so a single Solver
// can be reused for every move of a game. Solve must not be called
// concurrently on the same Solver.
type Solver struct {
	threads int
	nodes   atomic.Uint64
	elapsed time.Duration
}

func NewSolver() *Solver {
	return &Solver{threads: 1}
}

// SetThreads sets how many goroutines share the candidate moves of the
// root. The result does not depend on it.
func (s *Solver) SetThreads(threads int) {
	s.threads = max(1, threads)
}

func (s *Solver) Threads() int {
	return s.threads
}

// Nodes is the number of moves applied during the last Solve.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Elapsed is how long the last Solve took.
func (s *Solver) Elapsed() time.Duration {
	return s.elapsed
}

type rootResult struct {
	value int
	pv    PVLine
}

// Solve returns the best line for st. Among equally valued candidates the
// one enumerated last wins, brick index first, then x, then y. It returns
// ErrNoLegalMove if no brick of the batch fits, and ctx.Err() if ctx is
// cancelled before every candidate was searched.
func (s *Solver) Solve(ctx context.Context, st game.State) (PVLine, error) {
	logger := zerolog.Ctx(ctx)
	tstart := time.Now()
	s.nodes.Store(0)
	defer func() {
		s.elapsed = time.Since(tstart)
	}()

	roots := st.LegalMoves()
	if len(roots) == 0 {
		return PVLine{}, ErrNoLegalMove
	}
	threads := min(s.threads, len(roots))
	logger.Debug().Int("candidates", len(roots)).Int("threads", threads).
		Int("bricks", st.NumBricks()).Msg("solve-config")

	results := make([]rootResult, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	for t := range threads {
		g.Go(func() error {
			var w worker
			defer func() {
				s.nodes.Add(w.nodes)
			}()
			// Candidates are dealt out in strides so every goroutine
			// gets a mix of bricks.
			for i := t; i < len(roots); i += threads {
				if err := gctx.Err(); err != nil {
					return err
				}
				var childPV PVLine
				v := w.value(st, roots[i], &childPV)
				results[i].value = v
				results[i].pv.Update(roots[i], childPV, v)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return PVLine{}, err
	}

	best := 0
	for i := range results {
		if results[i].value >= results[best].value {
			best = i
		}
	}
	pv := results[best].pv
	logger.Debug().
		Uint64("nodes", s.nodes.Load()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Int("value", pv.Score()).
		Str("pv", pv.NLBString()).
		Msg("solve-returning")
	return pv, nil
}

// BestMove is Solve without the rest of the line.
func (s *Solver) BestMove(ctx context.Context, st game.State) (game.Move, error) {
	pv, err := s.Solve(ctx, st)
	if err != nil {
		return game.Move{}, err
	}
	return pv.BestMove(), nil
}

// worker runs the recursion for one goroutine and counts its nodes locally.
type worker struct {
	nodes uint64
}

// value plays m on st and returns what the resulting position is worth,
// filling pv with the best line after m.
func (w *worker) value(st game.State, m game.Move, pv *PVLine) int {
	w.nodes++
	next, _ := st.Apply(m)
	switch {
	case next.NeedsRefill():
		return next.Points() - LeafFilledPenalty*next.Board().FilledCount()
	case !next.HasLegalMove():
		return next.Points() - DeadEndPenalty
	}
	return w.best(next, pv)
}

// best searches every legal move of st, which must have at least one.
func (w *worker) best(st game.State, pv *PVLine) int {
	bestValue := math.MinInt
	var childPV PVLine
	st.ForEachLegalMove(func(m game.Move) {
		childPV.Clear()
		v := w.value(st, m, &childPV)
		if v >= bestValue {
			bestValue = v
			pv.Update(m, childPV, v)
		}
	})
	return bestValue
}
