// Package automatic plays Roku Doku episodes with no human in the loop: the
// planner picks every move until no brick of the batch fits anymore.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/domino14/rokudoku/brick"
	"github.com/domino14/rokudoku/game"
	"github.com/domino14/rokudoku/planner"
)

// MovesLogInterval is how often a running episode reports progress.
const MovesLogInterval = 100

// EpisodeResult is how one episode ended.
type EpisodeResult struct {
	Episode      int `yaml:"episode"`
	Score        int `yaml:"score"`
	Moves        int `yaml:"moves"`
	UnitsCleared int `yaml:"units-cleared"`
	Streaks      int `yaml:"streaks"`

	// Truncated is set when the episode hit the move limit.
	Truncated bool `yaml:"truncated,omitempty"`
}

// GameRunner plays episodes one after the other. It is not safe for
// concurrent use; each worker owns one.
type GameRunner struct {
	lib      *brick.Library
	solver   *planner.Solver
	logchan  chan string
	maxMoves int

	state   game.State
	episode int
	turn    int
	result  EpisodeResult
}

// NewGameRunner returns a runner that draws from lib. If logchan is not
// nil, one CSV line per move is sent to it.
func NewGameRunner(logchan chan string, lib *brick.Library) *GameRunner {
	return &GameRunner{
		lib:     lib,
		solver:  planner.NewSolver(),
		logchan: logchan,
	}
}

// SetSolverThreads sets the planner's thread count for every decision.
func (r *GameRunner) SetSolverThreads(threads int) {
	r.solver.SetThreads(threads)
}

// SetMaxMoves stops episodes after n moves; 0 means no limit.
func (r *GameRunner) SetMaxMoves(n int) {
	r.maxMoves = n
}

// StartEpisode resets the runner to an empty board.
func (r *GameRunner) StartEpisode(episode int) {
	r.state = game.NewState()
	r.episode = episode
	r.turn = 0
	r.result = EpisodeResult{Episode: episode}
}

// PlayBestTurn refills the batch if needed and plays the planner's move. It
// returns false without playing when the game is over.
func (r *GameRunner) PlayBestTurn(ctx context.Context, src brick.RandSource) (bool, error) {
	r.state = r.state.Refill(r.lib, src)
	if r.state.IsOver() {
		return false, nil
	}
	bricksLeft := r.state.NumBricks()
	bestMove, err := r.solver.BestMove(ctx, r.state)
	if err != nil {
		return false, err
	}
	var out game.Outcome
	r.state, out = r.state.Apply(bestMove)
	r.turn++

	r.result.Score = r.state.Points()
	r.result.Moves = r.turn
	r.result.UnitsCleared += out.UnitsCleared
	if out.Streak {
		r.result.Streaks++
	}

	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%d,%d,%d,%s,%d,%d,%d,%t,%d\n",
			r.episode,
			r.turn,
			bricksLeft,
			bestMove.ShortDescription(),
			out.Points,
			r.state.Points(),
			out.UnitsCleared,
			out.Streak,
			r.state.Board().FilledCount())
	}
	if r.turn%MovesLogInterval == 0 {
		zerolog.Ctx(ctx).Info().Int("episode", r.episode).Int("points", r.state.Points()).
			Msgf("%d moves done", r.turn)
	}
	return true, nil
}

// PlayEpisode plays a whole episode drawing from src.
func (r *GameRunner) PlayEpisode(ctx context.Context, episode int, src brick.RandSource) (EpisodeResult, error) {
	r.StartEpisode(episode)
	for {
		if err := ctx.Err(); err != nil {
			return r.result, err
		}
		if r.maxMoves > 0 && r.turn >= r.maxMoves {
			r.result.Truncated = true
			break
		}
		played, err := r.PlayBestTurn(ctx, src)
		if err != nil {
			return r.result, err
		}
		if !played {
			break
		}
	}
	zerolog.Ctx(ctx).Debug().Int("episode", episode).Int("score", r.result.Score).
		Int("moves", r.result.Moves).Msg("episode-over")
	return r.result, nil
}
