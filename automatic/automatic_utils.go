package automatic

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/domino14/rokudoku/brick"
	"github.com/domino14/rokudoku/config"
	"github.com/domino14/rokudoku/game"
	"github.com/domino14/rokudoku/stats"
)

// ProgressLogInterval is how many finished episodes pass between running
// score reports.
const ProgressLogInterval = 10

const TurnLogHeader = "episode,turn,bricks,play,score,totalscore,units,streak,filled\n"

var (
	EpisodeCounter *expvar.Int
	IsPlaying      *expvar.Int
)

var ErrAlreadyPlaying = errors.New("episodes are already being played, please wait till complete")

var playing atomic.Bool

// StdoutPath as a turn log path writes the log to standard output.
const StdoutPath = "-"

var turnLogStdout io.Writer = os.Stdout

func init() {
	EpisodeCounter = expvar.NewInt("episodeCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// RunOptions configure an autoplay run.
type RunOptions struct {
	Episodes      int    `yaml:"episodes"`
	Threads       int    `yaml:"threads"`
	SolverThreads int    `yaml:"solver-threads"`
	MaxMoves      int    `yaml:"max-moves"`
	Seed          uint64 `yaml:"seed"`
	Weighting     string `yaml:"draw-weighting"`
	LogFile       string `yaml:"-"`
	SummaryFile   string `yaml:"-"`
}

// OptionsFromConfig reads the autoplay settings from cfg.
func OptionsFromConfig(cfg *config.Config) RunOptions {
	return RunOptions{
		Episodes:      cfg.GetInt(config.ConfigEpisodes),
		Threads:       cfg.GetInt(config.ConfigAutoplayThreads),
		SolverThreads: cfg.GetInt(config.ConfigThreads),
		MaxMoves:      cfg.GetInt(config.ConfigMaxMoves),
		Seed:          cfg.GetUint64(config.ConfigSeed),
		Weighting:     cfg.DrawWeighting().String(),
		LogFile:       cfg.GetString(config.ConfigAutoplayLog),
		SummaryFile:   cfg.GetString(config.ConfigAutoplaySummary),
	}
}

// RunResult is the outcome of a run. Episodes are in episode order whatever
// order they finished in.
type RunResult struct {
	Options  RunOptions      `yaml:"options"`
	Summary  stats.Summary   `yaml:"summary"`
	Elapsed  time.Duration   `yaml:"elapsed"`
	Episodes []EpisodeResult `yaml:"episodes"`
}

// Scores lists the final score of every episode.
func (rr *RunResult) Scores() []int {
	return lo.Map(rr.Episodes, func(e EpisodeResult, _ int) int { return e.Score })
}

// openTurnLog opens the turn log at path. The returned close function
// leaves stdout open.
func openTurnLog(path string) (io.Writer, func() error, error) {
	if path == StdoutPath {
		return turnLogStdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// randSourceFor gives episode i its own source. With a seed, the draws of
// an episode depend only on the seed and i, not on which worker plays it.
func randSourceFor(seed uint64, i int) brick.RandSource {
	if seed == 0 {
		return game.NewRandSource()
	}
	return game.NewSeededRandSource(seed, uint64(i))
}

// Play runs opts.Episodes episodes on opts.Threads workers and blocks until
// they are all done or ctx is cancelled. Only one run may be in progress at
// a time.
func Play(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if !playing.CompareAndSwap(false, true) {
		return nil, ErrAlreadyPlaying
	}
	defer playing.Store(false)

	logger := zerolog.Ctx(ctx)
	weighting, err := brick.WeightingFromString(opts.Weighting)
	if err != nil {
		return nil, err
	}
	if opts.Episodes < 1 {
		return nil, fmt.Errorf("cannot play %d episodes", opts.Episodes)
	}
	threads := max(1, min(opts.Threads, opts.Episodes))
	lib := brick.StandardLibrary(weighting)
	logger.Debug().Msgf("Starting %v episodes, %v threads", opts.Episodes, threads)

	var logChan chan string
	var logDone chan error
	if opts.LogFile != "" {
		logfile, closeLog, err := openTurnLog(opts.LogFile)
		if err != nil {
			return nil, err
		}
		logChan = make(chan string, 100)
		logDone = make(chan error, 1)
		go func() {
			defer closeLog()
			_, err := io.WriteString(logfile, TurnLogHeader)
			for msg := range logChan {
				if err == nil {
					_, err = io.WriteString(logfile, msg)
				}
			}
			logDone <- err
		}()
	}

	tstart := time.Now()
	EpisodeCounter.Set(0)
	results := make([]EpisodeResult, opts.Episodes)
	running := &stats.Running{}
	jobs := make(chan int, 100)
	g, gctx := errgroup.WithContext(ctx)

	for range threads {
		g.Go(func() error {
			r := NewGameRunner(logChan, lib)
			r.SetSolverThreads(opts.SolverThreads)
			r.SetMaxMoves(opts.MaxMoves)
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for i := range jobs {
				res, err := r.PlayEpisode(gctx, i, randSourceFor(opts.Seed, i))
				if err != nil {
					return err
				}
				results[i] = res
				EpisodeCounter.Add(1)
				if n := running.Add(res.Score); n%ProgressLogInterval == 0 {
					sofar := running.Snapshot()
					logger.Info().Int("episodes", n).Float64("mean", sofar.Mean).
						Float64("ci95", sofar.CIHalfWidth).Msg("autoplay-progress")
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := range opts.Episodes {
			select {
			case jobs <- i:
			case <-gctx.Done():
				logger.Info().Msg("got stop signal, exiting soon...")
				return gctx.Err()
			}
		}
		logger.Debug().Msg("finished-queueing-episodes")
		return nil
	})

	err = g.Wait()
	if logChan != nil {
		close(logChan)
		if lerr := <-logDone; lerr != nil && err == nil {
			err = fmt.Errorf("writing turn log: %w", lerr)
		}
	}
	if err != nil {
		return nil, err
	}

	rr := &RunResult{
		Options:  opts,
		Episodes: results,
		Elapsed:  time.Since(tstart),
	}
	rr.Summary = stats.Summarize(rr.Scores())
	log.Info().
		Int("episodes", rr.Summary.Episodes).
		Int("min", rr.Summary.Min).
		Int("max", rr.Summary.Max).
		Int("avg", rr.Summary.Avg).
		Float64("time-elapsed-sec", rr.Elapsed.Seconds()).
		Msg("autoplay-finished")

	if opts.SummaryFile != "" {
		if err := rr.WriteSummary(opts.SummaryFile); err != nil {
			return rr, err
		}
	}
	return rr, nil
}

// WriteSummary saves rr as YAML.
func (rr *RunResult) WriteSummary(path string) error {
	bts, err := yaml.Marshal(rr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bts, 0o644)
}

// ToDisplayText lists every final score and the summary, the way a run is
// reported to a player.
func (rr *RunResult) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "scores: %v\n", rr.Scores())
	fmt.Fprintf(&sb, "moves: %v\n", lo.Map(rr.Episodes, func(e EpisodeResult, _ int) int { return e.Moves }))
	sb.WriteString(rr.Summary.String())
	sb.WriteString("\n")
	if err := stats.FprintHistogram(&sb, rr.Scores()); err != nil {
		log.Err(err).Msg("histogram")
	}
	return sb.String()
}
