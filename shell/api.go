package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/rokudoku/automatic"
	"github.com/domino14/rokudoku/config"
	"github.com/domino14/rokudoku/game"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	seed := sc.config.GetUint64(config.ConfigSeed)
	if len(cmd.args) > 0 {
		var err error
		seed, err = strconv.ParseUint(cmd.args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed should be a non-negative integer: %w", err)
		}
	}
	if seed == 0 {
		sc.src = game.NewRandSource()
	} else {
		sc.src = game.NewSeededRandSource(seed, 0)
	}
	st := game.NewState().Refill(sc.lib, sc.src)
	sc.game = &st
	sc.moveCount = 0
	sc.lastPV = nil
	log.Debug().Uint64("seed", seed).Msg("new-game")
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

// commit applies m, deals a new batch when needed, and reports the result.
func (sc *ShellController) commit(m game.Move) *Response {
	next, out := sc.game.Apply(m)
	next = next.Refill(sc.lib, sc.src)
	sc.game = &next
	sc.moveCount++
	sc.lastPV = nil

	var sb strings.Builder
	fmt.Fprintf(&sb, "played %s for %d points", m.ShortDescription(), out.Points)
	if out.UnitsCleared > 0 {
		fmt.Fprintf(&sb, " (%d cleared", out.UnitsCleared)
		if out.Streak {
			sb.WriteString(", streak")
		}
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	sb.WriteString(sc.game.ToDisplayText())
	if sc.game.IsOver() {
		fmt.Fprintf(&sb, "\ngame over!\n your score: %d (in %d moves)", sc.game.Points(), sc.moveCount)
	}
	return msg(sb.String())
}

func (sc *ShellController) gameOngoing() error {
	if sc.game == nil {
		return errNoGame
	}
	if sc.game.IsOver() {
		return fmt.Errorf("the game is over with %d points; start another with `new`", sc.game.Points())
	}
	return nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if err := sc.gameOngoing(); err != nil {
		return nil, err
	}
	m, err := ParseMove(strings.Join(cmd.args, " "), *sc.game)
	if err != nil {
		return nil, err
	}
	return sc.commit(m), nil
}

func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	if err := sc.gameOngoing(); err != nil {
		return nil, err
	}
	m, err := sc.solver.BestMove(context.Background(), *sc.game)
	if err != nil {
		return nil, err
	}
	return sc.commit(m), nil
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	if err := sc.gameOngoing(); err != nil {
		return nil, err
	}
	if sc.lastPV == nil {
		pv, err := sc.solver.Solve(context.Background(), *sc.game)
		if err != nil {
			return nil, err
		}
		sc.lastPV = &pv
	}
	return msg(fmt.Sprintf("%s(%d nodes, %v)", sc.lastPV.String(), sc.solver.Nodes(),
		sc.solver.Elapsed())), nil
}

func (sc *ShellController) bricks(cmd *shellcmd) (*Response, error) {
	return msg(sc.lib.ToDisplayText()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	opts := automatic.OptionsFromConfig(sc.config)
	var err error
	if opts.Episodes, err = cmd.options.IntDefault("episodes", opts.Episodes); err != nil {
		return nil, err
	}
	if opts.Threads, err = cmd.options.IntDefault("threads", opts.Threads); err != nil {
		return nil, err
	}
	if opts.MaxMoves, err = cmd.options.IntDefault("maxmoves", opts.MaxMoves); err != nil {
		return nil, err
	}
	if s := cmd.options.String("seed"); s != "" {
		if opts.Seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return nil, err
		}
	}
	if f := cmd.options.String("logfile"); f != "" {
		opts.LogFile = f
	}
	if f := cmd.options.String("summary"); f != "" {
		opts.SummaryFile = f
	}
	if w := cmd.options.String("weighting"); w != "" {
		opts.Weighting = w
	}
	sc.showMessage(fmt.Sprintf("playing %d episodes on %d threads...", opts.Episodes, opts.Threads))
	rr, err := automatic.Play(context.Background(), opts)
	if err != nil {
		return nil, err
	}
	return msg(rr.ToDisplayText()), nil
}

func (sc *ShellController) autoAnalyze(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("please provide a filename to analyze")
	}
	analysis, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(analysis), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	}
	return usageTopic(cmd.args[0])
}
