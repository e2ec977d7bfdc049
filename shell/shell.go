// Package shell is the interactive Roku Doku prompt: start a game, place
// bricks by hand, ask the planner for help, or run autoplay batches.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/rokudoku/brick"
	"github.com/domino14/rokudoku/config"
	"github.com/domino14/rokudoku/game"
	"github.com/domino14/rokudoku/planner"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("please start a game first with the `new` command")
	errQuit              = errors.New("sending quit signal")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	execPath   string
	gitVersion string

	lib    *brick.Library
	solver *planner.Solver
	src    brick.RandSource

	game      *game.State
	moveCount int
	lastPV    *planner.PVLine
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	prompt := "rokudoku>"
	sc := &ShellController{
		config:     cfg,
		execPath:   execPath,
		gitVersion: gitVersion,
		lib:        brick.StandardLibrary(cfg.DrawWeighting()),
		solver:     planner.NewSolver(),
	}
	sc.solver.SetThreads(cfg.GetInt(config.ConfigThreads))

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m" + prompt + "\033[0m ",
		HistoryFile:     "/tmp/rokudoku_readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

// newController is a controller with no terminal attached; output goes to
// w.
func newController(cfg *config.Config, w io.Writer) *ShellController {
	sc := &ShellController{
		out:    w,
		config: cfg,
		lib:    brick.StandardLibrary(cfg.DrawWeighting()),
		solver: planner.NewSolver(),
	}
	sc.solver.SetThreads(cfg.GetInt(config.ConfigThreads))
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) Cleanup() {
	log.Debug().Int("moves", sc.moveCount).Msg("shell-cleanup")
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	// handle options

	lastWasOption := false
	lastOption := ""
	for idx := 1; idx < len(fields); idx++ {
		// a lone "-" is a value, e.g. `-logfile -` for stdout
		if strings.HasPrefix(fields[idx], "-") && fields[idx] != "-" {
			// option
			if lastWasOption {
				return nil, errWrongOptionSyntax
			}
			lastWasOption = true
			lastOption = fields[idx][1:]
			continue
		}
		if lastWasOption {
			lastWasOption = false
			options[lastOption] = append(options[lastOption], fields[idx])
		} else {
			args = append(args, fields[idx])
		}
	}
	if lastWasOption {
		// all options are non-boolean, cannot have a naked option.
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{
		cmd:     cmd,
		args:    args,
		options: options,
	}, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		sig <- syscall.SIGINT
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "s", "show":
		return sc.show(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "ai", "aiplay":
		return sc.aiplay(cmd)
	case "best":
		return sc.best(cmd)
	case "bricks":
		return sc.bricks(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "autoanalyze":
		return sc.autoAnalyze(cmd)
	default:
		// a bare move such as `3 d4` is a play
		if len(cmd.args) == 1 && len(cmd.options) == 0 {
			return sc.play(&shellcmd{cmd: "play", args: []string{cmd.cmd, cmd.args[0]}})
		}
		log.Debug().Msgf("command %v not found", cmd.cmd)
		return nil, fmt.Errorf("command %v not found", cmd.cmd)
	}
}

// Execute runs one command line and returns.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line, sig)
	if err != nil {
		if err != errQuit {
			sc.showError(err)
		}
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	if sc.gitVersion != "" {
		sc.showMessage("rokudoku " + sc.gitVersion)
	}
	sc.showMessage("type `help` for a list of commands, or `new` to start a game")

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.standardModeSwitch(line, sig)
		if err == errQuit {
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
