package shell

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-episodes", "-threads")
	Args    []string // Possible argument values (for non-option arguments)
}

// commandMetadata maps command names to their options and arguments.
var commandMetadata = map[string]CommandMetadata{
	"autoplay": {
		Options: []string{
			"-episodes", "-threads", "-seed", "-maxmoves", "-weighting",
			"-logfile", "-summary",
		},
	},
	"help": {
		Args: []string{"play", "autoplay", "best"},
	},
}

// Common command names for command completion
var commandNames = []string{
	"help", "new", "s", "show", "play", "ai", "best", "bricks", "autoplay",
	"autoanalyze", "exit",
}

var weightingValues = []string{"orientation", "shape"}

// Do implements the readline.AutoComplete interface
// It provides context-aware autocomplete based on what's been typed
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Get the text up to the cursor position
	text := string(line[:pos])

	// Parse the line using shellquote to handle quoted strings properly
	fields, err := shellquote.Split(text)
	if err != nil {
		// If we can't parse, fall back to simple space splitting
		fields = strings.Fields(text)
	}

	// Check if we're in the middle of typing a word or just after a space
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		// Completing a command name
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		// Get the last complete field to check context
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		if lastCompleteField == "-weighting" {
			completions = weightingValues
		}
		if completions == nil && (cmdName == "play" || cmdName == "p") {
			completions = c.brickNumbers(fields, endsWithSpace)
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	// Filter completions based on prefix
	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			suffix := completion[len(prefix):]
			matches = append(matches, []rune(suffix))
		}
	}

	return matches, len(prefix)
}

// brickNumbers suggests the available brick numbers while the first
// argument of `play` is being typed.
func (c *ShellCompleter) brickNumbers(fields []string, endsWithSpace bool) []string {
	if c.sc.game == nil {
		return nil
	}
	typingFirstArg := (len(fields) == 1 && endsWithSpace) || (len(fields) == 2 && !endsWithSpace)
	if !typingFirstArg {
		return nil
	}
	ret := make([]string, c.sc.game.NumBricks())
	for i := range ret {
		ret[i] = strconv.Itoa(i + 1)
	}
	return ret
}
