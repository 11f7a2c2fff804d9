// Package command dispatches text commands to the evaluation engine. It
// is the single execution pipeline shared by the TUI REPL and the
// Telegram worker.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/groghall/tavernbot/internal/data"
	"github.com/groghall/tavernbot/internal/engine"
)

// Result holds the output messages of a command execution. An empty
// Result is a valid silent outcome, not an error.
type Result struct {
	Messages []string

	// Emote marks messages presented as third-person actions ("flips a
	// coin and gets heads.") rather than plain replies.
	Emote bool
}

// Executor runs gamebot commands against a shared roller and an optional
// preset table.
type Executor struct {
	roller  *engine.Roller
	presets data.Presets
}

// NewExecutor wires an executor. presets may be nil.
func NewExecutor(roller *engine.Roller, presets data.Presets) *Executor {
	return &Executor{roller: roller, presets: presets}
}

// Presets exposes the preset table for completion.
func (e *Executor) Presets() data.Presets {
	return e.presets
}

// Execute parses one input line and runs the matching command. Errors are
// user-phrased notices; the caller only has to display them.
func (e *Executor) Execute(input string) (*Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return &Result{}, nil
	}

	name, rest, _ := strings.Cut(input, " ")
	name = strings.ToLower(name)
	rest = strings.TrimSpace(rest)

	switch name {
	case "roll", "dice":
		msg, err := e.roller.Roll(rest)
		if err != nil {
			return nil, err
		}
		if msg == "" {
			// Not a dice roll; the shared routing contract is to stay quiet.
			return &Result{}, nil
		}
		return &Result{Messages: []string{msg}}, nil

	case "choose":
		msg, err := e.roller.Choose(rest)
		if errors.Is(err, engine.ErrNoChoices) {
			return &Result{Messages: []string{Usage("choose")}}, nil
		}
		if err != nil {
			return nil, err
		}
		return &Result{Messages: []string{msg}}, nil

	case "coin", "flip":
		msg, err := e.roller.FlipCoins(rest)
		if err != nil {
			return nil, err
		}
		return &Result{Messages: []string{msg}, Emote: true}, nil

	case "help":
		return &Result{Messages: helpMessages(rest)}, nil
	}

	if expr, ok := e.presets[name]; ok {
		msg, err := e.roller.RollParts(expr, name)
		if err != nil {
			return nil, err
		}
		return &Result{Messages: []string{msg}}, nil
	}

	return nil, fmt.Errorf("I wasn't able to understand your command")
}
