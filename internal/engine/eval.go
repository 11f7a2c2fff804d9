package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/groghall/tavernbot/internal/parser"
)

// Outcome is the final artifact of a dice-expression evaluation: the grand
// total, the ordered per-die display tokens across all terms, and the
// optional caller-supplied label.
type Outcome struct {
	Total  int
	Tokens []string
	Label  string

	// Silent marks a valid expression containing no dice term at all.
	// Callers produce no output for it; the shared entry point also
	// routes non-dice expressions and they must pass through quietly.
	Silent bool
}

// Format renders the outcome as "<total> (<tok1>, <tok2>, ...)", prefixed
// with the label when one was supplied.
func (o Outcome) Format() string {
	body := fmt.Sprintf("%d (%s)", o.Total, strings.Join(o.Tokens, ", "))
	if o.Label != "" {
		return o.Label + ": " + body
	}
	return body
}

// Roll evaluates raw dice notation ("2d20-d5+4 goblin ambush") and returns
// the display string. An empty result with a nil error means the input was
// not a dice roll; a *parser.InvalidExpressionError means it was malformed.
func (r *Roller) Roll(raw string) (string, error) {
	out, err := r.Evaluate(raw)
	if errors.Is(err, errOverflow) {
		return OverflowMessage, nil
	}
	if err != nil {
		return "", err
	}
	if out.Silent {
		return "", nil
	}
	return out.Format(), nil
}

// RollParts is Roll for callers that already hold a pre-split
// (specification, label) pair, such as preset lookups.
func (r *Roller) RollParts(spec, label string) (string, error) {
	out, err := r.EvaluateParts(spec, label)
	if errors.Is(err, errOverflow) {
		return OverflowMessage, nil
	}
	if err != nil {
		return "", err
	}
	if out.Silent {
		return "", nil
	}
	return out.Format(), nil
}

// Evaluate parses and rolls raw dice notation, splitting an optional
// free-text label from the specification at the first space.
func (r *Roller) Evaluate(raw string) (Outcome, error) {
	raw = strings.TrimSpace(raw)
	spec, label := parser.SplitLabel(raw)
	return r.evaluate(spec, label, raw)
}

// EvaluateParts is Evaluate for callers that already hold a pre-split
// (specification, label) pair.
func (r *Roller) EvaluateParts(spec, label string) (Outcome, error) {
	return r.evaluate(spec, label, spec)
}

func (r *Roller) evaluate(spec, label, display string) (Outcome, error) {
	expr, err := parser.Parse(parser.Strip(spec))
	if err != nil {
		return Outcome{}, &parser.InvalidExpressionError{Input: display}
	}
	if !expr.HasDice() {
		return Outcome{Silent: true}, nil
	}

	out := Outcome{Label: label}
	for _, term := range expr.Terms() {
		if term.Constant != nil {
			out.Total += *term.Constant
			continue
		}

		count, negative := term.Dice.Count, false
		if count < 0 {
			count, negative = -count, true
		}

		values, err := r.rolls(count, term.Dice.Sides, term.Dice.Fudge)
		if err != nil {
			return Outcome{}, err
		}

		for _, v := range values {
			switch {
			case term.Dice.Fudge:
				out.Tokens = append(out.Tokens, fudgeToken(v))
			case negative:
				out.Tokens = append(out.Tokens, strconv.Itoa(-v))
			default:
				out.Tokens = append(out.Tokens, strconv.Itoa(v))
			}
			if negative {
				out.Total -= v
			} else {
				out.Total += v
			}
		}
	}

	return out, nil
}

// fudgeToken renders a fudge outcome: +1 and -1 as colored glyphs and
// anything else, including an approximated aggregate, as "0".
func fudgeToken(v int) string {
	switch v {
	case 1:
		return fudgePlusGlyph
	case -1:
		return fudgeMinusGlyph
	default:
		return "0"
	}
}
