package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// Expression represents a validated dice specification: a signed sum of
// integer constants and NdS dice atoms, e.g. "2d20-d5+4". Only the first
// atom may omit its sign.
type Expression struct {
	Sign  string        `parser:"@Sign?"`
	First *Atom         `parser:"@@"`
	Rest  []*SignedAtom `parser:"@@*"`
}

// SignedAtom is a subsequent atom carrying its mandatory explicit sign.
type SignedAtom struct {
	Sign string `parser:"@Sign"`
	Atom *Atom  `parser:"@@"`
}

// Atom is either a dice macro or a bare integer constant.
type Atom struct {
	Dice   *string `parser:"@Dice"`
	Number *int    `parser:"| @Int"`
}

// RollSpec is one dice atom lowered into numbers: a signed multiplicity and
// a side specification. Count is never zero; an omitted multiplicity is 1
// with the sign of its leading + or -.
type RollSpec struct {
	Count int
	Sides int
	Fudge bool
}

// Term is one signed atom of an expression: exactly one of Constant or
// Dice is set.
type Term struct {
	Constant *int
	Dice     *RollSpec
}

var exprParser = Build()

// Parse validates a whitespace-free dice specification and returns its AST.
func Parse(spec string) (*Expression, error) {
	expr, err := exprParser.ParseString("", spec)
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// SplitLabel separates the dice specification from an optional free-text
// label following the first space. The label is trimmed, never parsed.
func SplitLabel(raw string) (spec, label string) {
	spec, label, found := strings.Cut(raw, " ")
	if !found {
		return raw, ""
	}
	return spec, strings.TrimSpace(label)
}

// Strip removes all whitespace from a dice specification.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// HasDice reports whether any atom of the expression is a dice term. An
// expression of bare constants is valid but is not a dice roll; callers
// treat it as a silent no-op.
func (e *Expression) HasDice() bool {
	if e.First.Dice != nil {
		return true
	}
	for _, sa := range e.Rest {
		if sa.Atom.Dice != nil {
			return true
		}
	}
	return false
}

// Terms lowers the AST into the ordered term sequence consumed by the
// roll evaluator.
func (e *Expression) Terms() []Term {
	terms := make([]Term, 0, 1+len(e.Rest))
	terms = append(terms, lowerAtom(e.Sign, e.First))
	for _, sa := range e.Rest {
		terms = append(terms, lowerAtom(sa.Sign, sa.Atom))
	}
	return terms
}

func lowerAtom(sign string, atom *Atom) Term {
	if atom.Number != nil {
		v := *atom.Number
		if sign == "-" {
			v = -v
		}
		return Term{Constant: &v}
	}

	raw := strings.ToLower(*atom.Dice)
	countStr, sidesStr, _ := strings.Cut(raw, "d")

	count := 1
	if countStr != "" {
		count, _ = strconv.Atoi(countStr)
	}
	if count == 0 {
		count = 1
	}
	if sign == "-" {
		count = -count
	}

	spec := &RollSpec{Count: count}
	if sidesStr == "f" {
		spec.Fudge = true
	} else {
		spec.Sides, _ = strconv.Atoi(sidesStr)
	}
	return Term{Dice: spec}
}
