package parser_test

import (
	"testing"

	"github.com/groghall/tavernbot/internal/parser"
)

func TestParseSingleDie(t *testing.T) {
	expr, err := parser.Parse("2d6")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	terms := expr.Terms()
	if len(terms) != 1 {
		t.Fatalf("Expected 1 term, got %d", len(terms))
	}

	spec := terms[0].Dice
	if spec == nil {
		t.Fatal("Expected a dice term, got a constant")
	}
	if spec.Count != 2 || spec.Sides != 6 || spec.Fudge {
		t.Errorf("Unexpected spec: %+v", spec)
	}
}

func TestParseMixedExpression(t *testing.T) {
	expr, err := parser.Parse("2d20-d5+4")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	terms := expr.Terms()
	if len(terms) != 3 {
		t.Fatalf("Expected 3 terms, got %d", len(terms))
	}

	if terms[0].Dice == nil || terms[0].Dice.Count != 2 || terms[0].Dice.Sides != 20 {
		t.Errorf("Unexpected first term: %+v", terms[0].Dice)
	}

	// Bare "d5" with a leading minus is one subtracted die.
	if terms[1].Dice == nil || terms[1].Dice.Count != -1 || terms[1].Dice.Sides != 5 {
		t.Errorf("Unexpected second term: %+v", terms[1].Dice)
	}

	if terms[2].Constant == nil || *terms[2].Constant != 4 {
		t.Errorf("Unexpected third term: %+v", terms[2])
	}
}

func TestParseLeadingSign(t *testing.T) {
	expr, err := parser.Parse("-3d6")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	terms := expr.Terms()
	if terms[0].Dice == nil || terms[0].Dice.Count != -3 {
		t.Errorf("Expected count -3, got %+v", terms[0].Dice)
	}
}

func TestParseFudgeCaseInsensitive(t *testing.T) {
	for _, raw := range []string{"4dF", "4df", "4DF"} {
		expr, err := parser.Parse(raw)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", raw, err)
		}
		spec := expr.Terms()[0].Dice
		if spec == nil || !spec.Fudge || spec.Count != 4 {
			t.Errorf("Unexpected spec for %q: %+v", raw, spec)
		}
	}
}

func TestParseZeroCountDefaultsToOne(t *testing.T) {
	expr, err := parser.Parse("0d6")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if got := expr.Terms()[0].Dice.Count; got != 1 {
		t.Errorf("Expected count 1 for zero multiplicity, got %d", got)
	}
}

func TestParseConstantsOnly(t *testing.T) {
	expr, err := parser.Parse("4+2-1")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if expr.HasDice() {
		t.Error("Expected no dice atoms in a constant expression")
	}
	if len(expr.Terms()) != 3 {
		t.Errorf("Expected 3 terms, got %d", len(expr.Terms()))
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"abc", "", "2d", "d", "+-3", "2d6+", "2x6", "1d6 2"} {
		if _, err := parser.Parse(raw); err == nil {
			t.Errorf("Expected parse error for %q", raw)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		if _, err := parser.Parse("2d6+1"); err != nil {
			t.Fatalf("Pass %d failed: %v", i, err)
		}
		if _, err := parser.Parse("nope"); err == nil {
			t.Fatalf("Pass %d accepted invalid input", i)
		}
	}
}

func TestSplitLabel(t *testing.T) {
	spec, label := parser.SplitLabel("2d20-d5+4 roll 2")
	if spec != "2d20-d5+4" {
		t.Errorf("Unexpected spec: %q", spec)
	}
	if label != "roll 2" {
		t.Errorf("Unexpected label: %q", label)
	}

	spec, label = parser.SplitLabel("3d6")
	if spec != "3d6" || label != "" {
		t.Errorf("Unexpected split: %q / %q", spec, label)
	}
}

func TestStrip(t *testing.T) {
	if got := parser.Strip(" 2d6\t+ 1 "); got != "2d6+1" {
		t.Errorf("Unexpected strip result: %q", got)
	}
}
