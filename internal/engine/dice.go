package engine

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// DefaultRollLimit is the roll count at which the evaluators stop
// simulating individual dice and approximate the sum instead. It is a
// policy value, not a derived constant; tests raise Roller.Limit to force
// exact simulation at any count.
const DefaultRollLimit = 100

// Pregenerated mean and variance for fudge dice, the exact moments of the
// discrete uniform over {-1, 0, +1}.
const (
	fudgeMean     = 0
	fudgeVariance = 0.6667
)

// OverflowMessage is returned verbatim as the visible result when a
// normal sample overflows the float range. Nobody has ever seen it
// happen; if you make it happen, you win a cookie.
const OverflowMessage = "Thanks for overflowing a float, jerk >:["

var (
	fudgePlusGlyph  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("+")
	fudgeMinusGlyph = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("-")
)

// Roller evaluates dice expressions, coin flips, and choice picks against
// an injected randomness source. It holds no state between evaluations.
type Roller struct {
	src Source

	// Limit is the simulate/approximate threshold, DefaultRollLimit
	// unless overridden.
	Limit int
}

// NewRoller returns a Roller backed by the shared process-wide generator.
func NewRoller() *Roller {
	return NewRollerWithSource(globalSource{})
}

// NewRollerWithSource returns a Roller drawing entropy from src, for
// deterministic seeding in tests.
func NewRollerWithSource(src Source) *Roller {
	return &Roller{src: src, Limit: DefaultRollLimit}
}

// rolls produces the outcomes for count dice, simulating each die below
// the limit and approximating the whole sum above it. The approximate
// result is a single aggregate value, not one per die.
func (r *Roller) rolls(count, sides int, fudge bool) ([]int, error) {
	if count < r.Limit {
		return r.simulate(count, sides, fudge), nil
	}
	return r.approximate(count, sides, fudge)
}

// simulate draws count independent uniform samples, from [1, sides] for
// ordinary dice or {-1, 0, +1} for fudge dice.
func (r *Roller) simulate(count, sides int, fudge bool) []int {
	lower, upper := 1, sides
	if fudge {
		lower, upper = -1, 1
	}

	values := make([]int, 0, count)
	for i := 0; i < count; i++ {
		values = append(values, randRange(r.src, lower, upper))
	}
	return values
}

// approximate draws one sample from the normal distribution that the sum
// of count dice converges to, per the central limit theorem. Simulating
// millions of dice one at a time buys nothing statistically; this trades
// the per-die breakdown for bounded latency.
func (r *Roller) approximate(count, sides int, fudge bool) ([]int, error) {
	var mid, variance float64
	if fudge {
		mid = fudgeMean
		variance = fudgeVariance
	} else {
		mid = midpoint(sides, count)
		variance = dieVariance(sides)
	}

	sigma := round4(math.Sqrt(variance * float64(count)))
	sample := mid + sigma*r.src.NormFloat64()
	if math.IsInf(sample, 0) || math.IsNaN(sample) {
		return nil, errOverflow
	}

	return []int{int(math.Round(sample))}, nil
}

// midpoint is the expected sum of count rolls of an n-sided die.
func midpoint(sides, count int) float64 {
	return 0.5 * float64(sides+1) * float64(count)
}

// dieVariance is the variance of a single n-sided die.
func dieVariance(sides int) float64 {
	return round4(float64(sides*sides-1) / 12)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
