package engine

import "math/rand"

// Source is the randomness provider for the evaluators. Implementations
// must be safe for concurrent use; *rand.Rand satisfies the interface for
// deterministic single-goroutine tests.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
	// NormFloat64 returns a standard-normal random float.
	NormFloat64() float64
}

// globalSource delegates to the lock-protected top-level math/rand
// generator, so concurrent evaluations never perturb each other.
type globalSource struct{}

func (globalSource) Intn(n int) int       { return rand.Intn(n) }
func (globalSource) Float64() float64     { return rand.Float64() }
func (globalSource) NormFloat64() float64 { return rand.NormFloat64() }

// randRange returns a uniform integer in [lower, upper], sorting the
// bounds first so degenerate dice (sides < 1) stay well defined.
func randRange(src Source, lower, upper int) int {
	if lower > upper {
		lower, upper = upper, lower
	}
	return lower + src.Intn(upper-lower+1)
}
