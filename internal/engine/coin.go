package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coin flip phrases, written in the third person because adapters present
// them as emotes.
const (
	noCoinMessage    = "makes a coin flipping motion"
	singleCoinFormat = "flips a coin and gets %s."
	manyCoinsFormat  = "flips %d coins and gets %d heads and %d tails."
)

// FlipCoins flips the requested number of fair coins and describes the
// outcome. An empty amount means one coin; a non-integer amount yields an
// *InvalidNumberError. At Limit and above the head count is approximated
// as round(n * uniform[0.45, 0.55]) instead of simulating every flip --
// uniform jitter around 50%, deliberately, not a binomial approximation.
func (r *Roller) FlipCoins(text string) (string, error) {
	amount := 1
	text = strings.TrimSpace(text)
	if text != "" {
		parsed, err := strconv.Atoi(text)
		if err != nil {
			return "", &InvalidNumberError{Input: text}
		}
		amount = parsed
	}

	switch {
	case amount == 0:
		return noCoinMessage, nil
	case amount == 1:
		side := "heads"
		if r.src.Intn(2) == 1 {
			side = "tails"
		}
		return fmt.Sprintf(singleCoinFormat, side), nil
	}

	var heads int
	if amount < r.Limit {
		for i := 0; i < amount; i++ {
			heads += r.src.Intn(2)
		}
	} else {
		heads = int(math.Round(float64(amount) * (0.45 + 0.1*r.src.Float64())))
	}

	return fmt.Sprintf(manyCoinsFormat, amount, heads, amount-heads), nil
}
