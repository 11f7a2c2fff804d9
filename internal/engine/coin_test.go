package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipCoinsZero(t *testing.T) {
	got, err := seeded(1).FlipCoins("0")
	require.NoError(t, err)
	assert.Equal(t, noCoinMessage, got)
}

func TestFlipCoinsSingle(t *testing.T) {
	got, err := seeded(2).FlipCoins("1")
	require.NoError(t, err)
	assert.Contains(t, []string{
		"flips a coin and gets heads.",
		"flips a coin and gets tails.",
	}, got)
}

func TestFlipCoinsDefaultsToSingle(t *testing.T) {
	got, err := seeded(3).FlipCoins("")
	require.NoError(t, err)
	assert.Contains(t, got, "flips a coin and gets")
}

func TestFlipCoinsExactSimulation(t *testing.T) {
	got, err := seeded(4).FlipCoins("10")
	require.NoError(t, err)

	var heads, tails int
	_, err = fmt.Sscanf(got, "flips 10 coins and gets %d heads and %d tails.", &heads, &tails)
	require.NoError(t, err)
	assert.Equal(t, 10, heads+tails)
	assert.GreaterOrEqual(t, heads, 0)
	assert.LessOrEqual(t, heads, 10)
}

func TestFlipCoinsApproximation(t *testing.T) {
	got, err := seeded(5).FlipCoins("1000")
	require.NoError(t, err)

	var heads, tails int
	_, err = fmt.Sscanf(got, "flips 1000 coins and gets %d heads and %d tails.", &heads, &tails)
	require.NoError(t, err)

	// Tails is always the exact complement, and the jitter bounds the
	// head count to [450, 550].
	assert.Equal(t, 1000, heads+tails)
	assert.GreaterOrEqual(t, heads, 450)
	assert.LessOrEqual(t, heads, 550)
}

func TestFlipCoinsInvalidNumber(t *testing.T) {
	_, err := seeded(1).FlipCoins("puppies")

	var invalid *InvalidNumberError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "puppies", invalid.Input)
	assert.Equal(t, `Invalid input "puppies": not a number`, err.Error())
}

func TestChoosePicksFromCommaList(t *testing.T) {
	got, err := seeded(6).Choose("red, blue, green")
	require.NoError(t, err)
	assert.Contains(t, []string{"red", "blue", "green"}, got)
}

func TestChooseSplitsOnOr(t *testing.T) {
	got, err := seeded(7).Choose("pizza or pasta")
	require.NoError(t, err)
	assert.Contains(t, []string{"pizza", "pasta"}, got)
}

func TestChooseSingleOption(t *testing.T) {
	_, err := seeded(1).Choose("pizza")
	assert.ErrorIs(t, err, ErrNoChoices)

	_, err = seeded(1).Choose("")
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestChooseCoversAllOptions(t *testing.T) {
	r := NewRollerWithSource(rand.New(rand.NewSource(8)))

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		got, err := r.Choose("a, b, c")
		require.NoError(t, err)
		seen[got] = true
	}
	assert.Len(t, seen, 3)
}
