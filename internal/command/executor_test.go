package command

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groghall/tavernbot/internal/data"
	"github.com/groghall/tavernbot/internal/engine"
)

func newExecutor(seed int64, presets data.Presets) *Executor {
	roller := engine.NewRollerWithSource(rand.New(rand.NewSource(seed)))
	return NewExecutor(roller, presets)
}

func TestExecuteRoll(t *testing.T) {
	res, err := newExecutor(1, nil).Execute("roll 2d6")
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Regexp(t, `^\d+ \(\d, \d\)$`, res.Messages[0])
}

func TestExecuteRollWithLabel(t *testing.T) {
	res, err := newExecutor(1, nil).Execute("roll d20 initiative")
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.True(t, strings.HasPrefix(res.Messages[0], "initiative: "))
}

func TestExecuteRollInvalid(t *testing.T) {
	_, err := newExecutor(1, nil).Execute("roll abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestExecuteRollNonDiceStaysQuiet(t *testing.T) {
	res, err := newExecutor(1, nil).Execute("roll 42")
	require.NoError(t, err)
	assert.Empty(t, res.Messages)
}

func TestExecuteChoose(t *testing.T) {
	res, err := newExecutor(2, nil).Execute("choose red, blue, green")
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Contains(t, []string{"red", "blue", "green"}, res.Messages[0])
}

func TestExecuteChooseSingleShowsUsage(t *testing.T) {
	res, err := newExecutor(2, nil).Execute("choose pizza")
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0], "choose <choice1>")
}

func TestExecuteCoinIsEmote(t *testing.T) {
	res, err := newExecutor(3, nil).Execute("coin 0")
	require.NoError(t, err)
	assert.True(t, res.Emote)
	assert.Equal(t, []string{"makes a coin flipping motion"}, res.Messages)
}

func TestExecuteCoinInvalid(t *testing.T) {
	_, err := newExecutor(3, nil).Execute("flip seven")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestExecutePreset(t *testing.T) {
	presets := data.Presets{"fireball": "8d6"}

	res, err := newExecutor(4, presets).Execute("fireball")
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.True(t, strings.HasPrefix(res.Messages[0], "fireball: "))
}

func TestExecuteUnknownCommand(t *testing.T) {
	_, err := newExecutor(1, nil).Execute("summon demon")
	assert.Error(t, err)
}

func TestExecuteHelp(t *testing.T) {
	res, err := newExecutor(1, nil).Execute("help coin")
	require.NoError(t, err)
	assert.Contains(t, res.Messages[0], "flips [amount] coins")

	res, err = newExecutor(1, nil).Execute("help")
	require.NoError(t, err)
	assert.Contains(t, res.Messages[0], "Available commands")
}

func TestExecuteEmptyInput(t *testing.T) {
	res, err := newExecutor(1, nil).Execute("   ")
	require.NoError(t, err)
	assert.Empty(t, res.Messages)
}
