package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPresets(t *testing.T) {
	path := writePresets(t, "Fireball: 8d6\nsneak: 3d6+2\n")

	presets, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8d6", presets["fireball"])
	assert.Equal(t, "3d6+2", presets["sneak"])
	assert.ElementsMatch(t, []string{"fireball", "sneak"}, presets.Names())
}

func TestLoadRejectsInvalidExpression(t *testing.T) {
	path := writePresets(t, "broken: 2x6\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
