// Package data loads the optional roll-preset file: a flat YAML map of
// preset name to dice expression, e.g. "fireball: 8d6".
package data

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/groghall/tavernbot/internal/parser"
)

// Presets maps lowercase preset names to their dice expressions.
type Presets map[string]string

// Load reads and validates a preset file. Every expression must pass the
// dice grammar; names are folded to lowercase for lookup.
func Load(path string) (Presets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw map[string]string
	if err := yaml.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse preset file %s: %w", path, err)
	}

	presets := make(Presets, len(raw))
	for name, expr := range raw {
		if _, err := parser.Parse(parser.Strip(expr)); err != nil {
			return nil, fmt.Errorf("preset %q: invalid dice expression %q", name, expr)
		}
		presets[strings.ToLower(name)] = expr
	}
	return presets, nil
}

// Names returns the preset names for completion, in no particular order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	return names
}
