package engine

import "strings"

// Choose picks one option uniformly at random. Options are separated by
// commas, or by the literal word "or" when no comma is present. A single
// unsplittable option yields ErrNoChoices.
func (r *Roller) Choose(text string) (string, error) {
	var choices []string
	for _, part := range strings.Split(strings.TrimSpace(text), ",") {
		if part != "" {
			choices = append(choices, part)
		}
	}

	if len(choices) == 1 {
		choices = strings.Split(choices[0], " or ")
	}
	if len(choices) <= 1 {
		return "", ErrNoChoices
	}

	return strings.TrimSpace(choices[r.src.Intn(len(choices))]), nil
}
