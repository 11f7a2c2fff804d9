package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandText(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"/roll 2d6", "roll 2d6", true},
		{"/roll@TavernBot 2d6", "roll 2d6", true},
		{"/coin", "coin", true},
		{"/choose red, blue", "choose red, blue", true},
		{"just chatting", "", false},
		{"/", "", false},
		{"/@TavernBot", "", false},
	}

	for _, tt := range tests {
		got, ok := commandText(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
