package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vietdv277/stratus/pkg/types"
)

func TestStateGlyph(t *testing.T) {
	tests := []struct {
		state types.InstanceState
		mono  string
		color string
	}{
		{types.StateRunning, "+ ", "✅"},
		{types.StateStopped, "- ", "❙❙"},
		{types.StateTerminated, "X ", "⚫"},
		{types.StatePending, "O ", "⚪"},
		{types.StateShuttingDown, `\_`, "♺"},
		{types.StateStopping, "~-", "⌛"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.mono, StateGlyph(tt.state, false))
			assert.Equal(t, tt.color, StateGlyph(tt.state, true))
		})
	}
}

func TestStateGlyphUnrecognized(t *testing.T) {
	assert.Equal(t, "??", StateGlyph(types.StateUnknown, false))
	assert.Equal(t, "??", StateGlyph(types.StateUnknown, true))
	assert.Equal(t, "??", StateGlyph(types.InstanceState("rebooting"), false))
	assert.Equal(t, "??", StateGlyph(types.InstanceState("rebooting"), true))
}
