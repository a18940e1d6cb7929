package ui

import "github.com/vietdv277/stratus/pkg/types"

// State glyphs, two display cells each. Plain terminals get ASCII tokens,
// color-capable ones get the emoji set.
var monoGlyphs = map[types.InstanceState]string{
	types.StateRunning:      "+ ",
	types.StateStopped:      "- ",
	types.StateTerminated:   "X ",
	types.StatePending:      "O ",
	types.StateShuttingDown: `\_`,
	types.StateStopping:     "~-",
}

var colorGlyphs = map[types.InstanceState]string{
	types.StateRunning:      "✅",
	types.StateStopped:      "❙❙",
	types.StateTerminated:   "⚫",
	types.StatePending:      "⚪",
	types.StateShuttingDown: "♺",
	types.StateStopping:     "⌛",
}

// StateGlyph returns the display token for a lifecycle state. Unrecognized
// states render as "??" in both modes.
func StateGlyph(state types.InstanceState, colored bool) string {
	table := monoGlyphs
	if colored {
		table = colorGlyphs
	}
	if g, ok := table[state]; ok {
		return g
	}
	return "??"
}
