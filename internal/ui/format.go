package ui

import (
	"net/netip"

	"github.com/mattn/go-runewidth"
)

// Placeholders substituted for absent optional fields.
const (
	PlaceholderIP   = "-- dynamic --"
	PlaceholderName = "-- Unnamed --"
)

// Column widths used by the row and detail renderers.
const (
	ipWidth      = 16
	nameWidth    = 24
	nameWidthRow = 40
	typeWidth    = 12
	archWidth    = 6
)

// Pad renders s at exactly width display cells: longer values are cut hard
// with no ellipsis, shorter ones right-padded with spaces. Display width is
// measured with runewidth so wide runes count correctly.
func Pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	// Pad by re-measuring, one space at a time. A value ending in a
	// zero-width prepend rune absorbs the first space into its grapheme
	// cluster, so a single gap-sized Repeat can come up short.
	for runewidth.StringWidth(s) < width {
		s += " "
	}
	return s
}

// PadOr is Pad with a placeholder substituted for empty values.
func PadOr(s string, width int, placeholder string) string {
	if s == "" {
		s = placeholder
	}
	return Pad(s, width)
}

// FormatIP renders an address in the fixed IP column. The zero Addr stands
// for an address that was never allocated and renders as the dynamic
// placeholder.
func FormatIP(addr netip.Addr) string {
	if !addr.IsValid() {
		return Pad(PlaceholderIP, ipWidth)
	}
	return Pad(addr.String(), ipWidth)
}

// FormatName renders an optional instance name at the given width.
func FormatName(name string, width int) string {
	return PadOr(name, width, PlaceholderName)
}
