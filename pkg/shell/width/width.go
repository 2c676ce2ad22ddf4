// ABOUTME: Visible computes the display width of a string for cursor arithmetic.
// ABOUTME: Fast path for pure ASCII; grapheme-aware segmentation otherwise.

package width

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible returns the number of terminal columns s occupies. The editor
// uses it to size cursor moves when erasing echoed input.
func Visible(s string) int {
	if isASCII(s) {
		return len(s)
	}

	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := 0
		for _, r := range g.Runes() {
			w = max(w, runewidth.RuneWidth(r))
		}
		total += w
	}
	return total
}

// isASCII reports whether s contains only printable single-width ASCII.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
