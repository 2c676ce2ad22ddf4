// ABOUTME: Word-boundary scan used by word-delete backspace to size the removal span.
// ABOUTME: A maximal run of punctuation/whitespace collapses to a single removal boundary.

package editor

import "unicode"

// isSeparator reports whether r ends a word for word-delete purposes.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// lastWordBoundary returns the byte index where the last maximal run of
// separator characters begins. Word-delete removes everything from that
// index to the end of the string. Consequences of the rule:
//   - no separators at all: the whole string is removed (returns 0)
//   - all separators: the whole string is removed (returns 0)
//   - trailing separator run after a word: only the run is removed,
//     the word before it survives
//   - word after a separator run: the run and the word are removed
func lastWordBoundary(s string) int {
	runes := []rune(s)
	i := len(runes) - 1
	if i < 0 {
		return 0
	}

	// Skip any trailing non-separators: the word to remove.
	for i >= 0 && !isSeparator(runes[i]) {
		i--
	}
	// Skip the separator run preceding it (or ending the string).
	for i >= 0 && isSeparator(runes[i]) {
		i--
	}

	// i sits on the last non-separator before the boundary run.
	return byteIndex(runes, i+1)
}

// byteIndex converts a rune index into a byte offset within the string
// the runes were decoded from.
func byteIndex(runes []rune, runeIdx int) int {
	n := 0
	for _, r := range runes[:runeIdx] {
		n += len(string(r))
	}
	return n
}
