// ABOUTME: Thin wrapper over sahilm/fuzzy for "did you mean" suggestions.
// ABOUTME: Used when a typed token matches no vocabulary entry by prefix.

package fuzzy

import "github.com/sahilm/fuzzy"

// Closest returns the best fuzzy match for pattern among items, or ""
// when nothing matches at all.
func Closest(pattern string, items []string) string {
	results := fuzzy.Find(pattern, items)
	if len(results) == 0 {
		return ""
	}
	return results[0].Str
}
