// ABOUTME: Matcher answers "which vocabulary entries start with this prefix".
// ABOUTME: Sorted-slice implementation using binary search; results are deterministic.

package match

import (
	"sort"
	"strings"
)

// Matcher is the narrow prefix-search capability the editor depends on.
// Implementations must be deterministic for a fixed vocabulary and prefix.
type Matcher interface {
	// Matches returns every vocabulary entry that starts with prefix.
	// The empty prefix matches the entire vocabulary.
	Matches(prefix string) []string
}

// sortedMatcher answers prefix queries with binary search over a sorted
// copy of the vocabulary. Entries sharing a prefix are contiguous after
// sorting, so a match set is a sub-slice scan.
type sortedMatcher struct {
	vocab []string
}

// Build constructs a Matcher over the given vocabulary. The input slice
// is copied; callers may reuse it. A matcher is only valid for the tree
// position whose vocabulary it was built from.
func Build(vocabulary []string) Matcher {
	vocab := make([]string, len(vocabulary))
	copy(vocab, vocabulary)
	sort.Strings(vocab)
	return &sortedMatcher{vocab: vocab}
}

// Matches returns all entries with the given prefix, in sorted order.
func (m *sortedMatcher) Matches(prefix string) []string {
	if prefix == "" {
		out := make([]string, len(m.vocab))
		copy(out, m.vocab)
		return out
	}

	start := sort.SearchStrings(m.vocab, prefix)
	var out []string
	for i := start; i < len(m.vocab) && strings.HasPrefix(m.vocab[i], prefix); i++ {
		out = append(out, m.vocab[i])
	}
	return out
}
