// ABOUTME: Unit tests for token splitting, tree resolution, and the word-delete boundary scan.
// ABOUTME: Exercises splice offsets, argument slots, and separator-run edge cases directly.

package editor

import (
	"reflect"
	"testing"

	"github.com/mauromedda/ger-go/pkg/shell/cmdtree"
)

func TestSplitTokens(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []token
	}{
		{
			name:  "single word",
			input: "help",
			want:  []token{{text: "help", start: 0, terminated: false}},
		},
		{
			name:  "terminated word",
			input: "help ",
			want:  []token{{text: "help", start: 0, terminated: true}},
		},
		{
			name:  "two words",
			input: "change query",
			want: []token{
				{text: "change", start: 0, terminated: true},
				{text: "query", start: 7, terminated: false},
			},
		},
		{
			name:  "extra whitespace",
			input: "  a   b ",
			want: []token{
				{text: "a", start: 2, terminated: true},
				{text: "b", start: 6, terminated: true},
			},
		},
		{name: "only spaces", input: "   ", want: nil},
		{name: "empty", input: "", want: nil},
		{
			// "à" is C3 A0; byte-wise scanning mistakes A0 for NBSP
			// and splits the rune in half.
			name:  "multi-byte rune stays whole",
			input: "à b",
			want: []token{
				{text: "à", start: 0, terminated: true},
				{text: "b", start: 3, terminated: false},
			},
		},
		{
			name:  "non-breaking space separates",
			input: "a b",
			want: []token{
				{text: "a", start: 0, terminated: true},
				{text: "b", start: 3, terminated: false},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := splitTokens(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitTokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	tree := testTree()

	tests := []struct {
		name       string
		input      string
		status     resolveStatus
		tokens     []string
		buffer     string
		badToken   string
		candidates []string
	}{
		{
			name:   "unique prefix splices suffix",
			input:  "h",
			status: resolveOK,
			tokens: []string{"help"},
			buffer: "help",
		},
		{
			name:   "exact word untouched",
			input:  "quit",
			status: resolveOK,
			tokens: []string{"quit"},
			buffer: "quit",
		},
		{
			name:   "nested completion both levels",
			input:  "ch qu",
			status: resolveOK,
			tokens: []string{"change", "query"},
			buffer: "change query",
		},
		{
			name:     "no match",
			input:    "zzz",
			status:   resolveInvalid,
			badToken: "zzz",
		},
		{
			name:       "ambiguous unterminated",
			input:      "re",
			status:     resolveSuggest,
			candidates: []string{"remote", "reset"},
		},
		{
			name:     "ambiguous terminated",
			input:    "re ",
			status:   resolveInvalid,
			badToken: "re",
		},
		{
			name:   "free-form arg consumed verbatim",
			input:  "change show 1234",
			status: resolveOK,
			tokens: []string{"change", "show", "1234"},
			buffer: "change show 1234",
		},
		{
			name:   "enumerated arg completes",
			input:  "change query is:w",
			status: resolveOK,
			tokens: []string{"change", "query", "is:wip"},
			buffer: "change query is:wip",
		},
		{
			name:     "enumerated arg rejects stranger",
			input:    "change query branch:dev",
			status:   resolveInvalid,
			badToken: "branch:dev",
		},
		{
			name:   "alias matches",
			input:  "?",
			status: resolveOK,
			tokens: []string{"?"},
			buffer: "?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := resolve(tree, tt.input)
			if res.status != tt.status {
				t.Fatalf("status = %v, want %v", res.status, tt.status)
			}
			switch tt.status {
			case resolveOK:
				if !reflect.DeepEqual(res.tokens, tt.tokens) {
					t.Errorf("tokens = %v, want %v", res.tokens, tt.tokens)
				}
				if res.buffer != tt.buffer {
					t.Errorf("buffer = %q, want %q", res.buffer, tt.buffer)
				}
			case resolveInvalid:
				if res.badToken != tt.badToken {
					t.Errorf("badToken = %q, want %q", res.badToken, tt.badToken)
				}
			case resolveSuggest:
				if !reflect.DeepEqual(res.candidates, tt.candidates) {
					t.Errorf("candidates = %v, want %v", res.candidates, tt.candidates)
				}
			}
		})
	}
}

func TestResolve_SpliceOffsets(t *testing.T) {
	t.Parallel()
	// Two completions in one pass: the second splice must account for
	// bytes inserted by the first.
	tree := cmdtree.New("root").AddChildren(
		cmdtree.New("alpha").AddChildren(cmdtree.New("bravo")),
	)
	res := resolve(tree, "a b")
	if res.status != resolveOK {
		t.Fatalf("status = %v, want resolveOK", res.status)
	}
	if res.buffer != "alpha bravo" {
		t.Errorf("buffer = %q, want \"alpha bravo\"", res.buffer)
	}
}

func TestNextVocabulary(t *testing.T) {
	t.Parallel()
	tree := testTree()

	if got := nextVocabulary(resolve(tree, "change ")); !reflect.DeepEqual(got, []string{"show", "query"}) {
		t.Errorf("children vocabulary = %v", got)
	}
	if got := nextVocabulary(resolve(tree, "change query ")); !reflect.DeepEqual(got, []string{"is:open", "is:wip", "owner:self"}) {
		t.Errorf("enumerated vocabulary = %v", got)
	}
	if got := nextVocabulary(resolve(tree, "change show ")); !reflect.DeepEqual(got, []string{"<ID>"}) {
		t.Errorf("placeholder vocabulary = %v", got)
	}
}

func TestExpectsMore(t *testing.T) {
	t.Parallel()
	tree := testTree()

	if !expectsMore(resolve(tree, "change ")) {
		t.Error("node with children should expect more")
	}
	if !expectsMore(resolve(tree, "change show ")) {
		t.Error("unconsumed argument slot should expect more")
	}
	if expectsMore(resolve(tree, "change show 42 ")) {
		t.Error("consumed argument slot should not expect more")
	}
	if expectsMore(resolve(tree, "help ")) {
		t.Error("leaf should not expect more")
	}
}

func TestLastWordBoundary(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  int
	}{
		{"show ", 4},     // trailing separator run only
		{"change qu", 6}, // run plus trailing word
		{"abc", 0},       // no separators at all
		{"   ", 0},       // all separators
		{"a  ", 1},
		{"a-b", 1},  // punctuation counts as separator
		{"a--", 1},  // maximal run collapses
		{"", 0},     // empty buffer
		{"héllo wörld", 6},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := lastWordBoundary(tt.input); got != tt.want {
				t.Errorf("lastWordBoundary(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
