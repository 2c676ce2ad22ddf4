// ABOUTME: Tests for command tree construction, vocabulary flattening, and child lookup.
// ABOUTME: Table-driven over a small tree resembling the shell's real one.

package cmdtree

import (
	"reflect"
	"testing"
)

func testTree() *Node {
	return New("ger").AddChildren(
		New("quit", "exit").WithDescription("terminate"),
		New("help", "?").WithDescription("list commands"),
		New("remote").WithDescription("print remote"),
		New("change").WithDescription("change commands").AddChildren(
			New("show").WithArg(&ArgSpec{Name: "ID", Required: true}),
			New("query").WithArg(&ArgSpec{Name: "FILTER", Values: []string{"is:open", "owner:self"}}),
		),
	)
}

func TestWords(t *testing.T) {
	t.Parallel()
	tree := testTree()

	got := tree.Words()
	want := []string{"quit", "exit", "help", "?", "remote", "change"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}

	// Rebuilt per call, never aliased.
	got[0] = "mutated"
	if tree.Words()[0] != "quit" {
		t.Error("Words() must return a fresh slice on every call")
	}
}

func TestFind(t *testing.T) {
	t.Parallel()
	tree := testTree()

	tests := []struct {
		name string
		word string
		want string // expected node name, "" for nil
	}{
		{name: "by name", word: "change", want: "change"},
		{name: "by alias", word: "exit", want: "quit"},
		{name: "question mark alias", word: "?", want: "help"},
		{name: "unknown", word: "nope", want: ""},
		{name: "prefix is not a match", word: "cha", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tree.Find(tt.word)
			if tt.want == "" {
				if got != nil {
					t.Errorf("Find(%q) = %v, want nil", tt.word, got.Name)
				}
				return
			}
			if got == nil || got.Name != tt.want {
				t.Errorf("Find(%q) = %v, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestArgSpec(t *testing.T) {
	t.Parallel()
	tree := testTree()

	show := tree.Find("change").Find("show")
	if show.Arg == nil || !show.Arg.Required {
		t.Fatal("show must carry a required argument slot")
	}
	if len(show.Arg.Values) != 0 {
		t.Error("show's argument is free-form, not enumerated")
	}

	query := tree.Find("change").Find("query")
	if query.Arg == nil || query.Arg.Required {
		t.Fatal("query must carry an optional argument slot")
	}
	if len(query.Arg.Values) != 2 {
		t.Errorf("query enumerated values = %v", query.Arg.Values)
	}
}
