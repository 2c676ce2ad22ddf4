// ABOUTME: Tests for the help line renderer.
// ABOUTME: Checks alias joining, argument placeholders, alignment, and prefixing.

package cmdtree

import (
	"strings"
	"testing"
)

func TestHelpLines_TopLevel(t *testing.T) {
	t.Parallel()
	lines := HelpLines(testTree(), "")

	if len(lines) != 4 {
		t.Fatalf("len(lines) = %d, want 4: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "quit, exit") || !strings.HasSuffix(lines[0], "terminate") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "help, ?") {
		t.Errorf("line 1 = %q", lines[1])
	}

	// Descriptions start at a common column.
	col := strings.Index(lines[0], "terminate")
	if got := strings.Index(lines[2], "print remote"); got != col {
		t.Errorf("description columns differ: %d vs %d", col, got)
	}
}

func TestHelpLines_ArgPlaceholders(t *testing.T) {
	t.Parallel()
	lines := HelpLines(testTree().Find("change"), "change ")

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "change show ID") {
		t.Errorf("required arg placeholder missing: %q", joined)
	}
	if !strings.Contains(joined, "change query [FILTER...]") {
		t.Errorf("optional arg placeholder missing: %q", joined)
	}
}

func TestHelpLines_NoChildren(t *testing.T) {
	t.Parallel()
	if lines := HelpLines(New("leaf"), ""); len(lines) != 0 {
		t.Errorf("lines = %v, want empty", lines)
	}
}
