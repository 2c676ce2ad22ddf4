// ABOUTME: Tests for renderer primitives against the virtual terminal.
// ABOUTME: Verifies AdvanceLine's scroll-at-bottom postcondition and clear-below displacement.

package render

import (
	"strings"
	"testing"

	"github.com/mauromedda/ger-go/pkg/shell/terminal"
)

func newTestRenderer(width, height int) (*Renderer, *terminal.VirtualTerminal) {
	vt := terminal.NewVirtualTerminal(width, height)
	return New(vt, NewStyle("ger", ">")), vt
}

func TestAdvanceLine_MidScreen(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)
	vt.MoveTo(10, 5)

	if err := r.AdvanceLine(1); err != nil {
		t.Fatalf("AdvanceLine() unexpected error: %v", err)
	}

	col, row, _ := vt.CursorPos()
	if row != 6 || col != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 6)", col, row)
	}
	if vt.Scrolls() != 0 {
		t.Errorf("Scrolls() = %d, want 0 (no scroll mid-screen)", vt.Scrolls())
	}
}

func TestAdvanceLine_BottomRowScrolls(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)
	vt.MoveTo(3, 23) // last visible row

	if err := r.AdvanceLine(1); err != nil {
		t.Fatalf("AdvanceLine() unexpected error: %v", err)
	}

	// Postcondition: row' = min(row+1, max) and the viewport scrolled.
	col, row, _ := vt.CursorPos()
	if row != 23 || col != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 23)", col, row)
	}
	if vt.Scrolls() != 1 {
		t.Errorf("Scrolls() = %d, want 1", vt.Scrolls())
	}
}

func TestAdvanceLine_ReadsHeightFresh(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)
	vt.MoveTo(0, 23)

	// Grow the terminal: row 23 is no longer the bottom, so no scroll.
	vt.SetSize(80, 40)

	if err := r.AdvanceLine(1); err != nil {
		t.Fatal(err)
	}
	if vt.Scrolls() != 0 {
		t.Errorf("Scrolls() = %d, want 0 after resize", vt.Scrolls())
	}
	_, row, _ := vt.CursorPos()
	if row != 24 {
		t.Errorf("row = %d, want 24", row)
	}
}

func TestAdvanceLine_ZeroIsNoop(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)
	vt.MoveTo(4, 4)

	if err := r.AdvanceLine(0); err != nil {
		t.Fatal(err)
	}
	col, row, _ := vt.CursorPos()
	if col != 4 || row != 4 {
		t.Errorf("cursor moved on AdvanceLine(0): (%d, %d)", col, row)
	}
}

func TestPrintPrompt_AtColumnZero(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)

	if err := r.PrintPrompt(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(vt.Output(), "ger") || !strings.Contains(vt.Output(), ">") {
		t.Errorf("prompt output missing prefix/symbol: %q", vt.Output())
	}
	col, row, _ := vt.CursorPos()
	if row != 0 || col != r.PromptWidth() {
		t.Errorf("cursor = (%d, %d), want (%d, 0)", col, row, r.PromptWidth())
	}
}

func TestPrintPrompt_MidLineAdvancesFirst(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)
	vt.MoveTo(12, 2)

	if err := r.PrintPrompt(); err != nil {
		t.Fatal(err)
	}
	_, row, _ := vt.CursorPos()
	if row != 3 {
		t.Errorf("row = %d, want 3 (prompt must start on a fresh line)", row)
	}
}

func TestPrintCandidates(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)

	if err := r.PrintCandidates([]string{"remote", "reset"}); err != nil {
		t.Fatal(err)
	}
	if got := vt.Output(); got != "remote  reset" {
		t.Errorf("candidates = %q, want %q", got, "remote  reset")
	}
}

func TestClearLineBelow_NoDisplacement(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)
	vt.MoveTo(8, 5)

	if err := r.ClearLineBelow(); err != nil {
		t.Fatal(err)
	}
	col, row, _ := vt.CursorPos()
	if col != 8 || row != 5 {
		t.Errorf("cursor = (%d, %d), want (8, 5) — no residual displacement", col, row)
	}
}

func TestClearAbove(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)
	vt.MoveTo(4, 10)

	if err := r.ClearAbove(); err != nil {
		t.Fatal(err)
	}
	if vt.Scrolls() != 10 {
		t.Errorf("Scrolls() = %d, want 10", vt.Scrolls())
	}
	col, row, _ := vt.CursorPos()
	if row != 0 || col != 4 {
		t.Errorf("cursor = (%d, %d), want (4, 0)", col, row)
	}
}

func TestClearAbove_TopRowNoop(t *testing.T) {
	t.Parallel()
	r, vt := newTestRenderer(80, 24)
	vt.MoveTo(0, 0)

	if err := r.ClearAbove(); err != nil {
		t.Fatal(err)
	}
	if vt.Scrolls() != 0 {
		t.Errorf("Scrolls() = %d, want 0", vt.Scrolls())
	}
}
