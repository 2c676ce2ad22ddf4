// ABOUTME: Renderer owns the scroll-safe cursor/line primitives the editor draws with.
// ABOUTME: AdvanceLine reads live cursor row and terminal height; raw mode never auto-scrolls.

package render

import (
	"fmt"
	"strings"

	"github.com/mauromedda/ger-go/pkg/shell/terminal"
	"github.com/mauromedda/ger-go/pkg/shell/width"
)

// Renderer writes prompt, suggestion, and message lines to the terminal.
// All multi-line output must route through AdvanceLine: in raw mode a
// plain newline on the bottom row silently drops output off-screen.
type Renderer struct {
	term  terminal.Terminal
	style Style
}

// New returns a Renderer drawing to t with the given session style.
func New(t terminal.Terminal, style Style) *Renderer {
	return &Renderer{term: t, style: style}
}

// Style returns the session style.
func (r *Renderer) Style() Style {
	return r.style
}

// write sends a raw string to the terminal.
func (r *Renderer) write(s string) error {
	if _, err := r.term.Write([]byte(s)); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// AdvanceLine is the scroll-safe newline. Cursor row and terminal height
// are read fresh on every call; when the cursor sits on the last visible
// row the viewport is scrolled up by n and the cursor moved up by n
// before the ordinary move-to-start-of-next-line.
func (r *Renderer) AdvanceLine(n int) error {
	if n <= 0 {
		return nil
	}
	_, row, err := r.term.CursorPos()
	if err != nil {
		return fmt.Errorf("advance line: %w", err)
	}
	_, h, err := r.term.Size()
	if err != nil {
		return fmt.Errorf("advance line: %w", err)
	}
	if row == h-1 {
		if err := r.write(fmt.Sprintf("\x1b[%dS\x1b[%dA", n, n)); err != nil {
			return err
		}
	}
	return r.write(fmt.Sprintf("\x1b[%dE", n))
}

// PrintPrompt redraws the prompt prefix+symbol. If the cursor is not at
// column 0 it first advances to a fresh, cleared line.
func (r *Renderer) PrintPrompt() error {
	col, _, err := r.term.CursorPos()
	if err != nil {
		return fmt.Errorf("print prompt: %w", err)
	}
	if col > 0 {
		if err := r.AdvanceLine(1); err != nil {
			return err
		}
		if err := r.write("\x1b[2K"); err != nil {
			return err
		}
	}
	return r.write(r.style.PromptText())
}

// CursorCol returns the cursor's current zero-based column.
func (r *Renderer) CursorCol() (int, error) {
	col, _, err := r.term.CursorPos()
	if err != nil {
		return 0, fmt.Errorf("cursor column: %w", err)
	}
	return col, nil
}

// PromptWidth returns the column width of the prompt prefix+symbol.
func (r *Renderer) PromptWidth() int {
	return width.Visible(r.style.PromptPlain())
}

// Print echoes text at the cursor.
func (r *Renderer) Print(s string) error {
	return r.write(s)
}

// PrintCandidates writes a horizontal candidate list, entries separated
// by two spaces.
func (r *Renderer) PrintCandidates(words []string) error {
	return r.write(strings.Join(words, "  "))
}

// PrintError writes a highlighted error marker followed by the message.
func (r *Renderer) PrintError(msg string) error {
	return r.write(r.style.ErrorStyle.Render("x") + " " + msg)
}

// PrintHint writes a dim informational message.
func (r *Renderer) PrintHint(msg string) error {
	return r.write(r.style.HintStyle.Render(msg))
}

// ClearLineBelow clears the line under the cursor and returns without
// residual displacement.
func (r *Renderer) ClearLineBelow() error {
	return r.write("\x1b[1B\x1b[2K\x1b[1A")
}

// ClearLine erases the current line and moves to column 0.
func (r *Renderer) ClearLine() error {
	return r.write("\x1b[2K\x1b[1G")
}

// ClearToEnd erases from the cursor to the end of the line.
func (r *Renderer) ClearToEnd() error {
	return r.write("\x1b[K")
}

// MoveLeft moves the cursor n columns left.
func (r *Renderer) MoveLeft(n int) error {
	if n <= 0 {
		return nil
	}
	return r.write(fmt.Sprintf("\x1b[%dD", n))
}

// MoveToColumn moves the cursor to the given zero-based column.
func (r *Renderer) MoveToColumn(col int) error {
	return r.write(fmt.Sprintf("\x1b[%dG", col+1))
}

// MoveToPrevLine moves the cursor up n lines, to column 0.
func (r *Renderer) MoveToPrevLine(n int) error {
	if n <= 0 {
		return nil
	}
	return r.write(fmt.Sprintf("\x1b[%dF", n))
}

// ClearAbove scrolls the viewport by the cursor's current row and moves
// the cursor to the top, clearing everything previously visible above
// the current line. Buffer contents on the line are untouched.
func (r *Renderer) ClearAbove() error {
	_, row, err := r.term.CursorPos()
	if err != nil {
		return fmt.Errorf("clear above: %w", err)
	}
	if row == 0 {
		return nil
	}
	return r.write(fmt.Sprintf("\x1b[%dS\x1b[%dA", row, row))
}

// Println prints text followed by a scroll-safe newline.
func (r *Renderer) Println(s string) error {
	if err := r.write(s); err != nil {
		return err
	}
	return r.AdvanceLine(1)
}
