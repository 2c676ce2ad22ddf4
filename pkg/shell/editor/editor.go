// ABOUTME: LineEditor: the key-event state machine behind the shell prompt.
// ABOUTME: Owns the input buffer, walks the command tree as the user types, drives renderer and history.

package editor

import (
	"strings"

	"github.com/mauromedda/ger-go/pkg/shell/cmdtree"
	"github.com/mauromedda/ger-go/pkg/shell/fuzzy"
	"github.com/mauromedda/ger-go/pkg/shell/history"
	"github.com/mauromedda/ger-go/pkg/shell/input"
	"github.com/mauromedda/ger-go/pkg/shell/key"
	"github.com/mauromedda/ger-go/pkg/shell/render"
	"github.com/mauromedda/ger-go/pkg/shell/terminal"
	"github.com/mauromedda/ger-go/pkg/shell/width"
)

// ExitToken is the sentinel the editor resolves to on Ctrl+D.
const ExitToken = "exit"

// Editor reads key events and produces resolved token sequences.
// One Editor serves the whole process; per-prompt state (buffer, scroll
// cursor, snapshot) lives inside each Prompt call.
type Editor struct {
	rend *render.Renderer
	hist *history.Store
	keys *input.Reader
}

// New returns an Editor reading keys from t and drawing through r.
// The history store is shared by reference across prompts.
func New(t terminal.Terminal, r *render.Renderer, h *history.Store) *Editor {
	return &Editor{
		rend: r,
		hist: h,
		keys: input.NewReader(t),
	}
}

// prompt bundles the state of one Prompt invocation.
type promptState struct {
	buffer     string
	cursor     *history.Cursor
	snapshot   *string // in-progress edit saved on first ArrowUp
	suggestion bool    // a candidate line is displayed below the cursor
}

// Prompt displays the prompt and edits one line against the command
// tree, returning the resolved tokens. Terminal I/O failures are fatal
// and returned to the caller.
func (e *Editor) Prompt(tree *cmdtree.Node) ([]string, error) {
	st := &promptState{cursor: e.hist.NewCursor()}

	if err := e.rend.PrintPrompt(); err != nil {
		return nil, err
	}

	for {
		k, err := e.keys.Next()
		if err != nil {
			return nil, err
		}

		switch k.Type {
		case key.KeyRune:
			st.buffer += string(k.Rune)
			if err := e.rend.Print(string(k.Rune)); err != nil {
				return nil, err
			}

		case key.KeyBackspace:
			if err := e.backspace(st, k.Alt); err != nil {
				return nil, err
			}

		case key.KeyTab:
			if err := e.complete(st, tree); err != nil {
				return nil, err
			}

		case key.KeyEnter:
			tokens, done, err := e.accept(st, tree)
			if err != nil {
				return nil, err
			}
			if done {
				return tokens, nil
			}

		case key.KeyUp:
			if err := e.historyUp(st); err != nil {
				return nil, err
			}

		case key.KeyDown:
			if err := e.historyDown(st); err != nil {
				return nil, err
			}

		case key.KeyCtrlC:
			if err := e.interrupt(st); err != nil {
				return nil, err
			}

		case key.KeyCtrlD:
			if st.buffer != "" {
				continue
			}
			if err := e.rend.Print("^D"); err != nil {
				return nil, err
			}
			if err := e.rend.AdvanceLine(1); err != nil {
				return nil, err
			}
			return []string{ExitToken}, nil

		case key.KeyCtrlL:
			if err := e.rend.ClearAbove(); err != nil {
				return nil, err
			}
		}
	}
}

// backspace removes one character, or one word span when alt is set.
func (e *Editor) backspace(st *promptState, word bool) error {
	if st.buffer == "" {
		return nil
	}

	var removed string
	if word {
		idx := lastWordBoundary(st.buffer)
		removed = st.buffer[idx:]
		st.buffer = st.buffer[:idx]
	} else {
		runes := []rune(st.buffer)
		removed = string(runes[len(runes)-1])
		st.buffer = string(runes[:len(runes)-1])
	}

	if n := width.Visible(removed); n > 0 {
		if err := e.rend.MoveLeft(n); err != nil {
			return err
		}
		if err := e.rend.ClearToEnd(); err != nil {
			return err
		}
	}
	return e.clearSuggestion(st)
}

// clearSuggestion removes the candidate line below the cursor, if shown.
func (e *Editor) clearSuggestion(st *promptState) error {
	if !st.suggestion {
		return nil
	}
	st.suggestion = false
	return e.rend.ClearLineBelow()
}

// complete handles Tab: resolve the buffer, auto-complete a unique
// match, or show candidates below the cursor.
func (e *Editor) complete(st *promptState, tree *cmdtree.Node) error {
	if err := e.clearSuggestion(st); err != nil {
		return err
	}
	if st.buffer == "" {
		return nil
	}

	res := resolve(tree, st.buffer)
	switch res.status {
	case resolveInvalid:
		// Editing continues undisturbed; Enter is where errors print.
		return nil

	case resolveSuggest:
		return e.showBelow(st, res.candidates)
	}

	if res.endsSpace && expectsMore(res) {
		return e.showBelow(st, nextVocabulary(res))
	}

	if res.buffer != st.buffer {
		// Splice happened: redraw the line with the completed text and
		// a trailing space so typing can continue at the next word.
		st.buffer = res.buffer + " "
		if err := e.rend.MoveToColumn(0); err != nil {
			return err
		}
		if err := e.rend.ClearToEnd(); err != nil {
			return err
		}
		if err := e.rend.PrintPrompt(); err != nil {
			return err
		}
		return e.rend.Print(st.buffer)
	}
	return nil
}

// showBelow renders a candidate list on the line below the cursor and
// returns the cursor to its position.
func (e *Editor) showBelow(st *promptState, words []string) error {
	if len(words) == 0 {
		return nil
	}
	col, err := e.rend.CursorCol()
	if err != nil {
		return err
	}
	if err := e.rend.AdvanceLine(1); err != nil {
		return err
	}
	if err := e.rend.ClearToEnd(); err != nil {
		return err
	}
	if err := e.rend.PrintCandidates(words); err != nil {
		return err
	}
	if err := e.rend.MoveToPrevLine(1); err != nil {
		return err
	}
	if err := e.rend.MoveToColumn(col); err != nil {
		return err
	}
	st.suggestion = true
	return nil
}

// accept handles Enter: full resolution finalizes the line; anything
// else reports and re-loops in the editing state.
func (e *Editor) accept(st *promptState, tree *cmdtree.Node) ([]string, bool, error) {
	if err := e.clearSuggestion(st); err != nil {
		return nil, false, err
	}
	if st.buffer == "" {
		return nil, false, e.rend.PrintPrompt()
	}

	res := resolve(tree, st.buffer)
	switch res.status {
	case resolveInvalid:
		if err := e.rend.AdvanceLine(1); err != nil {
			return nil, false, err
		}
		if err := e.rend.PrintError("Invalid input: " + res.badToken); err != nil {
			return nil, false, err
		}
		if hint := fuzzy.Closest(res.badToken, res.vocab); hint != "" {
			if err := e.rend.PrintHint("  (did you mean " + hint + "?)"); err != nil {
				return nil, false, err
			}
		}
		if err := e.rend.PrintPrompt(); err != nil {
			return nil, false, err
		}
		e.hist.Append(strings.TrimSpace(res.buffer))
		st.buffer = ""
		return nil, false, nil

	case resolveSuggest:
		if err := e.rend.AdvanceLine(1); err != nil {
			return nil, false, err
		}
		if err := e.rend.PrintCandidates(res.candidates); err != nil {
			return nil, false, err
		}
		if err := e.rend.PrintPrompt(); err != nil {
			return nil, false, err
		}
		return nil, false, e.rend.Print(st.buffer)
	}

	// Trailing whitespace with more of the tree below: browse, don't
	// finalize.
	if res.endsSpace && expectsMore(res) {
		if err := e.rend.AdvanceLine(1); err != nil {
			return nil, false, err
		}
		if err := e.rend.PrintCandidates(nextVocabulary(res)); err != nil {
			return nil, false, err
		}
		if err := e.rend.PrintPrompt(); err != nil {
			return nil, false, err
		}
		return nil, false, e.rend.Print(st.buffer)
	}

	// Echo the fully completed line, advance past it, and clear any
	// stale suggestion text from the new line.
	if err := e.rend.MoveToColumn(0); err != nil {
		return nil, false, err
	}
	if err := e.rend.PrintPrompt(); err != nil {
		return nil, false, err
	}
	if err := e.rend.Print(res.buffer); err != nil {
		return nil, false, err
	}
	if err := e.rend.AdvanceLine(1); err != nil {
		return nil, false, err
	}
	if err := e.rend.ClearLine(); err != nil {
		return nil, false, err
	}

	e.hist.Append(strings.TrimSpace(res.buffer))

	if arg := res.node.Arg; arg != nil && arg.Required && !res.argGiven {
		if err := e.rend.Println("Missing argument: " + arg.Name); err != nil {
			return nil, false, err
		}
		if err := e.rend.PrintPrompt(); err != nil {
			return nil, false, err
		}
		st.buffer = ""
		return nil, false, nil
	}

	return res.tokens, true, nil
}

// historyUp replaces the buffer with the previous history entry,
// snapshotting the in-progress edit on first use.
func (e *Editor) historyUp(st *promptState) error {
	prev, ok := st.cursor.Previous()
	if !ok {
		return nil
	}
	if st.snapshot == nil {
		s := st.buffer
		st.snapshot = &s
	}
	return e.replaceBuffer(st, prev)
}

// historyDown replaces the buffer with the next history entry, or
// restores the snapshot when scrolling past the newest entry.
func (e *Editor) historyDown(st *promptState) error {
	if next, ok := st.cursor.Next(); ok {
		return e.replaceBuffer(st, next)
	}
	if st.snapshot == nil {
		return nil // already at the bottom, nothing to restore
	}
	s := *st.snapshot
	st.snapshot = nil
	return e.replaceBuffer(st, s)
}

// replaceBuffer clears the echoed buffer and prints text in its place.
// Any suggestion line below the cursor is stale once the buffer changes.
func (e *Editor) replaceBuffer(st *promptState, text string) error {
	if err := e.clearSuggestion(st); err != nil {
		return err
	}
	if n := width.Visible(st.buffer); n > 0 {
		if err := e.rend.MoveLeft(n); err != nil {
			return err
		}
		if err := e.rend.ClearToEnd(); err != nil {
			return err
		}
	}
	st.buffer = text
	return e.rend.Print(st.buffer)
}

// interrupt handles Ctrl+C: abandon the line, stay in the session.
func (e *Editor) interrupt(st *promptState) error {
	if err := e.clearSuggestion(st); err != nil {
		return err
	}
	if err := e.rend.Print("^C"); err != nil {
		return err
	}
	if err := e.rend.AdvanceLine(1); err != nil {
		return err
	}
	if err := e.rend.PrintPrompt(); err != nil {
		return err
	}
	st.buffer = ""
	return nil
}
