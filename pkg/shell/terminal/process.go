// ABOUTME: ProcessTerminal implements Terminal using os.Stdin/os.Stdout and golang.org/x/term.
// ABOUTME: Cursor position uses a DSR query; typed-ahead bytes read during the query are preserved.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by os.Stdin/os.Stdout and x/term.
type ProcessTerminal struct {
	mu       sync.Mutex
	oldState *term.State

	// pending holds input bytes that arrived while waiting for a DSR
	// response. Read drains it before touching stdin again.
	pending []byte
}

// NewProcessTerminal returns a ProcessTerminal ready for use.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{}
}

// EnterRawMode switches stdin to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(os.Stdin.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// CursorPos queries the cursor position with a DSR (ESC [ 6 n) request and
// parses the ESC [ row ; col R response. Raw mode must be active, and the
// caller must be the same goroutine that reads key input: input bytes that
// arrive ahead of the response are stashed for the next Read.
func (t *ProcessTerminal) CursorPos() (col, row int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := os.Stdout.Write([]byte("\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("writing cursor query: %w", err)
	}

	buf := make([]byte, 1)
	var resp []byte
	inResp := false
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return 0, 0, fmt.Errorf("reading cursor response: %w", err)
		}
		b := buf[0]
		if !inResp {
			if b == 0x1b {
				inResp = true
				resp = append(resp[:0], b)
				continue
			}
			t.pending = append(t.pending, b)
			continue
		}
		resp = append(resp, b)
		if b == 'R' {
			break
		}
		// Not a DSR response after all (e.g. an arrow key): give the
		// bytes back and wait for the real response.
		if len(resp) == 2 && b != '[' {
			t.pending = append(t.pending, resp...)
			inResp = false
			resp = resp[:0]
		}
	}

	var r, c int
	if _, err := fmt.Sscanf(string(resp), "\x1b[%d;%dR", &r, &c); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor response %q: %w", resp, err)
	}
	return c - 1, r - 1, nil
}

// Read returns stashed typed-ahead bytes first, then reads from stdin.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	t.mu.Lock()
	if len(t.pending) > 0 {
		n := copy(p, t.pending)
		t.pending = t.pending[n:]
		t.mu.Unlock()
		return n, nil
	}
	t.mu.Unlock()

	n, err := os.Stdin.Read(p)
	if err != nil {
		return n, fmt.Errorf("reading from stdin: %w", err)
	}
	return n, nil
}

// Write sends bytes to os.Stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := os.Stdout.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}
