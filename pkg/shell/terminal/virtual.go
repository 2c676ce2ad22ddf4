// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Interprets the emitted ANSI subset to track cursor position and viewport scrolls.

package terminal

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// VirtualTerminal is a fake Terminal for unit tests. It records written
// output, tracks raw-mode transitions, and interprets the cursor-movement
// sequences the renderer emits so tests can assert on cursor row/column
// and viewport scroll counts. Input is scripted with Feed.
type VirtualTerminal struct {
	mu         sync.Mutex
	out        bytes.Buffer
	in         bytes.Buffer
	width      int
	height     int
	col        int
	row        int
	scrolls    int
	rawMode    bool
	enterCount int
	exitCount  int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
// The cursor starts at the top-left corner.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// CursorPos returns the tracked cursor position, zero-based.
func (v *VirtualTerminal) CursorPos() (col, row int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.col, v.row, nil
}

// Read consumes scripted input previously supplied with Feed.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.in.Len() == 0 {
		return 0, io.EOF
	}
	return v.in.Read(p)
}

// Write appends data to the output buffer and interprets cursor movement.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, _ := v.out.Write(p)
	v.interpret(string(p))
	return n, nil
}

// interpret walks the written bytes and applies the cursor-movement subset
// the renderer uses. Styling (SGR) and clears change no cursor state and
// are skipped.
func (v *VirtualTerminal) interpret(s string) {
	for len(s) > 0 {
		if s[0] == 0x1b {
			consumed := v.interpretEscape(s)
			s = s[consumed:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		switch r {
		case '\r':
			v.col = 0
		case '\n':
			v.advanceRow(1)
		default:
			v.col++
		}
	}
}

// interpretEscape handles one ESC-prefixed sequence, returning bytes consumed.
func (v *VirtualTerminal) interpretEscape(s string) int {
	if len(s) < 2 || s[1] != '[' {
		return 1
	}
	// CSI: ESC [ params final
	i := 2
	for i < len(s) && (s[i] == ';' || s[i] == '?' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	if i >= len(s) {
		return len(s)
	}
	final := s[i]
	n := 1
	params := s[2:i]
	if p := strings.Split(params, ";"); len(p) > 0 && p[0] != "" {
		if parsed, err := strconv.Atoi(p[0]); err == nil {
			n = parsed
		}
	}

	switch final {
	case 'A': // cursor up
		v.row = max(v.row-n, 0)
	case 'B': // cursor down
		v.row = min(v.row+n, v.height-1)
	case 'C': // cursor right
		v.col = min(v.col+n, v.width-1)
	case 'D': // cursor left
		v.col = max(v.col-n, 0)
	case 'E': // next line, column 0
		v.advanceRow(n)
		v.col = 0
	case 'F': // previous line, column 0
		v.row = max(v.row-n, 0)
		v.col = 0
	case 'G': // move to column (1-based parameter)
		v.col = max(n-1, 0)
	case 'S': // scroll viewport up; cursor keeps its screen position
		v.scrolls += n
	}
	return i + 1
}

// advanceRow moves the cursor down, clamped to the last row.
func (v *VirtualTerminal) advanceRow(n int) {
	v.row = min(v.row+n, v.height-1)
}

// --- Test helpers (not part of Terminal interface) ---

// Feed appends scripted input bytes for subsequent Read calls.
func (v *VirtualTerminal) Feed(data string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.in.WriteString(data)
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.out.String()
}

// ResetOutput clears the output buffer without touching cursor state.
func (v *VirtualTerminal) ResetOutput() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.out.Reset()
}

// MoveTo places the cursor for test setup, zero-based.
func (v *VirtualTerminal) MoveTo(col, row int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.col = col
	v.row = row
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}

// Scrolls returns how many viewport lines have been scrolled up.
func (v *VirtualTerminal) Scrolls() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.scrolls
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}
