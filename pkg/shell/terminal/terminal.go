// ABOUTME: Defines the Terminal interface for raw mode, size and cursor queries, and I/O.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

// Terminal abstracts low-level terminal operations: raw mode, size and
// cursor-position queries, and byte-level I/O. Size and CursorPos are
// queried live on every call; the terminal can be resized between calls.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	// CursorPos returns the current cursor position, zero-based.
	CursorPos() (col, row int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}
