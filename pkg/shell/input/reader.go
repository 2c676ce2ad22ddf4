// ABOUTME: Reader turns raw terminal bytes into one parsed key event per call.
// ABOUTME: Synchronous by design: the editor is the only reader of terminal input.

package input

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mauromedda/ger-go/pkg/shell/key"
)

const readBufSize = 64

// Reader extracts key events from a byte stream. Escape sequences are
// delivered by terminal emulators in a single write, so a blocking read
// that returns a partial sequence only happens with pathological stdin;
// in that case Reader waits for the remaining bytes.
type Reader struct {
	src     io.Reader
	pending []byte
}

// NewReader wraps src, typically the shell's Terminal.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, pending: make([]byte, 0, readBufSize)}
}

// Next blocks until one complete key event is available and returns it.
func (r *Reader) Next() (key.Key, error) {
	for {
		if k, n, ok := r.extract(); ok {
			r.pending = r.pending[n:]
			return k, nil
		}

		buf := make([]byte, readBufSize)
		n, err := r.src.Read(buf)
		if n > 0 {
			r.pending = append(r.pending, buf[:n]...)
			continue
		}
		if err != nil {
			return key.Key{}, fmt.Errorf("reading key input: %w", err)
		}
	}
}

// extract tries to parse one key from the front of the pending buffer.
// It reports false when the buffer holds an incomplete sequence.
func (r *Reader) extract() (key.Key, int, bool) {
	b := r.pending
	if len(b) == 0 {
		return key.Key{}, 0, false
	}

	if b[0] == 0x1b {
		return r.extractEscape(b)
	}

	if b[0] < 0x80 {
		return key.ParseKey(string(b[:1])), 1, true
	}

	// Multi-byte UTF-8 rune.
	if !utf8.FullRune(b) && len(b) < utf8.UTFMax {
		return key.Key{}, 0, false
	}
	_, size := utf8.DecodeRune(b)
	return key.ParseKey(string(b[:size])), size, true
}

// extractEscape handles ESC-prefixed input. A lone ESC in the buffer is
// treated as the Escape key: real sequences arrive atomically from the
// pty, so there is nothing more to wait for. A partial sequence that
// could still grow into a known one makes us wait for more bytes.
func (r *Reader) extractEscape(b []byte) (key.Key, int, bool) {
	if len(b) == 1 {
		return key.ParseKey(string(b[:1])), 1, true
	}
	if key.IsPrefix(string(b)) {
		return key.Key{}, 0, false
	}
	if b[1] == '[' || b[1] == 'O' {
		return key.ParseKey(string(b[:3])), 3, true
	}
	return key.ParseKey(string(b[:2])), 2, true
}
