// ABOUTME: Process-wide append-only store of accepted prompt lines with per-prompt scroll cursors.
// ABOUTME: Readers-writer locking; adjacent duplicate lines are silently suppressed.

package history

import "sync"

// Store holds the prompt history for the lifetime of the process.
// It is shared by reference across prompt invocations: appends are
// mutually exclusive, reads may run concurrently.
type Store struct {
	mu    sync.RWMutex
	lines []string
}

// NewStore returns an empty history store.
func NewStore() *Store {
	return &Store{lines: make([]string, 0, 64)}
}

// Append records an accepted line. Appending a line equal to the
// chronologically last entry is a no-op.
func (s *Store) Append(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.lines); n > 0 && s.lines[n-1] == line {
		return
	}
	s.lines = append(s.lines, line)
}

// Len returns the number of stored lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.lines)
}

// at returns the line at index i, which the cursor keeps in bounds.
func (s *Store) at(i int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lines[i]
}

// Cursor scrolls through the store during one prompt invocation.
// Index len(lines) means "at the live edit line, not browsing".
// The pending snapshot of the in-progress edit is owned by the editor.
type Cursor struct {
	store *Store
	index int
}

// NewCursor returns a cursor positioned at the bottom (live edit line).
func (s *Store) NewCursor() *Cursor {
	return &Cursor{store: s, index: s.Len()}
}

// Previous moves one entry up and returns it. It returns false at the
// top of the history or when the history is empty.
func (c *Cursor) Previous() (string, bool) {
	if c.index == 0 || c.store.Len() == 0 {
		return "", false
	}
	c.index--
	return c.store.at(c.index), true
}

// Next moves one entry down and returns it. Moving past the last entry
// returns false: the caller substitutes its pending snapshot. Already at
// the bottom is also false.
func (c *Cursor) Next() (string, bool) {
	n := c.store.Len()
	if c.index >= n {
		return "", false
	}
	c.index++
	if c.index == n {
		return "", false
	}
	return c.store.at(c.index), true
}
