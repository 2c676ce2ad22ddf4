// ABOUTME: Session scopes raw-mode acquisition so the terminal is restored on every exit path.
// ABOUTME: Release resets styling, leaves raw mode, and waits briefly for control sequences to flush.

package terminal

import (
	"fmt"
	"sync"
	"time"
)

// flushGrace is how long Release waits after restoring the terminal so
// buffered control sequences reach the emulator before the process exits.
const flushGrace = 50 * time.Millisecond

// Session holds the terminal in raw mode for the shell's lifetime.
// Acquire it once at startup and defer Release; Release is idempotent
// so it is safe to call both deferred and on explicit shutdown.
type Session struct {
	term Terminal
	once sync.Once
}

// Acquire puts the terminal into raw mode with a visible cursor and
// default styling. Failure to enter raw mode is unrecoverable and is
// returned to the caller without retrying.
func Acquire(t Terminal) (*Session, error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, fmt.Errorf("acquiring terminal session: %w", err)
	}
	// Show cursor, reset colors.
	if _, err := t.Write([]byte("\x1b[?25h\x1b[0m")); err != nil {
		_ = t.ExitRawMode()
		return nil, fmt.Errorf("initializing terminal session: %w", err)
	}
	return &Session{term: t}, nil
}

// Release restores cooked mode and default styling, then sleeps for a
// short grace period so queued sequences flush. Safe to call more than
// once; only the first call does work.
func (s *Session) Release() error {
	var err error
	s.once.Do(func() {
		_, _ = s.term.Write([]byte("\x1b[?25h\x1b[0m"))
		if e := s.term.ExitRawMode(); e != nil {
			err = fmt.Errorf("releasing terminal session: %w", e)
		}
		time.Sleep(flushGrace)
	})
	return err
}

// Terminal returns the underlying terminal.
func (s *Session) Terminal() Terminal {
	return s.term
}
