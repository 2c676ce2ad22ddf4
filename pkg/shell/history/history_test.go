// ABOUTME: Tests for the history store and scroll cursor.
// ABOUTME: Covers adjacent dedupe, round-trip navigation, floors, and concurrent access.

package history

import (
	"fmt"
	"sync"
	"testing"
)

func TestAppendDeduplicatesAdjacent(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.Append("change query")
	s.Append("change query")
	if s.Len() != 1 {
		t.Fatalf("Len() = %d after duplicate append, want 1", s.Len())
	}

	// Non-adjacent duplicates are kept.
	s.Append("help")
	s.Append("change query")
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
}

func TestCursorRoundTrip(t *testing.T) {
	t.Parallel()
	s := NewStore()
	s.Append("a")
	s.Append("b")

	c := s.NewCursor()

	if got, ok := c.Previous(); !ok || got != "b" {
		t.Fatalf("Previous() = (%q, %v), want (\"b\", true)", got, ok)
	}
	if got, ok := c.Previous(); !ok || got != "a" {
		t.Fatalf("Previous() = (%q, %v), want (\"a\", true)", got, ok)
	}
	if _, ok := c.Previous(); ok {
		t.Fatal("Previous() past the top should report false")
	}

	if got, ok := c.Next(); !ok || got != "b" {
		t.Fatalf("Next() = (%q, %v), want (\"b\", true)", got, ok)
	}
	// Moving past the last entry returns false; the caller restores
	// its snapshot.
	if _, ok := c.Next(); ok {
		t.Fatal("Next() past the bottom should report false")
	}
	// Still at the bottom: stays false.
	if _, ok := c.Next(); ok {
		t.Fatal("Next() at the bottom should report false")
	}
}

func TestCursorEmptyStore(t *testing.T) {
	t.Parallel()
	c := NewStore().NewCursor()

	if _, ok := c.Previous(); ok {
		t.Error("Previous() on empty store should report false")
	}
	if _, ok := c.Next(); ok {
		t.Error("Next() on empty store should report false")
	}
}

func TestCursorsAreIndependent(t *testing.T) {
	t.Parallel()
	s := NewStore()
	s.Append("a")
	s.Append("b")

	c1 := s.NewCursor()
	c2 := s.NewCursor()

	if got, _ := c1.Previous(); got != "b" {
		t.Fatalf("c1.Previous() = %q, want \"b\"", got)
	}
	if got, _ := c2.Previous(); got != "b" {
		t.Fatalf("c2.Previous() = %q, want \"b\" (cursors must not share position)", got)
	}
}

func TestConcurrentAppendsAndReads(t *testing.T) {
	t.Parallel()
	s := NewStore()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Append(fmt.Sprintf("line-%d", i))
		}()
		go func() {
			defer wg.Done()
			_ = s.Len()
		}()
	}
	wg.Wait()

	if s.Len() == 0 {
		t.Error("expected at least one line after concurrent appends")
	}
}
