// ABOUTME: Cancellable background progress indicator shown while a collaborator call is in flight.
// ABOUTME: Stop cancels and joins the ticker goroutine, so the last tick strictly precedes any line clear.

package spin

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/ger-go/pkg/shell/terminal"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const (
	defaultWarmup   = time.Second
	defaultInterval = 200 * time.Millisecond
)

// Indicator ticks a spinner glyph on the current line until stopped.
// It stays silent for a warm-up period so fast calls never flicker.
type Indicator struct {
	term     terminal.Terminal
	warmup   time.Duration
	interval time.Duration

	cancel context.CancelFunc
	group  *errgroup.Group
}

// Option adjusts indicator timing.
type Option func(*Indicator)

// WithWarmup overrides the silent warm-up period.
func WithWarmup(d time.Duration) Option {
	return func(i *Indicator) { i.warmup = d }
}

// WithInterval overrides the tick interval.
func WithInterval(d time.Duration) Option {
	return func(i *Indicator) { i.interval = d }
}

// Start launches the indicator goroutine. The returned Indicator must be
// stopped with Stop before the caller clears or reuses the current line.
func Start(t terminal.Terminal, opts ...Option) *Indicator {
	ind := &Indicator{
		term:     t,
		warmup:   defaultWarmup,
		interval: defaultInterval,
	}
	for _, opt := range opts {
		opt(ind)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ind.cancel = cancel
	ind.group, ctx = errgroup.WithContext(ctx)
	ind.group.Go(func() error {
		return ind.run(ctx)
	})
	return ind
}

// Stop cancels the indicator and waits for its goroutine to finish.
// When Stop returns, no further writes from the indicator can occur;
// only then may the caller clear the line the spinner was drawn on.
func (i *Indicator) Stop() {
	i.cancel()
	_ = i.group.Wait()
}

// run sleeps through the warm-up, then ticks until cancelled. Each tick
// redraws the glyph at column 0 of the current line.
func (i *Indicator) run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-time.After(i.warmup):
	}

	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			glyph := frames[frame%len(frames)]
			frame++
			if _, err := i.term.Write([]byte("\x1b[1G" + glyph)); err != nil {
				return fmt.Errorf("drawing spinner: %w", err)
			}
		}
	}
}
