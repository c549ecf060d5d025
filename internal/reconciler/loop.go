package reconciler

import (
	"context"
	"time"

	"github.com/gabapcia/zapland/internal/pkg/x/chflow"
)

// tickFunc runs one poll. Returning false ends the loop.
type tickFunc func(ctx context.Context) bool

// loop runs a tickFunc immediately and then on every interval until it is
// stopped or the tick asks to end.
//
// Ticks run on a single goroutine, so a slow tick delays the next one instead
// of overlapping it.
type loop struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func startLoop(ctx context.Context, interval time.Duration, tick tickFunc) *loop {
	ctx, cancel := context.WithCancel(ctx)
	l := &loop{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(l.done)
		defer cancel()

		if !tick(ctx) {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if _, ok := chflow.Receive(ctx, ticker.C); !ok {
				return
			}
			if ctx.Err() != nil || !tick(ctx) {
				return
			}
		}
	}()

	return l
}

// stop cancels the loop and waits for the running tick, if any, to return.
// It must not be called from inside a tick.
func (l *loop) stop() {
	l.cancel()
	<-l.done
}

// running reports whether the loop goroutine is still alive.
func (l *loop) running() bool {
	return !chflow.Closed(l.done)
}
