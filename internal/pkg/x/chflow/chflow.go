// Package chflow holds small context-aware channel helpers shared by the
// polling loops.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done. The boolean is
// false when ctx ended the wait or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false
	case v, ok := <-ch:
		return v, ok
	}
}

// Closed reports, without blocking, whether done has been closed.
func Closed(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}
