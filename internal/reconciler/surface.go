package reconciler

import "context"

// Surface presents reconciler state to the user.
//
// Calls come from the polling goroutines. Render is invoked with the session
// lock held, so implementations must return promptly and must not call back
// into the Session or Service.
type Surface interface {
	// Render shows the latest state. It is called after every state change.
	Render(ctx context.Context, state State)

	// Notify shows a transient notification.
	Notify(ctx context.Context, n Notification)

	// CloseQR dismisses the QR view if it currently displays content.
	CloseQR(ctx context.Context, content string)
}

type nopSurface struct{}

var _ Surface = nopSurface{}

func (nopSurface) Render(context.Context, State)        {}
func (nopSurface) Notify(context.Context, Notification) {}
func (nopSurface) CloseQR(context.Context, string)      {}
