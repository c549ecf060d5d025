package reconciler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/zapland/internal/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func init() {
	_ = logger.Init(logger.WithLevel("error"))
}

const testInterval = 20 * time.Millisecond

// surfaceLog records every Surface call made through a SurfaceMock.
type surfaceLog struct {
	mu            sync.Mutex
	renders       []State
	notifications []Notification
	closedQRs     []string
}

func newSurfaceLog(t *testing.T) (*SurfaceMock, *surfaceLog) {
	surface := NewSurfaceMock(t)
	log := &surfaceLog{}

	surface.EXPECT().Render(mock.Anything, mock.Anything).
		Run(func(_ context.Context, state State) {
			log.mu.Lock()
			defer log.mu.Unlock()
			log.renders = append(log.renders, state)
		}).Maybe()
	surface.EXPECT().Notify(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n Notification) {
			log.mu.Lock()
			defer log.mu.Unlock()
			log.notifications = append(log.notifications, n)
		}).Maybe()
	surface.EXPECT().CloseQR(mock.Anything, mock.Anything).
		Run(func(_ context.Context, content string) {
			log.mu.Lock()
			defer log.mu.Unlock()
			log.closedQRs = append(log.closedQRs, content)
		}).Maybe()

	return surface, log
}

func (l *surfaceLog) renderCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.renders)
}

func (l *surfaceLog) lastRender() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.renders) == 0 {
		return State{}
	}
	return l.renders[len(l.renders)-1]
}

func (l *surfaceLog) notificationsOf(kind NotificationKind) []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Notification
	for _, n := range l.notifications {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func (l *surfaceLog) closed() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.closedQRs...)
}

func testWallet() WalletSession {
	return WalletSession{
		ConnectionSecret: "nostr+walletconnect://b889ff5b1513b641e2a139f661a661364979c5beee91842f8f0ef42ab558e9d4?relay=wss://relay.zap.land&secret=71a8c14c1407c113601079c4302dab36460f0ccd0ad506f1f2dc73b5100e4f3c&lud16=satoshi@zap.land",
		Address:          "satoshi@zap.land",
	}
}

func newTestSession(t *testing.T, client WalletClient, surface Surface, recorder SettlementRecorder) *Session {
	t.Helper()

	if recorder == nil {
		recorder = nopSettlementRecorder{}
	}

	s := newSession(testWallet(), client, sessionConfig{
		surface:         surface,
		recorder:        recorder,
		otel:            newInstruments(),
		now:             time.Now,
		balanceInterval: testInterval,
		paymentInterval: testInterval,
	})
	t.Cleanup(s.stop)

	return s
}

// counter is a goroutine-safe call counter for RunAndReturn callbacks.
type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) inc() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n
}

func (c *counter) get() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
