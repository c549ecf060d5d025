package reconciler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/zapland/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrAlreadyPolling is returned when starting a loop that is already running.
	ErrAlreadyPolling = errors.New("loop already running")

	// ErrNoPaymentHash is returned when watching an invoice without a payment hash.
	ErrNoPaymentHash = errors.New("invoice has no payment hash")

	// ErrSessionEnded is returned when starting a loop on a session that was
	// already torn down.
	ErrSessionEnded = errors.New("wallet session ended")
)

// latestTransactionLimit is how many transactions the payment watch inspects.
const latestTransactionLimit = 1

// Session owns one wallet's state and its two polling loops: balance refresh
// and payment watch. The loops are independent and share only the state lock.
type Session struct {
	client   WalletClient
	surface  Surface
	recorder SettlementRecorder
	otel     *instruments
	now      func() time.Time

	balanceInterval time.Duration
	paymentInterval time.Duration

	mu    sync.Mutex
	state State

	loopsMu     sync.Mutex
	closed      bool
	balanceLoop *loop
	paymentLoop *loop
}

type sessionConfig struct {
	surface         Surface
	recorder        SettlementRecorder
	otel            *instruments
	now             func() time.Time
	balanceInterval time.Duration
	paymentInterval time.Duration
}

func newSession(wallet WalletSession, client WalletClient, cfg sessionConfig) *Session {
	return &Session{
		client:          client,
		surface:         cfg.surface,
		recorder:        cfg.recorder,
		otel:            cfg.otel,
		now:             cfg.now,
		balanceInterval: cfg.balanceInterval,
		paymentInterval: cfg.paymentInterval,
		state:           State{Session: wallet},
	}
}

// Wallet returns the wallet this session polls.
func (s *Session) Wallet() WalletSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone().Session
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

// update applies fn to the state and renders the result, unless ctx is
// already done. It reports whether fn was applied.
//
// Checking ctx under the lock is what keeps a stopped loop from writing:
// stop cancels ctx before it waits, so any later update is discarded.
func (s *Session) update(ctx context.Context, fn func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		return false
	}

	fn(&s.state)
	s.surface.Render(ctx, s.state.clone())
	return true
}

// StartBalancePolling fetches the balance now and then every balance
// interval until StopBalancePolling is called or ctx is done.
func (s *Session) StartBalancePolling(ctx context.Context) error {
	s.loopsMu.Lock()
	defer s.loopsMu.Unlock()

	if s.closed {
		return ErrSessionEnded
	}
	if s.balanceLoop != nil && s.balanceLoop.running() {
		return ErrAlreadyPolling
	}

	ctx = logger.Derive(ctx, "session.address", s.state.Session.Address)
	s.balanceLoop = startLoop(ctx, s.balanceInterval, s.refreshBalance)
	return nil
}

// StopBalancePolling stops the balance loop. When it returns no balance fetch
// is running and none will be issued. Safe to call any number of times.
func (s *Session) StopBalancePolling() {
	s.loopsMu.Lock()
	l := s.balanceLoop
	s.balanceLoop = nil
	s.loopsMu.Unlock()

	if l == nil {
		return
	}
	l.stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Balance.Loading {
		s.state.Balance.Loading = false
		s.surface.Render(context.Background(), s.state.clone())
	}
}

func (s *Session) refreshBalance(ctx context.Context) bool {
	if !s.update(ctx, func(st *State) { st.Balance.Loading = true }) {
		return false
	}

	spanCtx, span := s.otel.tracer.Start(ctx, "reconciler.GetBalance")
	s.otel.balanceFetches.Add(spanCtx, 1)
	amount, err := s.client.GetBalance(spanCtx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	if err != nil {
		applied := s.update(ctx, func(st *State) { st.Balance.Loading = false })
		if !applied {
			return false
		}

		s.otel.balanceFetchFailures.Add(ctx, 1)
		logger.Warn(ctx, "balance fetch failed", "error", err)
		s.surface.Notify(ctx, errorNotification(KindBalanceFetchFailed, "Error fetching balance", err))
		return true
	}

	fetchedAt := s.now()
	return s.update(ctx, func(st *State) {
		st.Balance = BalanceSnapshot{
			Amount:    amount,
			Known:     true,
			FetchedAt: fetchedAt,
			Loading:   false,
		}
	})
}

// StartPaymentWatch records invoice as the pending invoice and checks the
// latest wallet transaction now and then every payment interval. The watch
// ends by itself once the invoice is observed as settled.
func (s *Session) StartPaymentWatch(ctx context.Context, invoice PendingInvoice) error {
	if invoice.PaymentHash == "" {
		return ErrNoPaymentHash
	}

	s.loopsMu.Lock()
	defer s.loopsMu.Unlock()

	if s.closed {
		return ErrSessionEnded
	}
	if s.paymentLoop != nil && s.paymentLoop.running() {
		return ErrAlreadyPolling
	}

	if !s.update(ctx, func(st *State) { st.PendingInvoice = &invoice }) {
		return ctx.Err()
	}

	ctx = logger.Derive(ctx,
		"session.address", s.state.Session.Address,
		"invoice.payment_hash", invoice.PaymentHash,
	)
	s.paymentLoop = startLoop(ctx, s.paymentInterval, func(ctx context.Context) bool {
		return s.checkPayment(ctx, invoice.PaymentHash)
	})
	return nil
}

// StopPaymentWatch stops the payment watch. Safe to call any number of times.
func (s *Session) StopPaymentWatch() {
	s.loopsMu.Lock()
	l := s.paymentLoop
	s.paymentLoop = nil
	s.loopsMu.Unlock()

	if l != nil {
		l.stop()
	}
}

// checkPayment looks at the most recent transaction and settles the pending
// invoice when its payment hash matches.
func (s *Session) checkPayment(ctx context.Context, paymentHash string) bool {
	spanCtx, span := s.otel.tracer.Start(ctx, "reconciler.ListTransactions",
		trace.WithAttributes(attribute.String("invoice.payment_hash", paymentHash)))
	s.otel.paymentChecks.Add(spanCtx, 1)
	txs, err := s.client.ListTransactions(spanCtx, latestTransactionLimit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	if err != nil {
		if ctx.Err() != nil {
			return false
		}

		logger.Error(ctx, "payment check failed", "error", err)
		return true
	}

	if len(txs) == 0 || txs[0].PaymentHash != paymentHash {
		return true
	}

	var settled PendingInvoice
	applied := s.update(ctx, func(st *State) {
		if st.PendingInvoice.Watching() && st.PendingInvoice.PaymentHash == paymentHash {
			settled = *st.PendingInvoice
			st.PendingInvoice.PaymentHash = ""
		}
	})
	if !applied || settled.PaymentHash == "" {
		return false
	}

	s.otel.settlements.Add(ctx, 1)
	logger.Info(ctx, "top-up invoice settled", "invoice.amount", settled.Amount.String())

	s.surface.Notify(ctx, paymentReceivedNotification())
	s.surface.CloseQR(ctx, settled.Invoice)

	settledAt := txs[0].SettledAt
	if settledAt.IsZero() {
		settledAt = s.now()
	}
	recordSettlement(ctx, s.recorder, Settlement{
		PaymentHash: paymentHash,
		Address:     s.Wallet().Address,
		Amount:      settled.Amount,
		SettledAt:   settledAt,
	})

	return false
}

// stop ends both loops and marks the session as ended, so neither loop can
// be started again. When it returns no loop is running.
func (s *Session) stop() {
	s.loopsMu.Lock()
	s.closed = true
	s.loopsMu.Unlock()

	s.StopPaymentWatch()
	s.StopBalancePolling()
}
