// Package reconciler keeps a custodial Lightning wallet's balance and top-up
// invoice status fresh by polling the wallet, and feeds the results to a
// presentation Surface.
//
// A Service owns at most one Session at a time. Each Session runs two
// independent loops: balance refresh and payment watch. Ending the session
// stops both loops before the call returns.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/zapland/internal/pkg/logger"
	"github.com/gabapcia/zapland/internal/pkg/resilience/retry"
	"github.com/gabapcia/zapland/internal/pkg/types"
	"github.com/gabapcia/zapland/internal/pkg/validator"

	"go.opentelemetry.io/otel/codes"
)

const (
	// DefaultPollInterval spaces both the balance refresh and the payment watch.
	DefaultPollInterval = 5 * time.Second

	// DefaultTopUpAmount is the amount of the invoice issued after wallet creation.
	DefaultTopUpAmount types.Millisats = 10_000
)

var (
	// ErrNoActiveSession is returned by operations that need a wallet session.
	ErrNoActiveSession = errors.New("no active wallet session")

	// ErrInvoicePending is returned when a top-up invoice is already being watched.
	ErrInvoicePending = errors.New("a top-up invoice is already pending")

	// ErrCreationInProgress is returned when wallet creation is already running.
	ErrCreationInProgress = errors.New("wallet creation already in progress")
)

// Service orchestrates wallet creation and the session lifecycle.
type Service interface {
	// CreateWalletAndInvoice creates a wallet, replaces the current session
	// with one bound to the new credential, starts balance polling and issues
	// a top-up invoice whose settlement is then watched.
	//
	// It fails when the wallet cannot be created or connected; in that
	// case the current session, if any, is left untouched. A failed invoice is
	// reported to the Surface and leaves the new session without a pending
	// invoice. ErrSessionEnded is returned when the new session is ended,
	// by EndSession or a concurrent OpenSession, before creation completes.
	CreateWalletAndInvoice(ctx context.Context) (*Session, error)

	// OpenSession replaces the current session with one bound to an existing
	// credential and starts balance polling.
	OpenSession(ctx context.Context, connectionSecret string) (*Session, error)

	// RequestTopUp issues a top-up invoice for the current session and
	// starts watching it.
	RequestTopUp(ctx context.Context) (PendingInvoice, error)

	// Session returns the current session or nil.
	Session() *Session

	// EndSession stops both loops of the current session and drops it.
	EndSession()

	// Close releases the service. It is equivalent to EndSession.
	Close()
}

type service struct {
	creator  WalletCreator
	dialer   Dialer
	surface  Surface
	recorder SettlementRecorder
	retry    retry.Retry
	otel     *instruments
	now      func() time.Time

	balanceInterval time.Duration
	paymentInterval time.Duration
	topUpAmount     types.Millisats

	createMu sync.Mutex
	topUpMu  sync.Mutex

	mu      sync.Mutex
	session *Session
}

var _ Service = (*service)(nil)

func (s *service) CreateWalletAndInvoice(ctx context.Context) (*Session, error) {
	if !s.createMu.TryLock() {
		return nil, ErrCreationInProgress
	}
	defer s.createMu.Unlock()

	spanCtx, span := s.otel.tracer.Start(ctx, "reconciler.CreateWalletAndInvoice")
	defer span.End()

	wallet, client, err := s.createWallet(spanCtx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		logger.Error(ctx, "wallet creation failed", "error", err)
		s.surface.Notify(ctx, errorNotification(KindWalletCreationFailed, "Error creating wallet", err))
		return nil, err
	}

	session, err := s.install(ctx, wallet, client)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	logger.Info(ctx, "wallet created", "session.address", wallet.Address, "session.enclave", wallet.Enclave)
	s.surface.Notify(ctx, walletCreatedNotification())

	// The new session's client is used here, never a previously cached one.
	if _, err := s.issueTopUp(ctx, session); err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrSessionEnded) {
			logger.Warn(ctx, "wallet session ended during creation", "session.address", wallet.Address)
			return nil, err
		}
	}

	return session, nil
}

func (s *service) createWallet(ctx context.Context) (WalletSession, WalletClient, error) {
	var created CreatedWallet
	err := s.retry.Execute(ctx, func() error {
		var err error
		created, err = s.creator.CreateWallet(ctx)
		return err
	})
	if err != nil {
		return WalletSession{}, nil, err
	}

	wallet := WalletSession{
		ConnectionSecret: created.ConnectionSecret,
		Address:          created.Address,
		MaxBalance:       created.MaxBalance,
		Enclave:          created.Enclave,
	}
	if err := validator.Validate(wallet); err != nil {
		return WalletSession{}, nil, fmt.Errorf("invalid wallet returned by creation service: %w", err)
	}

	client, err := s.dialer.Connect(ctx, wallet.ConnectionSecret)
	if err != nil {
		return WalletSession{}, nil, fmt.Errorf("failed to connect to new wallet: %w", err)
	}

	return wallet, client, nil
}

func (s *service) OpenSession(ctx context.Context, connectionSecret string) (*Session, error) {
	client, err := s.dialer.Connect(ctx, connectionSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to wallet: %w", err)
	}

	wallet := WalletSession{
		ConnectionSecret: connectionSecret,
		Address:          client.LightningAddress(),
	}
	if err := validator.Validate(wallet); err != nil {
		return nil, err
	}

	session, err := s.install(ctx, wallet, client)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "wallet session opened", "session.address", wallet.Address)

	return session, nil
}

// install makes a new session current, tears down the previous one and
// starts balance polling.
//
// It fails with ErrSessionEnded when a concurrent install or EndSession tore
// the new session down before its balance loop could start.
func (s *service) install(ctx context.Context, wallet WalletSession, client WalletClient) (*Session, error) {
	session := newSession(wallet, client, sessionConfig{
		surface:         s.surface,
		recorder:        s.recorder,
		otel:            s.otel,
		now:             s.now,
		balanceInterval: s.balanceInterval,
		paymentInterval: s.paymentInterval,
	})

	s.mu.Lock()
	previous := s.session
	s.session = session
	s.mu.Unlock()

	if previous != nil {
		previous.stop()
	}

	if err := session.StartBalancePolling(ctx); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *service) RequestTopUp(ctx context.Context) (PendingInvoice, error) {
	session := s.Session()
	if session == nil {
		return PendingInvoice{}, ErrNoActiveSession
	}

	s.topUpMu.Lock()
	defer s.topUpMu.Unlock()

	if session.State().PendingInvoice.Watching() {
		return PendingInvoice{}, ErrInvoicePending
	}

	return s.issueTopUp(ctx, session)
}

// issueTopUp requests a top-up invoice from the session's wallet and starts
// watching it. Failures are reported to the Surface.
func (s *service) issueTopUp(ctx context.Context, session *Session) (PendingInvoice, error) {
	invoice, err := session.client.MakeInvoice(ctx, s.topUpAmount)
	if err == nil && invoice.PaymentHash == "" {
		err = ErrNoPaymentHash
	}
	if err != nil {
		logger.Error(ctx, "top-up invoice generation failed", "error", err)
		s.surface.Notify(ctx, errorNotification(KindInvoiceFailed, "Error generating invoice", err))
		return PendingInvoice{}, err
	}

	amount := invoice.Amount
	if amount == 0 {
		amount = s.topUpAmount
	}

	pending := PendingInvoice{
		Invoice:     invoice.Invoice,
		PaymentHash: invoice.PaymentHash,
		Amount:      amount,
		CreatedAt:   s.now(),
	}
	if err := session.StartPaymentWatch(ctx, pending); err != nil {
		return PendingInvoice{}, err
	}

	return pending, nil
}

func (s *service) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}

func (s *service) EndSession() {
	s.mu.Lock()
	session := s.session
	s.session = nil
	s.mu.Unlock()

	if session != nil {
		session.stop()
	}
}

func (s *service) Close() {
	s.EndSession()
}

type config struct {
	surface         Surface
	recorder        SettlementRecorder
	retry           retry.Retry
	now             func() time.Time
	balanceInterval time.Duration
	paymentInterval time.Duration
	topUpAmount     types.Millisats
}

// Option configures a Service.
type Option func(*config)

// New returns a Service that creates wallets with creator and connects to
// them with dialer.
//
// Defaults: no-op Surface and SettlementRecorder, no creation retry, 5s poll
// intervals and a 10 000 msat top-up invoice.
func New(creator WalletCreator, dialer Dialer, opts ...Option) *service {
	cfg := config{
		surface:         nopSurface{},
		recorder:        nopSettlementRecorder{},
		retry:           retry.Never(),
		now:             time.Now,
		balanceInterval: DefaultPollInterval,
		paymentInterval: DefaultPollInterval,
		topUpAmount:     DefaultTopUpAmount,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		creator:         creator,
		dialer:          dialer,
		surface:         cfg.surface,
		recorder:        cfg.recorder,
		retry:           cfg.retry,
		otel:            newInstruments(),
		now:             cfg.now,
		balanceInterval: cfg.balanceInterval,
		paymentInterval: cfg.paymentInterval,
		topUpAmount:     cfg.topUpAmount,
	}
}

// WithSurface sets where state and notifications are presented.
func WithSurface(surface Surface) Option {
	return func(c *config) {
		c.surface = surface
	}
}

// WithSettlementRecorder sets where observed settlements are recorded.
func WithSettlementRecorder(r SettlementRecorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}

// WithCreationRetry retries wallet creation with r.
func WithCreationRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithBalanceInterval sets the balance refresh interval.
func WithBalanceInterval(d time.Duration) Option {
	return func(c *config) {
		c.balanceInterval = d
	}
}

// WithPaymentInterval sets the payment watch interval.
func WithPaymentInterval(d time.Duration) Option {
	return func(c *config) {
		c.paymentInterval = d
	}
}

// WithTopUpAmount sets the amount of the top-up invoice.
func WithTopUpAmount(amount types.Millisats) Option {
	return func(c *config) {
		c.topUpAmount = amount
	}
}

func withClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
