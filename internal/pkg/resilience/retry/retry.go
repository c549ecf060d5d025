// Package retry wraps avast/retry-go behind a small interface so callers can
// opt into retrying one-shot remote operations (such as wallet creation)
// without depending on the library directly.
//
//	r := retry.New(retry.WithAttempts(3), retry.WithDelay(time.Second))
//	err := r.Execute(ctx, func() error {
//	    return createWallet(ctx)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation until it succeeds, the attempt budget is spent or
// the context is done.
type Retry interface {
	// Execute runs operation at least once. The operation must be safe to
	// repeat. It returns nil on success, otherwise the last error (or every
	// error when WithLastErrorOnly(false) is set).
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint                          // total attempts, including the first one
	delay       time.Duration                 // base delay, doubled on each retry
	maxDelay    time.Duration                 // cap for the backoff delay
	lastErrOnly bool                          // whether to return only the last error
	retryIf     func(error) bool              // decides if an error is worth another attempt
	onRetry     func(attempt uint, err error) // observer called after each failed attempt
}

// Option configures the retry mechanism.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with exponential backoff.
//
// Defaults: 3 attempts, 1s base delay, 5s max delay, last error only, every
// error is retried.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     func(error) bool { return true },
		onRetry:     func(uint, error) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Never returns a Retry that runs the operation exactly once.
func Never() Retry {
	return New(WithAttempts(1))
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.cfg.retryIf),
		retry.OnRetry(r.cfg.onRetry),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts. Values below 1 are treated as 1.
func WithAttempts(n uint) Option {
	return func(c *config) {
		if n == 0 {
			n = 1
		}
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether only the final attempt's error is returned.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors accepted by fn.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithOnRetry registers fn to be called with the zero-based attempt number
// and its error after every failed attempt that passes WithRetryIf.
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
