package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/zapland/internal/config"
	"github.com/gabapcia/zapland/internal/handlers/cli"
	"github.com/gabapcia/zapland/internal/handlers/terminal"
	"github.com/gabapcia/zapland/internal/infra/enclave"
	"github.com/gabapcia/zapland/internal/infra/nwc"
	"github.com/gabapcia/zapland/internal/infra/storage/redis"
	"github.com/gabapcia/zapland/internal/pkg/logger"
	"github.com/gabapcia/zapland/internal/pkg/resilience/retry"
	"github.com/gabapcia/zapland/internal/pkg/telemetry"
	"github.com/gabapcia/zapland/internal/pkg/transport/http"
	"github.com/gabapcia/zapland/internal/reconciler"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				fmt.Fprintln(os.Stderr, "telemetry shutdown:", err)
			}
		}()
	}

	// Stdout belongs to the terminal surface.
	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithOutput(os.Stderr)); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	httpClient := http.NewClient(
		http.WithTimeout(cfg.HTTPTimeout),
		http.WithRetryMax(cfg.HTTPRetryMax),
		http.WithLogging(),
	).StandardClient()

	creator, err := enclave.NewClient(httpClient, cfg.EnclaveURL)
	if err != nil {
		return err
	}

	surface := terminal.New(os.Stdout, terminal.WithInvoiceQR())

	opts := []reconciler.Option{
		reconciler.WithSurface(surface),
		reconciler.WithBalanceInterval(cfg.BalanceInterval),
		reconciler.WithPaymentInterval(cfg.PaymentInterval),
		reconciler.WithTopUpAmount(cfg.TopUpAmount),
	}

	if cfg.CreationAttempts > 1 {
		opts = append(opts, reconciler.WithCreationRetry(retry.New(
			retry.WithAttempts(cfg.CreationAttempts),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "wallet creation attempt failed", "attempt", attempt+1, "error", err)
			}),
		)))
	}

	if cfg.Redis.Enabled() {
		store, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer store.Close()

		opts = append(opts, reconciler.WithSettlementRecorder(store))
	}

	svc := reconciler.New(creator, nwc.NewDialer(httpClient, cfg.NWCBridgeURL), opts...)
	defer svc.Close()

	return cli.Run(ctx, svc, surface)
}
