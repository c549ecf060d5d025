package reconciler

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/zapland/internal/reconciler"

// instruments groups the OpenTelemetry instruments used by the reconciler.
// With no SDK registered every instrument is a no-op.
type instruments struct {
	tracer trace.Tracer

	balanceFetches       metric.Int64Counter
	balanceFetchFailures metric.Int64Counter
	paymentChecks        metric.Int64Counter
	settlements          metric.Int64Counter
}

func newInstruments() *instruments {
	meter := otel.Meter(instrumentationName)

	// Instrument creation only fails on invalid names; the returned no-op
	// counter is still usable.
	balanceFetches, _ := meter.Int64Counter("zapland.balance.fetches",
		metric.WithDescription("Balance fetches issued by the polling loop."))
	balanceFetchFailures, _ := meter.Int64Counter("zapland.balance.fetch_failures",
		metric.WithDescription("Balance fetches that returned an error."))
	paymentChecks, _ := meter.Int64Counter("zapland.payment.checks",
		metric.WithDescription("Transaction list requests issued by the payment watch."))
	settlements, _ := meter.Int64Counter("zapland.payment.settlements",
		metric.WithDescription("Top-up invoices observed as settled."))

	return &instruments{
		tracer:               otel.Tracer(instrumentationName),
		balanceFetches:       balanceFetches,
		balanceFetchFailures: balanceFetchFailures,
		paymentChecks:        paymentChecks,
		settlements:          settlements,
	}
}
