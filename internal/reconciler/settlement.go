package reconciler

import (
	"context"
	"time"

	"github.com/gabapcia/zapland/internal/pkg/logger"
	"github.com/gabapcia/zapland/internal/pkg/types"
)

// Settlement describes a top-up invoice observed as paid.
type Settlement struct {
	PaymentHash string
	Address     string
	Amount      types.Millisats
	SettledAt   time.Time
}

// SettlementRecorder keeps a record of observed settlements.
// Failures are logged and never affect reconciliation.
type SettlementRecorder interface {
	RecordSettlement(ctx context.Context, s Settlement) error
}

type nopSettlementRecorder struct{}

var _ SettlementRecorder = nopSettlementRecorder{}

func (nopSettlementRecorder) RecordSettlement(context.Context, Settlement) error { return nil }

func recordSettlement(ctx context.Context, r SettlementRecorder, s Settlement) {
	// The watch may already be stopping; the record must still be written.
	ctx = context.WithoutCancel(ctx)
	if err := r.RecordSettlement(ctx, s); err != nil {
		logger.Error(ctx, "failed to record settlement",
			"invoice.payment_hash", s.PaymentHash,
			"error", err,
		)
	}
}
