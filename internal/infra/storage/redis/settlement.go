package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/zapland/internal/reconciler"
)

const (
	// settlementKeyPrefix namespaces the hash stored for each settled invoice.
	settlementKeyPrefix = "zapland:settlement"

	// SettlementsChannel receives the payment hash of every recorded settlement.
	SettlementsChannel = "zapland:settlements"
)

func settlementKey(paymentHash string) string {
	return fmt.Sprintf("%s:%s", settlementKeyPrefix, paymentHash)
}

// RecordSettlement stores s as a hash keyed by its payment hash and announces
// it on SettlementsChannel. Recording the same settlement twice overwrites
// the hash and publishes again.
func (c *client) RecordSettlement(ctx context.Context, s reconciler.Settlement) error {
	key := settlementKey(s.PaymentHash)

	err := c.conn.HSet(ctx, key,
		"payment_hash", s.PaymentHash,
		"address", s.Address,
		"amount_msat", int64(s.Amount),
		"settled_at", s.SettledAt.UTC().Format(time.RFC3339),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to store settlement %s: %w", s.PaymentHash, err)
	}

	if err := c.conn.Publish(ctx, SettlementsChannel, s.PaymentHash).Err(); err != nil {
		return fmt.Errorf("failed to publish settlement %s: %w", s.PaymentHash, err)
	}

	return nil
}

// Ensure the client satisfies the SettlementRecorder interface at compile time.
var _ reconciler.SettlementRecorder = new(client)
