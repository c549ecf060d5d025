package reconciler

import (
	"time"

	"github.com/gabapcia/zapland/internal/pkg/types"
)

// BalanceSnapshot is the last known wallet balance.
type BalanceSnapshot struct {
	Amount    types.Millisats
	Known     bool // false until the first successful fetch
	FetchedAt time.Time
	Loading   bool
}

// PendingInvoice is the top-up invoice being watched for settlement. An empty
// PaymentHash means the invoice was settled and is no longer watched.
type PendingInvoice struct {
	Invoice     string
	PaymentHash string
	Amount      types.Millisats
	CreatedAt   time.Time
}

// Watching reports whether the invoice still awaits settlement.
func (p *PendingInvoice) Watching() bool {
	return p != nil && p.PaymentHash != ""
}

// State is a point-in-time copy of everything the presentation layer shows.
type State struct {
	Session        WalletSession
	Balance        BalanceSnapshot
	PendingInvoice *PendingInvoice // nil until an invoice was issued
}

// clone returns a copy that shares no pointers with s.
func (s State) clone() State {
	if s.PendingInvoice != nil {
		p := *s.PendingInvoice
		s.PendingInvoice = &p
	}
	if s.Session.MaxBalance != nil {
		m := *s.Session.MaxBalance
		s.Session.MaxBalance = &m
	}
	return s
}
