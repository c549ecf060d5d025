package reconciler

import (
	"context"
	"time"

	"github.com/gabapcia/zapland/internal/pkg/types"
)

// devEnclave is the enclave name reported by developer wallet instances.
const devEnclave = "dev"

// WalletSession identifies the wallet the reconciler polls. It is immutable
// once built.
type WalletSession struct {
	ConnectionSecret string           `validate:"required"`
	Address          string           `validate:"required"`
	MaxBalance       *types.Millisats // nil when the service does not advertise a limit
	Enclave          string           // enclave name, if reported
}

// IsDev reports whether the wallet lives on a developer enclave whose funds
// may be lost.
func (w WalletSession) IsDev() bool {
	return w.Enclave == devEnclave
}

// CreatedWallet is the result of a successful wallet creation.
type CreatedWallet struct {
	ConnectionSecret string
	Address          string
	MaxBalance       *types.Millisats
	Enclave          string
}

// WalletCreator provisions new custodial wallets.
type WalletCreator interface {
	CreateWallet(ctx context.Context) (CreatedWallet, error)
}

// Invoice is a payment request issued by the wallet.
type Invoice struct {
	Invoice     string
	PaymentHash string
	Amount      types.Millisats
}

// TransactionRecord is a wallet transaction as reported by the wallet client.
type TransactionRecord struct {
	Type        string // "incoming" or "outgoing"
	Invoice     string
	PaymentHash string
	Amount      types.Millisats
	CreatedAt   time.Time
	SettledAt   time.Time
}

// WalletClient is a connection to one wallet, bound to its credential.
// Every method returns an error on network, auth or protocol failure.
type WalletClient interface {
	// GetBalance returns the spendable balance.
	GetBalance(ctx context.Context) (types.Millisats, error)

	// MakeInvoice creates an invoice for the given amount.
	MakeInvoice(ctx context.Context, amount types.Millisats) (Invoice, error)

	// ListTransactions returns up to limit transactions, most recent first.
	ListTransactions(ctx context.Context, limit int) ([]TransactionRecord, error)

	// LightningAddress returns the address advertised by the credential, or
	// an empty string when it carries none.
	LightningAddress() string
}

// Dialer opens wallet clients from connection secrets.
type Dialer interface {
	Connect(ctx context.Context, connectionSecret string) (WalletClient, error)
}
