// Package nwc implements the reconciler's wallet client for Nostr Wallet
// Connect credentials.
//
// Requests are NIP-47 methods sent as JSON-RPC 2.0 calls to an HTTP bridge
// that owns the relay transport and encryption. The connection secret travels
// in the Authorization header so the bridge can act on the right wallet.
package nwc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/zapland/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/zapland/internal/pkg/types"
	"github.com/gabapcia/zapland/internal/reconciler"
)

// ErrRemote wraps every failure reported by, or while reaching, the wallet.
var ErrRemote = errors.New("wallet request failed")

const (
	methodGetBalance       = "get_balance"
	methodMakeInvoice      = "make_invoice"
	methodListTransactions = "list_transactions"
)

type (
	balanceResponse struct {
		Balance types.Millisats `json:"balance"`
	}

	makeInvoiceRequest struct {
		Amount types.Millisats `json:"amount"`
	}

	invoiceResponse struct {
		Invoice     string          `json:"invoice"`
		PaymentHash string          `json:"payment_hash"`
		Amount      types.Millisats `json:"amount"`
	}

	listTransactionsRequest struct {
		Limit int `json:"limit"`
	}

	// TransactionResponse is a NIP-47 transaction. Timestamps are unix seconds.
	TransactionResponse struct {
		Type        string          `json:"type"`
		Invoice     string          `json:"invoice"`
		PaymentHash string          `json:"payment_hash"`
		Amount      types.Millisats `json:"amount"`
		CreatedAt   int64           `json:"created_at"`
		SettledAt   *int64          `json:"settled_at"`
	}

	listTransactionsResponse struct {
		Transactions []TransactionResponse `json:"transactions"`
	}
)

func (t TransactionResponse) toRecord() reconciler.TransactionRecord {
	record := reconciler.TransactionRecord{
		Type:        t.Type,
		Invoice:     t.Invoice,
		PaymentHash: t.PaymentHash,
		Amount:      t.Amount,
	}
	if t.CreatedAt > 0 {
		record.CreatedAt = time.Unix(t.CreatedAt, 0).UTC()
	}
	if t.SettledAt != nil && *t.SettledAt > 0 {
		record.SettledAt = time.Unix(*t.SettledAt, 0).UTC()
	}
	return record
}

// client is a wallet connection bound to one credential.
type client struct {
	conn    jsonrpc.Client
	address string
}

var _ reconciler.WalletClient = (*client)(nil)

// NewClient returns a wallet client that sends requests through conn.
// address is the Lightning address advertised by the credential, if any.
func NewClient(conn jsonrpc.Client, address string) *client {
	return &client{
		conn:    conn,
		address: address,
	}
}

// call performs method and decodes its result into out.
func (c *client) call(ctx context.Context, method string, params, out any) error {
	data, err := c.conn.Fetch(ctx, method, params)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRemote, method, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: malformed result: %w", ErrRemote, method, err)
	}

	return nil
}

func (c *client) GetBalance(ctx context.Context) (types.Millisats, error) {
	var res balanceResponse
	if err := c.call(ctx, methodGetBalance, nil, &res); err != nil {
		return 0, err
	}

	return res.Balance, nil
}

func (c *client) MakeInvoice(ctx context.Context, amount types.Millisats) (reconciler.Invoice, error) {
	var res invoiceResponse
	if err := c.call(ctx, methodMakeInvoice, makeInvoiceRequest{Amount: amount}, &res); err != nil {
		return reconciler.Invoice{}, err
	}

	return reconciler.Invoice{
		Invoice:     res.Invoice,
		PaymentHash: res.PaymentHash,
		Amount:      res.Amount,
	}, nil
}

func (c *client) ListTransactions(ctx context.Context, limit int) ([]reconciler.TransactionRecord, error) {
	var res listTransactionsResponse
	if err := c.call(ctx, methodListTransactions, listTransactionsRequest{Limit: limit}, &res); err != nil {
		return nil, err
	}

	records := make([]reconciler.TransactionRecord, len(res.Transactions))
	for i, t := range res.Transactions {
		records[i] = t.toRecord()
	}

	return records, nil
}

func (c *client) LightningAddress() string {
	return c.address
}
