package nwc

import (
	"context"
	"net/http"

	"github.com/gabapcia/zapland/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/zapland/internal/reconciler"
)

// authScheme prefixes the connection secret in the Authorization header.
const authScheme = "NWC "

// dialer connects to wallets through a Nostr Wallet Connect bridge.
type dialer struct {
	httpClient     *http.Client
	bridgeEndpoint string
}

var _ reconciler.Dialer = (*dialer)(nil)

// NewDialer returns a Dialer that reaches wallets through the bridge at
// bridgeEndpoint.
func NewDialer(httpClient *http.Client, bridgeEndpoint string) *dialer {
	return &dialer{
		httpClient:     httpClient,
		bridgeEndpoint: bridgeEndpoint,
	}
}

// Connect validates connectionSecret and returns a client bound to it. No
// request is sent until the client is used.
func (d *dialer) Connect(_ context.Context, connectionSecret string) (reconciler.WalletClient, error) {
	uri, err := ParseConnectionURI(connectionSecret)
	if err != nil {
		return nil, err
	}

	conn := jsonrpc.NewClient(d.httpClient, d.bridgeEndpoint,
		jsonrpc.WithHeader("Authorization", authScheme+connectionSecret),
	)

	return NewClient(conn, uri.LightningAddress), nil
}
