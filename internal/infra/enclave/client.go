// Package enclave creates custodial wallets through an enclave wallet service.
package enclave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gabapcia/zapland/internal/pkg/types"
	"github.com/gabapcia/zapland/internal/reconciler"
)

// ErrUnexpectedStatus is returned when the service answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("enclave service returned unexpected status")

// maxErrorBodySize bounds how much of an error response is kept.
const maxErrorBodySize = 512

const walletsPath = "wallets"

type createWalletResponse struct {
	NWCString string `json:"nwcString"`
	LNAddress string `json:"lnAddress"`
	Service   struct {
		MaxBalance *types.Millisats `json:"maxBalance"`
		Enclave    string           `json:"enclave"`
	} `json:"service"`
}

func (r createWalletResponse) toCreatedWallet() reconciler.CreatedWallet {
	return reconciler.CreatedWallet{
		ConnectionSecret: r.NWCString,
		Address:          r.LNAddress,
		MaxBalance:       r.Service.MaxBalance,
		Enclave:          r.Service.Enclave,
	}
}

// client talks to the enclave wallet service over HTTP.
type client struct {
	httpClient *http.Client
	walletsURL string
}

var _ reconciler.WalletCreator = (*client)(nil)

// NewClient returns a WalletCreator for the service at baseURL.
func NewClient(httpClient *http.Client, baseURL string) (*client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid enclave url: %w", err)
	}

	return &client{
		httpClient: httpClient,
		walletsURL: base.JoinPath(walletsPath).String(),
	}, nil
}

// CreateWallet provisions a new wallet and returns its credentials.
func (c *client) CreateWallet(ctx context.Context) (reconciler.CreatedWallet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.walletsURL, http.NoBody)
	if err != nil {
		return reconciler.CreatedWallet{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return reconciler.CreatedWallet{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		return reconciler.CreatedWallet{}, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, res.StatusCode, body)
	}

	var data createWalletResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return reconciler.CreatedWallet{}, fmt.Errorf("malformed enclave response: %w", err)
	}

	return data.toCreatedWallet(), nil
}
