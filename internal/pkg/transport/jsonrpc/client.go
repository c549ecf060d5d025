// Package jsonrpc provides a generic JSON-RPC 2.0 client implementation over HTTP.
// Requests carry by-name parameters and optional static headers, which makes it
// suitable for credential-scoped bridges such as Nostr Wallet Connect gateways.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates that the server answered with a non-2xx HTTP status
	// and no JSON-RPC envelope.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// maxErrorBodySize bounds how much of a failed response body is kept in the error.
const maxErrorBodySize = 512

// request represents a JSON-RPC 2.0 request envelope.
type request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	Error   *struct {
		Code    int    `json:"code"`    // Error code defined by the JSON-RPC spec or custom server logic
		Message string `json:"message"` // Human-readable error message
	} `json:"error"`
	Result json.RawMessage `json:"result"` // Raw result payload returned by the server
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client defines the interface for a generic JSON-RPC client.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and by-name
	// parameters (nil omits the field). It returns the raw JSON result or an
	// error if the request or response fails.
	Fetch(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	providerEndpoint string       // The URL of the remote JSON-RPC server
	httpClient       *http.Client // The HTTP client used to perform requests
	headers          http.Header  // Static headers added to every request
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// The `id` field in the request is generated as a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(request{
		JsonRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var data response
	if err := json.Unmarshal(payload, &data); err != nil {
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, res.StatusCode, truncate(payload, maxErrorBodySize))
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// truncate returns at most n bytes of b as a string.
func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}

// Option configures a client at construction time.
type Option func(*client)

// WithHeader adds a static header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *client) {
		c.headers.Add(key, value)
	}
}

// NewClient constructs and returns a Client that will send JSON-RPC requests
// to the specified provider endpoint using the given HTTP client.
func NewClient(httpClient *http.Client, providerEndpoint string, opts ...Option) *client {
	c := &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
		headers:          make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
