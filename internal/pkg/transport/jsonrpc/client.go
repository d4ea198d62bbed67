// Package jsonrpc implements a JSON-RPC 2.0 client over HTTP. Requests use
// positional params and a random UUID as id; transport retries are handled
// by the retryablehttp.Client the caller passes in.
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
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates that the remote server answered with
	// a JSON-RPC error object. The concrete *Error is available via errors.As.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates a non-2xx HTTP response without a
	// JSON-RPC body.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// Error is a JSON-RPC error object.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == ErrProviderReturnedError
}

type request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *Error          `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the response error object, if any.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client sends JSON-RPC calls to a single endpoint.
type Client interface {
	// Fetch calls method with positional params and returns the raw result.
	// A JSON-RPC error object is returned as *Error, which matches
	// ErrProviderReturnedError.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
}

var _ Client = (*client)(nil)

func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JsonRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var data response
	if err := json.Unmarshal(raw, &data); err != nil {
		if res.StatusCode/100 != 2 {
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}

		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// NewClient returns a Client for providerEndpoint that sends requests
// through httpClient (see the transport/http package).
func NewClient(providerEndpoint string, httpClient *retryablehttp.Client) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
