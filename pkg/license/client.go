package license

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client fetches the caller's entitlement snapshot from a license server.
type Client interface {
	FetchStatus(ctx context.Context) (Status, error)
}

// HTTPClient queries the license status endpoint over HTTP. Responses are
// normalized before being returned, so callers always receive a valid,
// fail-closed Status even when the server omits fields.
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

// ClientOption configures the HTTPClient.
type ClientOption func(*HTTPClient)

// WithHTTPClient replaces the underlying HTTP client, e.g. to add custom
// transports in tests. Nil clients are ignored.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(hc *HTTPClient) {
		if c != nil {
			hc.httpClient = c
		}
	}
}

// NewHTTPClient creates a status client for the given endpoint URL.
func NewHTTPClient(endpoint string, opts ...ClientOption) (*HTTPClient, error) {
	u, err := url.Parse(endpoint)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	client := &HTTPClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchStatus issues a single GET to the status endpoint and normalizes the
// response. No retries: the provider's caching policy decides when the next
// attempt happens.
func (c *HTTPClient) FetchStatus(ctx context.Context) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return Status{}, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Status{}, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Status{}, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	var raw statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Status{}, errors.Join(ErrMalformedResponse, err)
	}

	return normalize(raw), nil
}
