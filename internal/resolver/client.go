package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// maxResponseSize bounds how much of an upstream reply is read.
const maxResponseSize = 2 << 20

// APIClient calls the hosted download-link API.
type APIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAPIClient creates an APIClient. Every call is bounded by timeout.
func NewAPIClient(baseURL, apiKey string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch asks the upstream to resolve mediaURL and returns the raw reply body.
// The API key goes both in the query and in the x-api-key header since
// upstream deployments differ in which one they read. There is no retry.
func (c *APIClient) Fetch(ctx context.Context, mediaURL string) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse upstream url: %w", err)
	}

	q := endpoint.Query()
	q.Set("api_key", c.apiKey)
	q.Set("vkr", mediaURL)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUpstreamAuth
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return body, nil
}
